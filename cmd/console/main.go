package main

import (
	"os"

	"github.com/light-bringer/equiv-service/internal/transport/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
