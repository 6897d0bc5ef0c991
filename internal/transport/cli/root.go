// Package cli implements the operator console commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/equiv-service/internal/config"
	"github.com/light-bringer/equiv-service/internal/services"
)

var cfgFile string

// NewRootCmd builds the console command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "equivcat",
		Short:   "Operator console for the product equivalence catalog",
		Long:    `Register products, link equivalent products across clients, and inspect candidate matches and confirmed equivalents.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./equivcat.yaml)")

	rootCmd.AddCommand(
		newRegisterClientCmd(),
		newRegisterCmd(),
		newLinkCmd(),
		newCandidatesCmd(),
		newEquivalentsCmd(),
		newClientsCmd(),
		newProductsCmd(),
	)

	return rootCmd
}

// withServices loads configuration, wires the dependency graph and runs fn,
// closing the Spanner client on every exit path.
func withServices(ctx context.Context, fn func(context.Context, *services.ServiceOptions) error) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	opts, err := services.NewServiceOptions(ctx, cfg.Spanner.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer opts.Close()

	return fn(ctx, opts)
}
