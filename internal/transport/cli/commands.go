package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/find_candidates"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_equivalents"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_products"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/establish_equivalence"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_client"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_product"
	"github.com/light-bringer/equiv-service/internal/services"
)

func newRegisterClientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-client <code> <name>",
		Short: "Register a new client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				id, err := opts.RegisterClient.Execute(ctx, &register_client.Request{
					Code: args[0],
					Name: args[1],
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Client registered with id %d\n", id)
				return nil
			})
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <client-code> <product-name>",
		Short: "Register a product under a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				id, err := opts.RegisterProduct.Execute(ctx, &register_product.Request{
					ClientCode:  args[0],
					ProductName: args[1],
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Product registered with id %d\n", id)
				return nil
			})
		},
	}
}

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <client-code-a> <product-name-a> <client-code-b> <product-name-b>",
		Short: "Establish an equivalence between two products of different clients",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				result, err := opts.EstablishEquivalence.Execute(ctx, &establish_equivalence.Request{
					ClientCodeA:  args[0],
					ProductNameA: args[1],
					ClientCodeB:  args[2],
					ProductNameB: args[3],
				})
				if err != nil {
					return err
				}

				if result.AlreadyExists {
					fmt.Fprintf(cmd.OutOrStdout(), "Equivalence (%d, %d) already exists\n",
						result.ProductIDA, result.ProductIDB)
					return nil
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Equivalence (%d, %d) established\n",
					result.ProductIDA, result.ProductIDB)
				return nil
			})
		},
	}
}

func newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <client-code> <product-name>",
		Short: "List same-name products in other clients' catalogs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				candidates, err := opts.FindCandidates.Execute(ctx, &find_candidates.Request{
					ClientCode:  args[0],
					ProductName: args[1],
				})
				if err != nil {
					return err
				}

				renderProducts(cmd.OutOrStdout(), candidates, "No candidates found")
				return nil
			})
		},
	}
}

func newEquivalentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalents <client-code> <product-name>",
		Short: "List confirmed equivalents of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				equivalents, err := opts.ListEquivalents.Execute(ctx, &list_equivalents.Request{
					ClientCode:  args[0],
					ProductName: args[1],
				})
				if err != nil {
					return err
				}

				renderProducts(cmd.OutOrStdout(), equivalents, "No equivalents found")
				return nil
			})
		},
	}
}

func newClientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List all clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				clients, err := opts.ListClients.Execute(ctx)
				if err != nil {
					return err
				}

				renderClients(cmd.OutOrStdout(), clients)
				return nil
			})
		},
	}
}

func newProductsCmd() *cobra.Command {
	var clientCode string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally for one client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
				products, err := opts.ListProducts.Execute(ctx, &list_products.Request{
					ClientCode: clientCode,
				})
				if err != nil {
					return err
				}

				renderProducts(cmd.OutOrStdout(), products, "No products found")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&clientCode, "client", "", "restrict to one client code")
	return cmd
}

func renderProducts(w io.Writer, products []*contracts.ProductDTO, emptyMsg string) {
	if len(products) == 0 {
		fmt.Fprintln(w, emptyMsg)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENT\tNAME")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ProductID, p.ClientID, p.Name)
	}
	tw.Flush()
}

func renderClients(w io.Writer, clients []*contracts.ClientDTO) {
	if len(clients) == 0 {
		fmt.Fprintln(w, "No clients found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME")
	for _, c := range clients {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ClientID, c.Code, c.Name)
	}
	tw.Flush()
}
