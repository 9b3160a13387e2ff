package cli

import (
	"github.com/spf13/cobra"

	"github.com/Deepika-251004/shampoo-website/render"
)

// NewProductsCommand creates the products command.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := render.NewText(cmd.OutOrStdout())
			fetchCatalog(cmd.Context(), newAPIClient(rootOpts), view, rootOpts.Log)
			return view.Err()
		},
	}
}
