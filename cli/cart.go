package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/render"
)

// NewCartCommand creates the cart command and its add/inc/dec subcommands.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := render.NewText(cmd.OutOrStdout())
			ctrl, closeStore, err := openCart(rootOpts, view)
			if err != nil {
				return err
			}
			defer closeStore()

			ctrl.RenderBadge()
			ctrl.Render()
			return view.Err()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a catalog product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			products, err := newAPIClient(rootOpts).Products(cmd.Context())
			if err != nil {
				return fmt.Errorf("load products: %w", err)
			}
			card, ok := render.ProjectCatalog(products, nil).Find(id)
			if !ok {
				return fmt.Errorf("product %d is not in the catalog", id)
			}

			view := render.NewText(cmd.OutOrStdout())
			ctrl, closeStore, err := openCart(rootOpts, view)
			if err != nil {
				return err
			}
			defer closeStore()

			return ctrl.AddItem(&card.Product, id)
		},
	})

	cmd.AddCommand(quantityCommand(rootOpts, "inc", "Add one more unit of a product in the cart", (*cart.Controller).Increment))
	cmd.AddCommand(quantityCommand(rootOpts, "dec", "Remove one unit of a product; the last unit removes the line", (*cart.Controller).Decrement))

	return cmd
}

func quantityCommand(rootOpts *RootOptions, name, short string, op func(*cart.Controller, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			view := render.NewText(cmd.OutOrStdout())
			ctrl, closeStore, err := openCart(rootOpts, view)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := op(ctrl, id); err != nil {
				if errors.Is(err, cart.ErrItemNotFound) {
					return fmt.Errorf("product %d is not in the cart", id)
				}
				return err
			}
			return view.Err()
		},
	}
}

// NewCheckoutCommand creates the checkout command. It shows the summary and
// stays until the countdown closes it or the command is interrupted.
func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Show the checkout summary until it closes itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := render.NewText(cmd.OutOrStdout())
			watch := newScrollSignal(view)
			ctrl, closeStore, err := openCart(rootOpts, watch)
			if err != nil {
				return err
			}
			defer closeStore()

			ctrl.RenderCheckout()
			select {
			case <-watch.Done():
			case <-cmd.Context().Done():
				ctrl.CloseCheckout()
			}
			return view.Err()
		},
	}
}
