package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/client"
	"github.com/Deepika-251004/shampoo-website/render"
)

const shopHelp = `Commands:
  products      reload the catalog
  add ID        add one unit of a product to the cart
  inc ID        one more unit of a product in the cart
  dec ID        one less unit; the last unit removes the line
  cart          show the cart
  checkout      show the checkout summary (closes itself after 10s)
  close         close the checkout summary
  contact       send us a message
  help          show this help
  quit          leave the shop
`

// NewShopCommand creates the interactive shop.
func NewShopCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Browse the catalog and manage the cart interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			view := render.NewText(out)
			ctrl, closeStore, err := openCart(rootOpts, view)
			if err != nil {
				return err
			}
			defer closeStore()

			s := newShopSession(cmd.InOrStdin(), out, view, ctrl, newAPIClient(rootOpts), rootOpts.Log)
			return s.run(cmd.Context())
		},
	}
}

type shopSession struct {
	out     io.Writer
	view    *render.Text
	ctrl    *cart.Controller
	api     *client.Client
	log     *zap.Logger
	lines   <-chan string
	catalog render.CatalogView
}

func newShopSession(in io.Reader, out io.Writer, view *render.Text, ctrl *cart.Controller, api *client.Client, log *zap.Logger) *shopSession {
	return &shopSession{
		out:   out,
		view:  view,
		ctrl:  ctrl,
		api:   api,
		log:   log.Named("shop"),
		lines: readLines(in),
	}
}

// readLines feeds input lines to a channel so the loop can also watch for
// cancellation. The channel closes at end of input.
func readLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

func (s *shopSession) readLine(ctx context.Context, prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	select {
	case line, ok := <-s.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

// run does the page load, then reads commands until quit, end of input or
// cancellation.
func (s *shopSession) run(ctx context.Context) error {
	s.ctrl.RenderBadge()
	s.catalog = fetchCatalog(ctx, s.api, s.view, s.log)
	fmt.Fprint(s.out, "Type help for commands.\n")

	defer s.ctrl.CloseCheckout()
	for {
		line, ok := s.readLine(ctx, "> ")
		if !ok {
			fmt.Fprintln(s.out)
			return s.view.Err()
		}
		if quit := s.exec(ctx, line); quit {
			return s.view.Err()
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *shopSession) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(s.out, shopHelp)
	case "products":
		s.catalog = fetchCatalog(ctx, s.api, s.view, s.log)
	case "add":
		s.withID(args, s.add)
	case "inc":
		s.withID(args, s.ctrl.Increment)
	case "dec":
		s.withID(args, s.ctrl.Decrement)
	case "cart":
		s.ctrl.Render()
	case "checkout":
		s.ctrl.RenderCheckout()
	case "close":
		if !s.ctrl.CloseCheckout() {
			fmt.Fprint(s.out, "No checkout is open.\n")
		}
	case "contact":
		s.contact(ctx)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type help for commands.\n", name)
	}
	return false
}

func (s *shopSession) withID(args []string, fn func(int) error) {
	if len(args) != 1 {
		fmt.Fprint(s.out, "Give exactly one product id.\n")
		return
	}
	id, err := parseProductID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "%s\n", err)
		return
	}
	if err := fn(id); err != nil {
		var malformed *cart.MalformedProductError
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			fmt.Fprintf(s.out, "Product %d is not in your cart.\n", id)
		case errors.As(err, &malformed):
			fmt.Fprintf(s.out, "Cannot add product %d: %s.\n", id, malformed.Reason)
		default:
			s.log.Error("Cart update failed", zap.Int("product_id", id), zap.Error(err))
			fmt.Fprintf(s.out, "Cart update failed: %s\n", err)
		}
	}
}

func (s *shopSession) add(id int) error {
	card, ok := s.catalog.Find(id)
	if !ok {
		fmt.Fprintf(s.out, "Product %d is not in the catalog.\n", id)
		return nil
	}
	return s.ctrl.AddItem(&card.Product, id)
}

func (s *shopSession) contact(ctx context.Context) {
	var msg client.ContactMessage
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Name: ", &msg.Name},
		{"Email: ", &msg.Email},
		{"Message: ", &msg.Message},
	} {
		line, ok := s.readLine(ctx, field.prompt)
		if !ok {
			return
		}
		*field.dst = line
	}
	submitContact(ctx, s.api, s.view, msg)
}
