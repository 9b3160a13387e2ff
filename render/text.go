// Package render draws the storefront on a terminal. Text implements
// cart.View, so a cart.Controller can drive it directly.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/Deepika-251004/shampoo-website/cart"
)

const (
	msgLoading      = "Loading products..."
	msgNoProducts   = "No products available."
	msgLoadFailed   = "Error loading products. Please try again later."
	msgNoImage      = "No Image"
	msgCartEmpty    = "Your cart is empty."
	msgCheckoutNone = "No items in cart"

	labelAdd   = "Add to Cart"
	labelAdded = "Added!"
)

// AlertKind selects how ShowAlert presents a message.
type AlertKind int

const (
	AlertSuccess AlertKind = iota
	AlertError
)

// Text writes plain-text frames to w. It is safe for use from timer
// callbacks and the command loop at the same time.
type Text struct {
	mu    sync.Mutex
	w     io.Writer
	added map[int]bool
	err   error
}

var _ cart.View = (*Text)(nil)

func NewText(w io.Writer) *Text {
	return &Text{w: w, added: make(map[int]bool)}
}

// Err returns the first write error. Later writes are skipped once one fails.
func (t *Text) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Text) labeled(indent, label, value string) {
	if value == "" {
		t.printf("%s%s:\n", indent, label)
		return
	}
	t.printf("%s%s: %s\n", indent, label, value)
}

// ShowCatalog draws the product list in whichever state it is in.
func (t *Text) ShowCatalog(v CatalogView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch v.State {
	case CatalogLoading:
		t.printf("%s\n", msgLoading)
		return
	case CatalogEmpty:
		t.printf("%s\n", msgNoProducts)
		return
	case CatalogFailed:
		t.printf("%s\n", msgLoadFailed)
		return
	}

	for i, card := range v.Cards {
		if i > 0 {
			t.printf("\n")
		}
		t.printf("#%d %s\n", card.ID, card.Name)
		if card.HasImage() {
			t.printf("   %s\n", card.ImageURL)
		} else {
			t.printf("   %s\n", msgNoImage)
		}
		if card.Description != "" {
			t.printf("   %s\n", card.Description)
		}
		t.labeled("   ", "Ingredients", card.Ingredients)
		label := labelAdd
		if t.added[card.ID] {
			label = labelAdded
		}
		t.printf("   [%s]\n", label)
	}
}

// ShowAlert prints the outcome of a contact form submission.
func (t *Text) ShowAlert(kind AlertKind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if kind == AlertError {
		t.printf("Error: %s\n", message)
		return
	}
	t.printf("Success: %s\n", message)
}

func (t *Text) ShowBadge(b cart.Badge) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !b.Visible {
		t.printf("[cart]\n")
		return
	}
	t.printf("[cart: %d]\n", b.Count)
}

// ShowAddConfirmation tracks the add control's label. Only the switch to
// the confirmed state is printed; the revert shows on the next catalog draw.
func (t *Text) ShowAddConfirmation(productID int, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !active {
		delete(t.added, productID)
		return
	}
	t.added[productID] = true
	t.printf("%s (#%d)\n", labelAdded, productID)
}

func (t *Text) ShowCart(v cart.CartView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.printf("Cart\n")
	if v.Empty {
		t.printf("  %s\n", msgCartEmpty)
		return
	}
	for _, line := range v.Lines {
		t.printf("  #%d %s  [-] %d [+]\n", line.ProductID, line.Name, line.Quantity)
		if line.ImageURL != "" {
			t.printf("     %s\n", line.ImageURL)
		}
		if line.Description != "" {
			t.printf("     %s\n", line.Description)
		}
		ingredients := line.Ingredients
		if ingredients == "" {
			ingredients = "N/A"
		}
		t.labeled("     ", "Ingredients", ingredients)
	}
	t.printf("  %d items\n", v.TotalItems)
}

func (t *Text) ShowCheckout(v cart.CheckoutView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.printf("Checkout\n")
	if v.Empty {
		t.printf("  %s\n", msgCheckoutNone)
	} else {
		for _, line := range v.Lines {
			t.printf("  %s %dx  %s (%s each)\n", line.Name, line.Quantity, line.LineTotal, line.UnitPrice)
			if line.Ingredients != "" {
				t.printf("     %s\n", line.Ingredients)
			}
		}
		t.printf("  Total (%d items): %s\n", v.TotalItems, v.Total)
	}
	t.printf("  Closing in %ds\n", v.Countdown)
}

func (t *Text) ShowCountdown(remaining int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.printf("  Closing in %ds\n", remaining)
}

func (t *Text) DismissCheckout() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.printf("Checkout closed.\n")
}

func (t *Text) ScrollTo(section string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.printf("Back to %s.\n", section)
}
