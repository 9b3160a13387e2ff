package cart

import "github.com/Deepika-251004/shampoo-website/models"

// SectionProducts is the catalog section the checkout returns to.
const SectionProducts = "products"

// CheckoutSeconds is how long the checkout summary stays open.
const CheckoutSeconds = 10

// View receives display models from the controller. Implementations turn
// them into markup or terminal output.
type View interface {
	ShowBadge(b Badge)
	ShowAddConfirmation(productID int, active bool)
	ShowCart(v CartView)
	ShowCheckout(v CheckoutView)
	ShowCountdown(remaining int)
	DismissCheckout()
	ScrollTo(section string)
}

// Badge is the item-count indicator. It is hidden rather than showing 0.
type Badge struct {
	Count   int
	Visible bool
}

type CartLine struct {
	ProductID   int
	Name        string
	Description string
	Ingredients string
	ImageURL    string
	Quantity    int
}

type CartView struct {
	Empty      bool
	Lines      []CartLine
	TotalItems int
}

type CheckoutLine struct {
	ProductID   int
	Name        string
	Ingredients string
	Quantity    int
	UnitPrice   Money
	LineTotal   Money
}

type CheckoutView struct {
	Empty      bool
	Lines      []CheckoutLine
	TotalItems int
	Total      Money
	Countdown  int
}

func ProjectBadge(c *Cart) Badge {
	n := c.TotalItemCount()
	return Badge{Count: n, Visible: n > 0}
}

func ProjectCart(c *Cart) CartView {
	v := CartView{Empty: c.Len() == 0, TotalItems: c.TotalItemCount()}
	for _, item := range c.Items {
		v.Lines = append(v.Lines, CartLine{
			ProductID:   item.ID,
			Name:        item.Name,
			Description: models.Text(item.Description),
			Ingredients: models.Text(item.Ingredients),
			ImageURL:    models.Text(item.ImageURL),
			Quantity:    item.Quantity,
		})
	}
	return v
}

func ProjectCheckout(c *Cart, countdown int) CheckoutView {
	v := CheckoutView{
		Empty:      c.Len() == 0,
		TotalItems: c.TotalItemCount(),
		Total:      c.TotalPrice(),
		Countdown:  countdown,
	}
	for _, item := range c.Items {
		v.Lines = append(v.Lines, CheckoutLine{
			ProductID:   item.ID,
			Name:        item.Name,
			Ingredients: models.Text(item.Ingredients),
			Quantity:    item.Quantity,
			UnitPrice:   UnitPrice,
			LineTotal:   LineTotal(item.Quantity),
		})
	}
	return v
}

// NopView discards everything.
type NopView struct{}

func (NopView) ShowBadge(Badge)               {}
func (NopView) ShowAddConfirmation(int, bool) {}
func (NopView) ShowCart(CartView)             {}
func (NopView) ShowCheckout(CheckoutView)     {}
func (NopView) ShowCountdown(int)             {}
func (NopView) DismissCheckout()              {}
func (NopView) ScrollTo(string)               {}
