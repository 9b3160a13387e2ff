package cart

import (
	"encoding/json"
	"fmt"

	"github.com/Deepika-251004/shampoo-website/models"
)

// LineItem is a product snapshot plus a quantity. It encodes as the product's
// fields with a "quantity" field alongside.
type LineItem struct {
	models.Product
	Quantity int `json:"quantity"`
}

// Cart is the insertion-ordered list of line items. It holds at most one
// line item per product id and every quantity is at least 1.
type Cart struct {
	Items []LineItem
}

func (c *Cart) index(productID int) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Item returns the line item for productID.
func (c *Cart) Item(productID int) (LineItem, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// Add increments the line item for p.ID, or appends a new one with
// quantity 1.
func (c *Cart) Add(p models.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: 1})
}

func (c *Cart) Increment(productID int) error {
	i := c.index(productID)
	if i < 0 {
		return itemNotFound(productID)
	}
	c.Items[i].Quantity++
	return nil
}

// Decrement lowers the quantity by one and drops the line item instead of
// letting it reach zero.
func (c *Cart) Decrement(productID int) error {
	i := c.index(productID)
	if i < 0 {
		return itemNotFound(productID)
	}
	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
		return nil
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return nil
}

func (c *Cart) Len() int {
	return len(c.Items)
}

func (c *Cart) TotalItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() Money {
	total := Money(0)
	for _, item := range c.Items {
		total += LineTotal(item.Quantity)
	}
	return total
}

// Clone returns a deep copy, so views and callers never alias cart state.
func (c *Cart) Clone() *Cart {
	out := &Cart{Items: make([]LineItem, len(c.Items))}
	for i, item := range c.Items {
		out.Items[i] = LineItem{
			Product: models.Product{
				ID:          item.ID,
				Name:        item.Name,
				Description: copyText(item.Description),
				Ingredients: copyText(item.Ingredients),
				ImageURL:    copyText(item.ImageURL),
			},
			Quantity: item.Quantity,
		}
	}
	return out
}

func (c Cart) MarshalJSON() ([]byte, error) {
	if c.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Items)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.Items = items
	return nil
}

// validate reports a cart that breaks the one-entry-per-product or the
// positive-quantity rule.
func (c *Cart) validate() error {
	seen := make(map[int]bool, len(c.Items))
	for _, item := range c.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("product %d has quantity %d", item.ID, item.Quantity)
		}
		if seen[item.ID] {
			return fmt.Errorf("product %d appears more than once", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

func copyText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
