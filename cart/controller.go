package cart

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/models"
)

// AddConfirmation is how long the add control shows its "Added!" state.
const AddConfirmation = time.Second

// Controller owns the cart and keeps storage and the view in step with it.
// Mutations and timer callbacks are serialised, so they never interleave.
type Controller struct {
	mu      sync.Mutex
	cart    *Cart
	storage Storage
	view    View
	clock   Clock
	log     *zap.Logger

	checkout checkoutSession
	confirm  map[int]Timer
}

type Option func(*Controller)

func WithView(v View) Option {
	return func(c *Controller) { c.view = v }
}

func WithClock(clk Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController rehydrates the cart from storage.
func NewController(storage Storage, opts ...Option) *Controller {
	c := &Controller{
		storage: storage,
		view:    NopView{},
		clock:   SystemClock{},
		log:     zap.NewNop(),
		confirm: make(map[int]Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("cart")
	c.cart = Load(storage, c.log)
	c.log.Debug("Cart loaded", zap.Int("lines", c.cart.Len()), zap.Int("items", c.cart.TotalItemCount()))
	return c
}

// Snapshot returns a copy of the current cart.
func (c *Controller) Snapshot() *Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Clone()
}

// AddItem puts one unit of product into the cart. productID is authoritative
// for the line item's id.
func (c *Controller) AddItem(product *models.Product, productID int) error {
	if err := checkProduct(product, productID); err != nil {
		return err
	}
	p := *product
	p.ID = productID

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart.Add(p)
	err := c.persist()
	c.view.ShowBadge(ProjectBadge(c.cart))
	c.flashAdded(productID)

	c.log.Debug("Added item", zap.Int("product_id", productID), zap.Int("items", c.cart.TotalItemCount()))
	return err
}

// AddItemJSON is AddItem for a raw product payload.
func (c *Controller) AddItemJSON(payload []byte, productID int) error {
	var p models.Product
	if err := json.Unmarshal(payload, &p); err != nil {
		return &MalformedProductError{ProductID: productID, Reason: "payload is not a product", Err: err}
	}
	return c.AddItem(&p, productID)
}

func (c *Controller) Increment(productID int) error {
	return c.changeQuantity(productID, (*Cart).Increment)
}

// Decrement removes the line item when its quantity would drop below 1.
func (c *Controller) Decrement(productID int) error {
	return c.changeQuantity(productID, (*Cart).Decrement)
}

func (c *Controller) changeQuantity(productID int, op func(*Cart, int) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := op(c.cart, productID); err != nil {
		return err
	}
	err := c.persist()
	c.view.ShowBadge(ProjectBadge(c.cart))
	c.view.ShowCart(ProjectCart(c.cart))
	return err
}

func (c *Controller) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.TotalItemCount()
}

func (c *Controller) TotalPrice() Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.TotalPrice()
}

// RenderBadge pushes the item-count indicator to the view.
func (c *Controller) RenderBadge() Badge {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := ProjectBadge(c.cart)
	c.view.ShowBadge(b)
	return b
}

// Render pushes the cart modal to the view.
func (c *Controller) Render() CartView {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := ProjectCart(c.cart)
	c.view.ShowCart(v)
	return v
}

func (c *Controller) persist() error {
	if err := Save(c.storage, c.cart); err != nil {
		c.log.Error("Failed to persist cart", zap.Error(err))
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// flashAdded shows the confirmation for one product and schedules its
// revert. A repeated add restarts the confirmation. Caller holds c.mu.
func (c *Controller) flashAdded(productID int) {
	if t, ok := c.confirm[productID]; ok {
		t.Stop()
	}
	c.view.ShowAddConfirmation(productID, true)

	var timer Timer
	timer = c.clock.AfterFunc(AddConfirmation, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.confirm[productID] != timer {
			return
		}
		delete(c.confirm, productID)
		c.view.ShowAddConfirmation(productID, false)
	})
	c.confirm[productID] = timer
}

func checkProduct(p *models.Product, productID int) error {
	switch {
	case p == nil:
		return &MalformedProductError{ProductID: productID, Reason: "product is missing"}
	case productID < 1:
		return &MalformedProductError{ProductID: productID, Reason: "product id must be positive"}
	case p.ID != 0 && p.ID != productID:
		return &MalformedProductError{ProductID: productID, Reason: fmt.Sprintf("payload carries id %d", p.ID)}
	case p.Name == "":
		return &MalformedProductError{ProductID: productID, Reason: "product has no name"}
	}
	return nil
}
