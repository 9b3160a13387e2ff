package cart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/cart/carttest"
	"github.com/Deepika-251004/shampoo-website/models"
	"github.com/Deepika-251004/shampoo-website/storage"
)

type cartTestContext struct {
	store   *storage.Memory
	clock   *carttest.ManualClock
	view    *carttest.RecordingView
	ctrl    *cart.Controller
	lastErr error
}

func (c *cartTestContext) reset() {
	c.store = storage.NewMemory()
	c.clock = carttest.NewManualClock()
	c.view = &carttest.RecordingView{}
	c.lastErr = nil
	c.restart()
}

func (c *cartTestContext) restart() {
	c.ctrl = cart.NewController(c.store, cart.WithClock(c.clock), cart.WithView(c.view))
}

func (c *cartTestContext) anEmptyCart() error {
	if c.ctrl.TotalItemCount() != 0 {
		return errors.New("cart is not empty")
	}
	return nil
}

func (c *cartTestContext) theStoredCartIs(raw string) error {
	return c.store.Set(cart.StorageKey, raw)
}

func (c *cartTestContext) theClientRestarts() error {
	c.restart()
	return nil
}

func (c *cartTestContext) iAddProductToTheCart(id int, name string) error {
	return c.ctrl.AddItem(&models.Product{ID: id, Name: name}, id)
}

func (c *cartTestContext) iIncrementProduct(id int) error {
	c.lastErr = c.ctrl.Increment(id)
	return nil
}

func (c *cartTestContext) iDecrementProduct(id int) error {
	c.lastErr = c.ctrl.Decrement(id)
	return nil
}

func (c *cartTestContext) iOpenTheCheckout() error {
	c.ctrl.RenderCheckout()
	return nil
}

func (c *cartTestContext) secondsPass(n int) error {
	c.clock.Advance(time.Duration(n) * time.Second)
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := c.ctrl.Snapshot().Len(); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) productHasQuantity(id, qty int) error {
	item, ok := c.ctrl.Snapshot().Item(id)
	if !ok {
		return fmt.Errorf("product %d is not in the cart", id)
	}
	if item.Quantity != qty {
		return fmt.Errorf("expected quantity %d for product %d, got %d", qty, id, item.Quantity)
	}
	return nil
}

func (c *cartTestContext) theBadgeShows(n int) error {
	b := c.ctrl.RenderBadge()
	if !b.Visible || b.Count != n {
		return fmt.Errorf("expected visible badge %d, got %+v", n, b)
	}
	return nil
}

func (c *cartTestContext) theBadgeIsHidden() error {
	if b := c.ctrl.RenderBadge(); b.Visible {
		return fmt.Errorf("expected hidden badge, got %+v", b)
	}
	return nil
}

func (c *cartTestContext) theChangeIsIgnoredAsItemNotFound() error {
	if !errors.Is(c.lastErr, cart.ErrItemNotFound) {
		return fmt.Errorf("expected ErrItemNotFound, got %v", c.lastErr)
	}
	return nil
}

func (c *cartTestContext) theTotalPriceIs(want string) error {
	if got := c.ctrl.TotalPrice().String(); got != want {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func (c *cartTestContext) theCheckoutIsDismissed() error {
	if state, _ := c.ctrl.CheckoutStatus(); state != cart.CheckoutDismissed {
		return fmt.Errorf("expected dismissed checkout, got %s", state)
	}
	return nil
}

func (c *cartTestContext) theViewScrolledTo(section string) error {
	if c.view.Count("scroll:"+section) != 1 {
		return fmt.Errorf("expected one scroll to %s, events: %v", section, c.view.Events())
	}
	return nil
}

func (c *cartTestContext) theCheckoutIsOpenWithSecondsLeft(n int) error {
	state, remaining := c.ctrl.CheckoutStatus()
	if state != cart.CheckoutOpen || remaining != n {
		return fmt.Errorf("expected open checkout with %d seconds, got %s with %d", n, state, remaining)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the stored cart is "([^"]*)"$`, tc.theStoredCartIs)

	// When steps
	ctx.Step(`^I add product (\d+) "([^"]*)" to the cart$`, tc.iAddProductToTheCart)
	ctx.Step(`^I increment product (\d+)$`, tc.iIncrementProduct)
	ctx.Step(`^I decrement product (\d+)$`, tc.iDecrementProduct)
	ctx.Step(`^the client restarts$`, tc.theClientRestarts)
	ctx.Step(`^I open the checkout$`, tc.iOpenTheCheckout)
	ctx.Step(`^(\d+) seconds pass$`, tc.secondsPass)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^product (\d+) has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the badge shows (\d+)$`, tc.theBadgeShows)
	ctx.Step(`^the badge is hidden$`, tc.theBadgeIsHidden)
	ctx.Step(`^the change is ignored as item not found$`, tc.theChangeIsIgnoredAsItemNotFound)
	ctx.Step(`^the total price is "([^"]*)"$`, tc.theTotalPriceIs)
	ctx.Step(`^the checkout is dismissed$`, tc.theCheckoutIsDismissed)
	ctx.Step(`^the view scrolled to "([^"]*)"$`, tc.theViewScrolledTo)
	ctx.Step(`^the checkout is open with (\d+) seconds left$`, tc.theCheckoutIsOpenWithSecondsLeft)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
