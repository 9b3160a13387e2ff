package cart

import (
	"time"

	"go.uber.org/zap"
)

// CheckoutState is the lifecycle of one checkout summary.
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutOpen
	CheckoutDismissed
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutIdle:
		return "idle"
	case CheckoutOpen:
		return "open"
	case CheckoutDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// checkoutSession tracks the summary currently on screen. generation
// distinguishes a reopened summary from the one a stale timer belongs to.
type checkoutSession struct {
	state      CheckoutState
	remaining  int
	generation uint64
	timer      Timer
}

// RenderCheckout shows the read-only checkout summary and starts its
// countdown. Any countdown from an earlier summary is cancelled first.
func (c *Controller) RenderCheckout() CheckoutView {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopCountdown()
	c.checkout.generation++
	c.checkout.state = CheckoutOpen
	c.checkout.remaining = CheckoutSeconds

	v := ProjectCheckout(c.cart, c.checkout.remaining)
	c.view.ShowCheckout(v)
	c.scheduleTick(c.checkout.generation)

	c.log.Debug("Checkout opened", zap.Int("items", v.TotalItems), zap.Stringer("total", v.Total))
	return v
}

// CloseCheckout dismisses an open summary. It reports whether one was open.
func (c *Controller) CloseCheckout() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.checkout.state != CheckoutOpen {
		return false
	}
	c.stopCountdown()
	c.checkout.state = CheckoutDismissed
	c.view.DismissCheckout()
	return true
}

// CheckoutStatus returns the summary's state and the seconds left on it.
func (c *Controller) CheckoutStatus() (CheckoutState, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkout.state, c.checkout.remaining
}

func (c *Controller) scheduleTick(generation uint64) {
	c.checkout.timer = c.clock.AfterFunc(time.Second, func() {
		c.tick(generation)
	})
}

func (c *Controller) tick(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.checkout.generation || c.checkout.state != CheckoutOpen {
		return
	}
	c.checkout.remaining--
	c.view.ShowCountdown(c.checkout.remaining)

	if c.checkout.remaining > 0 {
		c.scheduleTick(generation)
		return
	}
	c.checkout.timer = nil
	c.checkout.state = CheckoutDismissed
	c.view.DismissCheckout()
	c.view.ScrollTo(SectionProducts)
	c.log.Debug("Checkout dismissed by countdown")
}

// stopCountdown cancels the pending tick. Caller holds c.mu.
func (c *Controller) stopCountdown() {
	if c.checkout.timer != nil {
		c.checkout.timer.Stop()
		c.checkout.timer = nil
	}
}
