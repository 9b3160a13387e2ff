package carttest

import (
	"fmt"
	"sync"

	"github.com/Deepika-251004/shampoo-website/cart"
)

// RecordingView keeps every call as a short event string plus the last
// display model of each kind.
type RecordingView struct {
	mu       sync.Mutex
	events   []string
	Badge    cart.Badge
	Cart     cart.CartView
	Checkout cart.CheckoutView
}

func (v *RecordingView) record(format string, args ...any) {
	v.events = append(v.events, fmt.Sprintf(format, args...))
}

func (v *RecordingView) ShowBadge(b cart.Badge) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Badge = b
	if b.Visible {
		v.record("badge:%d", b.Count)
	} else {
		v.record("badge:hidden")
	}
}

func (v *RecordingView) ShowAddConfirmation(productID int, active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if active {
		v.record("added:%d", productID)
	} else {
		v.record("reverted:%d", productID)
	}
}

func (v *RecordingView) ShowCart(c cart.CartView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Cart = c
	v.record("cart:%d", c.TotalItems)
}

func (v *RecordingView) ShowCheckout(c cart.CheckoutView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Checkout = c
	v.record("checkout:%d", c.TotalItems)
}

func (v *RecordingView) ShowCountdown(remaining int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.record("countdown:%d", remaining)
}

func (v *RecordingView) DismissCheckout() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.record("dismiss")
}

func (v *RecordingView) ScrollTo(section string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.record("scroll:%s", section)
}

// Events returns a copy of the recorded events.
func (v *RecordingView) Events() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

// Count returns how many times event was recorded.
func (v *RecordingView) Count(event string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, e := range v.events {
		if e == event {
			n++
		}
	}
	return n
}

// Reset forgets the recorded events.
func (v *RecordingView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = nil
}
