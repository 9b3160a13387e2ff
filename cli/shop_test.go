package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/cart/carttest"
	"github.com/Deepika-251004/shampoo-website/client"
	"github.com/Deepika-251004/shampoo-website/render"
	"github.com/Deepika-251004/shampoo-website/storage"
)

type shopFixture struct {
	out   *bytes.Buffer
	store *storage.Memory
	clock *carttest.ManualClock
	ctrl  *cart.Controller
	api   *client.Client
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()
	f := &shopFixture{
		out:   &bytes.Buffer{},
		store: storage.NewMemory(),
		clock: carttest.NewManualClock(),
		api:   client.New(fakeAPI(t).URL, time.Second),
	}
	return f
}

func (f *shopFixture) run(t *testing.T, input string) string {
	t.Helper()
	view := render.NewText(f.out)
	f.ctrl = cart.NewController(f.store, cart.WithView(view), cart.WithClock(f.clock))
	s := newShopSession(strings.NewReader(input), f.out, view, f.ctrl, f.api, zap.NewNop())
	require.NoError(t, s.run(context.Background()))
	return f.out.String()
}

func TestShop_PageLoad(t *testing.T) {
	f := newShopFixture(t)

	out := f.run(t, "quit\n")

	assert.True(t, strings.HasPrefix(out, "[cart]\nLoading products...\n#1 Mint Shampoo\n"), out)
	assert.Contains(t, out, "#2 Oat Balm\n")
	assert.Contains(t, out, "Type help for commands.\n")
}

func TestShop_CartFlow(t *testing.T) {
	f := newShopFixture(t)

	out := f.run(t, strings.Join([]string{
		"add 1",
		"add 1",
		"add 2",
		"dec 1",
		"inc 2",
		"dec 9",
		"add 9",
		"add one",
		"cart",
	}, "\n")+"\n")

	assert.Contains(t, out, "[cart: 1]\nAdded! (#1)\n")
	assert.Contains(t, out, "[cart: 2]\nAdded! (#1)\n")
	assert.Contains(t, out, "Product 9 is not in your cart.\n")
	assert.Contains(t, out, "Product 9 is not in the catalog.\n")
	assert.Contains(t, out, "invalid product id \"one\"\n")
	assert.True(t, strings.HasSuffix(out, `Cart
  #1 Mint Shampoo  [-] 1 [+]
     Ingredients: Mint oil
  #2 Oat Balm  [-] 2 [+]
     /img/oat.png
     Soothes.
     Ingredients: N/A
  3 items
> 
`), out)

	item, ok := f.ctrl.Snapshot().Item(2)
	require.True(t, ok)
	assert.Equal(t, 2, item.Quantity)

	stored, ok, err := f.store.Get(cart.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, stored, `"name":"Oat Balm"`)
}

func TestShop_CheckoutAndClose(t *testing.T) {
	f := newShopFixture(t)

	out := f.run(t, "add 1\ncheckout\nclose\nclose\n")

	assert.Contains(t, out, "Checkout\n  Mint Shampoo 1x  $25.00 ($25.00 each)\n     Mint oil\n  Total (1 items): $25.00\n  Closing in 10s\n")
	assert.Contains(t, out, "Checkout closed.\n")
	assert.Contains(t, out, "No checkout is open.\n")
	assert.NotContains(t, out, "Back to products.")
}

func TestShop_Contact(t *testing.T) {
	f := newShopFixture(t)

	out := f.run(t, "contact\nAna\nana@example.com\nDo you ship abroad?\ncontact\nAna\n\nHi\n")

	assert.Contains(t, out, "Name: Email: Message: Success: Thank you! Your message has been received.\n")
	assert.Contains(t, out, "Error: Please fill out all fields.\n")
}

func TestShop_HelpAndUnknown(t *testing.T) {
	f := newShopFixture(t)

	out := f.run(t, "help\nfrobnicate\n")

	assert.Contains(t, out, "checkout      show the checkout summary")
	assert.Contains(t, out, "Unknown command \"frobnicate\". Type help for commands.\n")
}

func TestShop_CancelledContext(t *testing.T) {
	f := newShopFixture(t)
	view := render.NewText(f.out)
	ctrl := cart.NewController(f.store, cart.WithView(view), cart.WithClock(f.clock))

	pr, pw := io.Pipe()
	defer pw.Close()
	s := newShopSession(pr, f.out, view, ctrl, f.api, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shop did not stop on cancel")
	}
}
