package render_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/cart/carttest"
	"github.com/Deepika-251004/shampoo-website/models"
	"github.com/Deepika-251004/shampoo-website/render"
	"github.com/Deepika-251004/shampoo-website/storage"
)

func rosemary() models.Product {
	return models.Product{
		ID:          1,
		Name:        "Rosemary Shampoo",
		Description: models.StringPtr("Strengthens roots."),
		Ingredients: models.StringPtr("Rosemary oil, Biotin"),
		ImageURL:    models.StringPtr("https://cdn.example.com/rosemary.jpg"),
	}
}

func argan() models.Product {
	return models.Product{ID: 2, Name: "Argan Conditioner"}
}

func assertGolden(t *testing.T, name string, out []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, out)
}

func sampleCart() *cart.Cart {
	c := &cart.Cart{}
	c.Add(rosemary())
	c.Add(rosemary())
	c.Add(argan())
	return c
}

func TestShowCatalog_Loaded(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)

	view.ShowCatalog(render.ProjectCatalog([]models.Product{rosemary(), argan()}, nil))

	require.NoError(t, view.Err())
	assertGolden(t, "catalog_loaded", buf.Bytes())
}

func TestShowCatalog_States(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)

	view.ShowCatalog(render.LoadingCatalog())
	view.ShowCatalog(render.ProjectCatalog(nil, nil))
	view.ShowCatalog(render.ProjectCatalog([]models.Product{rosemary()}, errors.New("boom")))

	assertGolden(t, "catalog_states", buf.Bytes())
}

func TestShowCatalog_AddedLabel(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)
	catalog := render.ProjectCatalog([]models.Product{rosemary(), argan()}, nil)

	view.ShowAddConfirmation(2, true)
	view.ShowCatalog(catalog)
	view.ShowAddConfirmation(2, false)
	view.ShowCatalog(catalog)

	assertGolden(t, "catalog_added", buf.Bytes())
}

func TestShowCart(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)

	view.ShowCart(cart.ProjectCart(sampleCart()))
	assertGolden(t, "cart_lines", buf.Bytes())

	buf.Reset()
	view.ShowCart(cart.ProjectCart(&cart.Cart{}))
	assertGolden(t, "cart_empty", buf.Bytes())
}

func TestShowCheckout(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)

	view.ShowCheckout(cart.ProjectCheckout(sampleCart(), cart.CheckoutSeconds))
	assertGolden(t, "checkout", buf.Bytes())

	buf.Reset()
	view.ShowCheckout(cart.ProjectCheckout(&cart.Cart{}, cart.CheckoutSeconds))
	assertGolden(t, "checkout_empty", buf.Bytes())
}

// A full session: add, increment, open checkout and let it expire.
func TestControllerSession(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)
	clock := carttest.NewManualClock()
	ctrl := cart.NewController(storage.NewMemory(), cart.WithView(view), cart.WithClock(clock))

	ctrl.RenderBadge()
	p := rosemary()
	require.NoError(t, ctrl.AddItem(&p, p.ID))
	clock.Advance(time.Second)
	require.NoError(t, ctrl.Increment(p.ID))
	ctrl.RenderCheckout()
	clock.Advance(cart.CheckoutSeconds * time.Second)

	require.NoError(t, view.Err())
	assertGolden(t, "session", buf.Bytes())
}

func TestShowAlert(t *testing.T) {
	var buf bytes.Buffer
	view := render.NewText(&buf)

	view.ShowAlert(render.AlertSuccess, "Thank you! Your message has been received.")
	view.ShowAlert(render.AlertError, "Please fill out all fields.")

	assert.Equal(t, "Success: Thank you! Your message has been received.\nError: Please fill out all fields.\n", buf.String())
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("closed pipe")
}

func TestText_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	view := render.NewText(w)

	view.ShowBadge(cart.Badge{Count: 1, Visible: true})
	view.ShowCart(cart.ProjectCart(sampleCart()))

	assert.EqualError(t, view.Err(), "closed pipe")
	assert.Equal(t, 1, w.n)
}
