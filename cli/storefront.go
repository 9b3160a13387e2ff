package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/cart"
	"github.com/Deepika-251004/shampoo-website/client"
	"github.com/Deepika-251004/shampoo-website/render"
	"github.com/Deepika-251004/shampoo-website/storage"
)

const msgSendFailed = "Failed to send message."

func newAPIClient(opts *RootOptions) *client.Client {
	return client.New(opts.Config.Client.APIBaseURL, opts.Config.Client.HTTPTimeout, client.WithLogger(opts.Log))
}

// openCart opens the cart's durable storage and rehydrates a controller
// that draws on view. The returned func closes the storage.
func openCart(opts *RootOptions, view cart.View, extra ...cart.Option) (*cart.Controller, func() error, error) {
	store, err := storage.Open(opts.Config.Client.StatePath)
	if err != nil {
		return nil, nil, err
	}
	opts.Log.Debug("Opened cart storage", zap.String("path", opts.Config.Client.StatePath))

	copts := append([]cart.Option{cart.WithView(view), cart.WithLogger(opts.Log)}, extra...)
	return cart.NewController(store, copts...), store.Close, nil
}

// fetchCatalog draws the loading state, fetches the products and draws the
// result. The fetch is not retried.
func fetchCatalog(ctx context.Context, api *client.Client, view *render.Text, log *zap.Logger) render.CatalogView {
	view.ShowCatalog(render.LoadingCatalog())
	products, err := api.Products(ctx)
	if err != nil {
		log.Warn("Failed to load products", zap.Error(err))
	}
	catalog := render.ProjectCatalog(products, err)
	view.ShowCatalog(catalog)
	return catalog
}

// submitContact sends msg and shows the outcome as an alert. It returns
// false when the message was not accepted.
func submitContact(ctx context.Context, api *client.Client, view *render.Text, msg client.ContactMessage) bool {
	ack, err := api.SubmitContact(ctx, msg)
	if err == nil {
		view.ShowAlert(render.AlertSuccess, ack)
		return true
	}

	var verr *client.ValidationError
	var uerr *client.UpstreamError
	switch {
	case errors.As(err, &verr):
		view.ShowAlert(render.AlertError, verr.Message)
	case errors.As(err, &uerr):
		view.ShowAlert(render.AlertError, uerr.Message)
	default:
		view.ShowAlert(render.AlertError, msgSendFailed)
	}
	return false
}

func parseProductID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

// scrollSignal wraps a view and closes Done once the view is sent back to a
// section, which only happens when a checkout countdown runs out.
type scrollSignal struct {
	cart.View
	once sync.Once
	done chan struct{}
}

func newScrollSignal(v cart.View) *scrollSignal {
	return &scrollSignal{View: v, done: make(chan struct{})}
}

func (s *scrollSignal) ScrollTo(section string) {
	s.View.ScrollTo(section)
	s.once.Do(func() { close(s.done) })
}

func (s *scrollSignal) Done() <-chan struct{} { return s.done }
