// Package client talks to the catalog service on behalf of the storefront.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Deepika-251004/shampoo-website/models"
)

const (
	productsPath = "/api/products"
	contactPath  = "/api/contact"

	// maxBody caps how much of a response is read.
	maxBody = 4 << 20
)

// Client is an HTTP client for the catalog API. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client for the API rooted at baseURL. timeout bounds every
// request; zero means no limit beyond the caller's context.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("client")
	return c
}

// Products fetches the full catalog. Any non-2xx answer is an error.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &UpstreamError{StatusCode: status, Message: errorMessage(body, "Failed to fetch products")}
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	c.log.Debug("Fetched products", zap.Int("count", len(products)))
	return products, nil
}

// ContactMessage is what the contact form submits.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Trimmed returns the message with surrounding whitespace removed.
func (m ContactMessage) Trimmed() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// SubmitContact validates msg locally, posts it and returns the server's
// acknowledgement. Nothing is sent when a field is blank.
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) (string, error) {
	msg = msg.Trimmed()
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return "", &ValidationError{Message: msgFillAllFields}
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("encode contact message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var ack struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	decodeErr := json.Unmarshal(body, &ack)

	if status < 200 || status > 299 {
		message := ack.Error
		if decodeErr != nil || message == "" {
			message = msgSomethingWrong
		}
		return "", &UpstreamError{StatusCode: status, Message: message}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode contact response: %w", decodeErr)
	}
	if ack.Message == "" {
		ack.Message = msgSentDefault
	}
	return ack.Message, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Request failed", zap.String("method", req.Method), zap.String("url", req.URL.String()), zap.Error(err))
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	c.log.Debug("Request done",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
	)
	return resp.StatusCode, body, nil
}

func errorMessage(body []byte, fallback string) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return fallback
}
