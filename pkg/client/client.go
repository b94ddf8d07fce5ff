// Package client is a typed HTTP client for the cart API. It issues the same
// calls as the browser client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Code       string `json:"code"`
	Details    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type CartView struct {
	Items []domain.CartItem `json:"cart"`
	Total string            `json:"total"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetCart(ctx context.Context) (*CartView, error) {
	var view CartView
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) AddItem(ctx context.Context, productID string, qty int) (*domain.Cart, error) {
	body := map[string]any{"productId": productID, "qty": qty}
	var cart domain.Cart
	if err := c.do(ctx, http.MethodPost, "/api/cart", body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveItem(ctx context.Context, productID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(productID), nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) Checkout(ctx context.Context, name, email string, items []domain.CartItem) (*domain.Receipt, error) {
	body := map[string]any{"name": name, "email": email, "cartItems": items}
	var receipt domain.Receipt
	if err := c.do(ctx, http.MethodPost, "/api/checkout", body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
