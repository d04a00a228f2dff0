// Package client provides the HTTP client for the marketplace vendor API.
//
// All fulfillment-flow reads (order detail, inventory levels, shipping
// options) and writes (fulfillment creation) go through this package. The
// backend is consumed as a black box; responses are normalized into the
// domain model at this boundary so optional-field handling does not leak
// into the services.
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

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/logger"
	"github.com/guttosm/fulfillment-service/internal/metrics"
)

// VendorAPI defines the backend operations the fulfillment flow depends on.
type VendorAPI interface {
	// GetOrder retrieves an order with line items and shipping methods.
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	// ListShippingOptions retrieves the shipping options available to the
	// vendor, keyed by option ID.
	ListShippingOptions(ctx context.Context) (map[string]model.ShippingOption, error)
	// ListInventoryLevels retrieves availability for the given items at a
	// location, keyed by item ID. Items without stock records are absent.
	ListInventoryLevels(ctx context.Context, locationID string, itemIDs []string) (map[string]model.InventoryLevel, error)
	// CreateFulfillment creates one fulfillment for the order.
	CreateFulfillment(ctx context.Context, orderID string, payload model.FulfillmentPayload) (*model.Fulfillment, error)
}

// APIError is a non-2xx response from the backend carrying the
// human-readable message the panel surfaces to the operator.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Config holds backend client configuration.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client is the HTTP implementation of VendorAPI.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new backend client.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// orderEnvelope wraps the backend's order detail response.
type orderEnvelope struct {
	Order model.Order `json:"order"`
}

// GetOrder retrieves an order with line items and shipping methods.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &env, "get_order"); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

type shippingOptionsEnvelope struct {
	ShippingOptions []model.ShippingOption `json:"shipping_options"`
}

// ListShippingOptions retrieves the vendor's shipping options keyed by ID.
func (c *Client) ListShippingOptions(ctx context.Context) (map[string]model.ShippingOption, error) {
	var env shippingOptionsEnvelope
	if err := c.do(ctx, http.MethodGet, "/shipping-options", nil, &env, "list_shipping_options"); err != nil {
		return nil, err
	}

	options := make(map[string]model.ShippingOption, len(env.ShippingOptions))
	for _, opt := range env.ShippingOptions {
		options[opt.ID] = opt
	}
	return options, nil
}

type inventoryLevelsEnvelope struct {
	InventoryLevels []model.InventoryLevel `json:"inventory_levels"`
}

// ListInventoryLevels retrieves availability for items at a location.
func (c *Client) ListInventoryLevels(ctx context.Context, locationID string, itemIDs []string) (map[string]model.InventoryLevel, error) {
	q := url.Values{}
	q.Set("location_id", locationID)
	for _, id := range itemIDs {
		q.Add("item_id", id)
	}

	var env inventoryLevelsEnvelope
	if err := c.do(ctx, http.MethodGet, "/inventory-levels?"+q.Encode(), nil, &env, "list_inventory_levels"); err != nil {
		return nil, err
	}

	levels := make(map[string]model.InventoryLevel, len(env.InventoryLevels))
	for _, lvl := range env.InventoryLevels {
		levels[lvl.ItemID] = lvl
	}
	return levels, nil
}

type fulfillmentEnvelope struct {
	Fulfillment model.Fulfillment `json:"fulfillment"`
}

// CreateFulfillment creates one fulfillment for the order.
func (c *Client) CreateFulfillment(ctx context.Context, orderID string, payload model.FulfillmentPayload) (*model.Fulfillment, error) {
	var env fulfillmentEnvelope
	path := "/orders/" + url.PathEscape(orderID) + "/fulfillments"
	if err := c.do(ctx, http.MethodPost, path, payload, &env, "create_fulfillment"); err != nil {
		return nil, err
	}
	return &env.Fulfillment, nil
}

// do issues one backend request and decodes the response into out.
// Non-2xx responses are returned as *APIError with the backend's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, operation string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(operation, time.Since(start), "error")
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordBackendRequest(operation, time.Since(start), "error")
		return decodeAPIError(resp)
	}
	metrics.RecordBackendRequest(operation, time.Since(start), "success")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// backendError is the backend's error payload shape.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeAPIError extracts the human-readable message from an error response.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload backendError
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Error != "" {
			apiErr.Message = payload.Error
		}
	}

	if apiErr.Message == "" {
		logger.Logger().Debug().
			Int("status", resp.StatusCode).
			Str("body", string(data)).
			Msg("Backend error response without message")
	}

	return apiErr
}
