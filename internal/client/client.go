// Package client is the thin HTTP adapter between the probe and the remote
// catalog service: create/list/delete per entity kind plus the paginated
// query surface. It translates payloads and query parameters into requests
// and decodes the Spring-style responses; it holds no state beyond the
// base URL and the transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/observability"
)

// Client talks to one catalog service instance. All methods are synchronous
// and issue exactly one request; there are no retries.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
	tracer *observability.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the diagnostic logger. If not called, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the request tracer.
func WithTracer(t *observability.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a Client for the service at baseURL, e.g.
// "http://localhost:8080/api". A trailing slash is tolerated.
func New(baseURL string, opts ...Option) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	c := &Client{
		base:   baseURL,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default(),
		tracer: observability.NewTracer(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string { return c.base }

// response is a fully-read HTTP response.
type response struct {
	status   int
	header   http.Header
	body     []byte
	duration time.Duration
}

// do issues one request and reads the body. A transport-level failure is
// wrapped in ErrUnreachable so callers can classify it as fatal.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*response, error) {
	var bodyReader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("catalog: marshal %s %s: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("catalog: build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	_, span := c.tracer.StartRequest(ctx, method, path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.EndSpan(span, err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	//nolint:errcheck
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	observability.EndSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s %s: %w", method, path, err)
	}

	c.logger.Debug("remote call",
		"method", method, "path", path,
		"status", resp.StatusCode, "bytes", len(raw))

	return &response{
		status:   resp.StatusCode,
		header:   resp.Header,
		body:     raw,
		duration: time.Since(start),
	}, nil
}

// created is the minimal projection of a creation response.
type created struct {
	ID int64 `json:"id"`
}

func (c *Client) create(ctx context.Context, path string, payload any) (int64, error) {
	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return 0, err
	}
	if resp.status != http.StatusOK && resp.status != http.StatusCreated {
		return 0, statusError(resp.status, resp.body)
	}
	var out created
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return 0, fmt.Errorf("%w: POST %s: %v", ErrDecode, path, err)
	}
	return out.ID, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	// Some services answer 200 with a body instead of a bare 204.
	if resp.status != http.StatusNoContent && resp.status != http.StatusOK {
		return statusError(resp.status, resp.body)
	}
	return nil
}

func list[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, statusError(resp.status, resp.body)
	}
	var out []T
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
	}
	return out, nil
}

// Ping verifies the service is reachable and answering reads.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/products/all", nil)
	if err != nil {
		return err
	}
	if resp.status != http.StatusOK {
		return statusError(resp.status, resp.body)
	}
	return nil
}

// CreateCategory creates a category and returns its assigned identifier.
func (c *Client) CreateCategory(ctx context.Context, cat catalog.Category) (int64, error) {
	return c.create(ctx, "/categories", cat)
}

// ListCategories returns all remote categories.
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return list[catalog.Category](c, ctx, "/categories")
}

// DeleteCategory deletes one category by id.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, "/categories/"+strconv.FormatInt(id, 10))
}

// CreateUser creates a user and returns its assigned identifier.
func (c *Client) CreateUser(ctx context.Context, u catalog.User) (int64, error) {
	return c.create(ctx, "/users", u)
}

// ListUsers returns all remote users.
func (c *Client) ListUsers(ctx context.Context) ([]catalog.User, error) {
	return list[catalog.User](c, ctx, "/users")
}

// DeleteUser deletes one user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, "/users/"+strconv.FormatInt(id, 10))
}

// CreateProduct creates a product and returns its assigned identifier.
func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (int64, error) {
	return c.create(ctx, "/products", p)
}

// ListProducts returns the unpaginated product collection.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.ProductView, error) {
	return list[catalog.ProductView](c, ctx, "/products/all")
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (catalog.ProductView, error) {
	path := "/products/" + strconv.FormatInt(id, 10)
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return catalog.ProductView{}, err
	}
	if resp.status != http.StatusOK {
		return catalog.ProductView{}, statusError(resp.status, resp.body)
	}
	var out catalog.ProductView
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return catalog.ProductView{}, fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
	}
	return out, nil
}

// DeleteProduct deletes one product by id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, "/products/"+strconv.FormatInt(id, 10))
}

// QueryResult carries a paginated read response: the decoded page, the set
// of top-level keys the body actually contained, the wall-clock duration,
// and any Server-Timing metrics the service emitted.
type QueryResult struct {
	Status   int
	Page     catalog.Page
	Fields   catalog.FieldSet
	Duration time.Duration
	Timings  []Timing
}

// Timing is one parsed Server-Timing metric.
type Timing struct {
	Name     string
	Duration time.Duration
}

// QueryProducts issues one paginated read against the variant selected by q.
// A non-200 status is not an error here; the harness inspects Status and
// classifies per check. Transport failures still return an error.
func (c *Client) QueryProducts(ctx context.Context, q Query) (*QueryResult, error) {
	path, err := q.path()
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	result := &QueryResult{
		Status:   resp.status,
		Duration: resp.duration,
		Timings:  parseServerTiming(resp.header),
	}
	if resp.status != http.StatusOK {
		return result, nil
	}

	var fields catalog.FieldSet
	if err := json.Unmarshal(resp.body, &fields); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
	}
	result.Fields = fields
	if err := json.Unmarshal(resp.body, &result.Page); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
	}
	return result, nil
}

// parseServerTiming extracts metrics from an optional Server-Timing header.
// Absent or malformed headers simply yield no timings.
func parseServerTiming(h http.Header) []Timing {
	raw := h.Get(servertiming.HeaderKey)
	if raw == "" {
		return nil
	}
	parsed, err := servertiming.ParseHeader(raw)
	if err != nil {
		return nil
	}
	timings := make([]Timing, 0, len(parsed.Metrics))
	for _, m := range parsed.Metrics {
		timings = append(timings, Timing{Name: m.Name, Duration: m.Duration})
	}
	return timings
}
