// Package catalogclient is a typed client for the catalog HTTP API, as used
// by the storefront.
package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultRetries    = 2
	defaultRetryDelay = 500 * time.Millisecond
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Status      string          `json:"status,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// ListParams narrows a List call. Zero values are left out of the query.
type ListParams struct {
	Search   string
	Category string
	MinPrice int
	MaxPrice int
	Page     int
	Limit    int
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.MinPrice != 0 {
		q.Set("minPrice", strconv.Itoa(p.MinPrice))
	}
	if p.MaxPrice != 0 {
		q.Set("maxPrice", strconv.Itoa(p.MaxPrice))
	}
	if p.Page != 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit != 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// ProductInput is the body of Create and Update. Unset members are omitted,
// so an Update only touches what is set.
type ProductInput struct {
	Name        string           `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description string           `json:"description,omitempty"`
	Image       string           `json:"image,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Category    string           `json:"category,omitempty"`
	Status      string           `json:"status,omitempty"`
}

// APIError is a non-success envelope returned by the server.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("catalog api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("catalog api: %d %s: %s", e.Status, e.Message, strings.Join(e.Errors, "; "))
}

// IsNotFound reports whether err is a 404 from the catalog API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	retries    uint64
	retryDelay time.Duration
}

type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRetry sets how often a GET is retried after a transport failure and
// the pause between attempts.
func WithRetry(retries uint64, delay time.Duration) Option {
	return func(c *Client) {
		c.retries = retries
		c.retryDelay = delay
	}
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context, params ListParams) (*ProductPage, error) {
	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Search(ctx context.Context, term string) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/search", url.Values{"q": {term}}, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Create(ctx context.Context, input ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product and returns the removed record.
func (c *Client) Delete(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// do sends one API call. Only GET requests are retried, and only when the
// request never produced an HTTP response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	retries := c.retries
	if method != http.MethodGet {
		retries = 0
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if err := decodeResponse(resp, out); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), retries), ctx)
	return backoff.Retry(operation, policy)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s payload: %w", resp.Request.URL.Path, err)
		}
	}
	return nil
}
