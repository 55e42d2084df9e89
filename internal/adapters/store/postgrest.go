package store

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

	"github.com/okian/stockroom/pkg/metrics"
)

// Limits for error reporting.
const (
	errBodySnippetLimit = 256
	defaultTimeout      = 10 * time.Second
)

// Client talks to a hosted PostgREST table endpoint. Authentication is an API
// key on every request; authorization itself is the store's row-level
// security, never ours.
type Client struct {
	baseURL string
	table   string
	apiKey  string
	http    *http.Client
}

// compile-time check that Client satisfies Store.
var _ Store = (*Client)(nil)

// New creates a client for one table of the store at baseURL.
func New(baseURL, apiKey, table string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		table:   table,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Select returns all rows matching the filters.
func (c *Client) Select(ctx context.Context, filters Filters) ([]Row, error) {
	query := filterValues(filters)
	query.Set("select", "*")
	return c.do(ctx, http.MethodGet, query, nil, "select")
}

// Insert creates one row and returns the store's representation of it.
func (c *Client) Insert(ctx context.Context, record map[string]any) ([]Row, error) {
	return c.do(ctx, http.MethodPost, url.Values{}, record, "insert")
}

// Update applies changes to every matching row.
func (c *Client) Update(ctx context.Context, changes map[string]any, filters Filters) ([]Row, error) {
	return c.do(ctx, http.MethodPatch, filterValues(filters), changes, "update")
}

// Delete removes every matching row and returns them.
func (c *Client) Delete(ctx context.Context, filters Filters) ([]Row, error) {
	return c.do(ctx, http.MethodDelete, filterValues(filters), nil, "delete")
}

// filterValues encodes equality filters in PostgREST form: col=eq.value.
func filterValues(filters Filters) url.Values {
	values := url.Values{}
	for column, value := range filters {
		values.Set(column, "eq."+value)
	}
	return values
}

// do performs one round trip against the table endpoint and decodes the row
// list the store returns.
func (c *Client) do(ctx context.Context, method string, query url.Values, body any, op string) ([]Row, error) {
	start := time.Now()
	rows, err := c.roundTrip(ctx, method, query, body)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordStoreRequest(op, outcome)
	metrics.RecordStoreRequestDuration(op, float64(time.Since(start).Milliseconds()))

	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, c.table, err)
	}
	return rows, nil
}

func (c *Client) roundTrip(ctx context.Context, method string, query url.Values, body any) ([]Row, error) {
	endpoint := c.baseURL + "/rest/v1/" + c.table
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Mutations must echo the affected rows so callers can tell an
		// empty match from a successful write.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, snippet(raw))
	}

	rows := []Row{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return rows, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > errBodySnippetLimit {
		return s[:errBodySnippetLimit] + "..."
	}
	return s
}
