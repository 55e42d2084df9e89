package store_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records the last request the fake store saw.
type capture struct {
	method string
	path   string
	query  map[string]string
	header http.Header
	body   []byte
}

func newFakeStore(t *testing.T, status int, response string, got *capture) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = map[string]string{}
		for k, v := range r.URL.Query() {
			got.query[k] = v[0]
		}
		got.header = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got.body = body

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
}

func TestClientSelect(t *testing.T) {
	tests := []struct {
		name      string
		filters   store.Filters
		wantQuery map[string]string
	}{
		{
			name:      "unfiltered select all",
			filters:   nil,
			wantQuery: map[string]string{"select": "*"},
		},
		{
			name:      "single equality filter",
			filters:   store.Filters{"category": "tools"},
			wantQuery: map[string]string{"select": "*", "category": "eq.tools"},
		},
		{
			name:      "conjunction of filters",
			filters:   store.Filters{"name": "Hammer", "price": "9.99"},
			wantQuery: map[string]string{"select": "*", "name": "eq.Hammer", "price": "eq.9.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got capture
			srv := newFakeStore(t, http.StatusOK, `[{"id":1,"name":"Hammer"}]`, &got)
			defer srv.Close()

			c := store.New(srv.URL, "secret-key", "items")
			rows, err := c.Select(context.Background(), tt.filters)

			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, http.MethodGet, got.method)
			assert.Equal(t, "/rest/v1/items", got.path)
			assert.Equal(t, tt.wantQuery, got.query)
			assert.Equal(t, "secret-key", got.header.Get("apikey"))
			assert.Equal(t, "Bearer secret-key", got.header.Get("Authorization"))
		})
	}
}

func TestClientInsert(t *testing.T) {
	var got capture
	srv := newFakeStore(t, http.StatusCreated, `[{"id":4,"name":"Saw","price":12.5,"count":3,"category":"tools"}]`, &got)
	defer srv.Close()

	c := store.New(srv.URL, "secret-key", "items")
	record := map[string]any{"name": "Saw", "price": 12.5, "count": 3, "category": "tools"}
	rows, err := c.Insert(context.Background(), record)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "return=representation", got.header.Get("Prefer"))
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(got.body, &sent))
	assert.Equal(t, "tools", sent["category"])
	assert.NotContains(t, sent, "id")
}

func TestClientUpdate(t *testing.T) {
	var got capture
	srv := newFakeStore(t, http.StatusOK, `[{"id":7,"name":"Bolt","price":0.5,"count":10,"category":"consumables"}]`, &got)
	defer srv.Close()

	c := store.New(srv.URL, "secret-key", "items")
	rows, err := c.Update(context.Background(), map[string]any{"count": 10}, store.Filters{"id": "7"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "eq.7", got.query["id"])
	assert.JSONEq(t, `{"count":10}`, string(got.body))
}

func TestClientDelete(t *testing.T) {
	var got capture
	srv := newFakeStore(t, http.StatusOK, `[]`, &got)
	defer srv.Close()

	c := store.New(srv.URL, "secret-key", "items")
	rows, err := c.Delete(context.Background(), store.Filters{"id": "42"})

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "eq.42", got.query["id"])
	assert.Equal(t, "return=representation", got.header.Get("Prefer"))
}

func TestClientErrors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		var got capture
		srv := newFakeStore(t, http.StatusUnauthorized, `{"message":"bad key"}`, &got)
		defer srv.Close()

		c := store.New(srv.URL, "wrong-key", "items")
		_, err := c.Select(context.Background(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrRequestFailed)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed response body", func(t *testing.T) {
		var got capture
		srv := newFakeStore(t, http.StatusOK, `{"not":"a list"}`, &got)
		defer srv.Close()

		c := store.New(srv.URL, "secret-key", "items")
		_, err := c.Select(context.Background(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrDecodeResponse)
	})

	t.Run("empty body is an empty row set", func(t *testing.T) {
		var got capture
		srv := newFakeStore(t, http.StatusOK, ``, &got)
		defer srv.Close()

		c := store.New(srv.URL, "secret-key", "items")
		rows, err := c.Delete(context.Background(), store.Filters{"id": "9"})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("context cancellation propagates", func(t *testing.T) {
		var got capture
		srv := newFakeStore(t, http.StatusOK, `[]`, &got)
		defer srv.Close()

		c := store.New(srv.URL, "secret-key", "items", store.WithTimeout(time.Second))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Select(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrRequestFailed)
	})
}
