// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/okian/stockroom/internal/domain/model"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps the
// handler layer testable against a substitute store.
type Dependencies interface {
	store.Store
}

// Server wires HTTP routes for the items API.
type Server struct {
	healthHandler *HealthHandler
	listHandler   *ListHandler
	queryHandler  *QueryHandler
	createHandler *CreateHandler
	updateHandler *UpdateHandler
	deleteHandler *DeleteHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		listHandler:   NewListHandler(deps),
		queryHandler:  NewQueryHandler(deps),
		createHandler: NewCreateHandler(deps),
		updateHandler: NewUpdateHandler(deps),
		deleteHandler: NewDeleteHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Method and path-parameter
// matching is left to the mux patterns; handlers only see valid shapes.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.healthHandler.HandleHealth)
	mux.HandleFunc("GET /{$}", instrument(s.listHandler.HandleListItems, "list"))
	mux.HandleFunc("GET /items/{$}", instrument(s.queryHandler.HandleQueryItems, "query"))
	mux.HandleFunc("POST /{$}", instrument(s.createHandler.HandleCreateItem, "create"))
	mux.HandleFunc("PUT /update/{item_id}", instrument(s.updateHandler.HandleUpdateItem, "update"))
	mux.HandleFunc("DELETE /delete/{item_id}", instrument(s.deleteHandler.HandleDeleteItem, "delete"))
}

// instrument applies the standard middleware chain to a handler.
func instrument(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(next, endpoint))
}

// Response shapes shared across handlers.

type listResponse struct {
	Data []model.Item `json:"data"`
}

type queryResponse struct {
	Query     queryEcho    `json:"query"`
	Selection []model.Item `json:"selection"`
}

// queryEcho mirrors the received query parameters back to the caller;
// omitted parameters echo as null.
type queryEcho struct {
	Name     *string         `json:"name"`
	Price    *float64        `json:"price"`
	Count    *int            `json:"count"`
	Category *model.Category `json:"category"`
}

type addResponse struct {
	Added model.Item `json:"added"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// updateResultResponse carries the store's row echo alongside the outcome
// message. The rows are deliberately raw: the update path checks existence,
// not internal consistency of what the store returns.
type updateResultResponse struct {
	Message string      `json:"message"`
	Data    []store.Row `json:"data"`
}

type deleteResponse struct {
	Deleted store.Row `json:"deleted"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeItems parses store rows into validated Items. A single malformed
// record fails the whole read, matching the contract that stored data is
// validated on the way out.
func decodeItems(rows []store.Row) ([]model.Item, error) {
	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		var item model.Item
		if err := json.Unmarshal(row, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		items = append(items, item)
	}
	return items, nil
}
