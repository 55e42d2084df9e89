// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/okian/stockroom/internal/domain/model"
)

// QueryHandler handles filtered item queries.
type QueryHandler struct {
	deps Dependencies
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(deps Dependencies) *QueryHandler {
	return &QueryHandler{deps: deps}
}

// HandleQueryItems handles GET /items/ requests. Every supplied parameter
// adds one equality filter; none supplied means select-all with an all-null
// query echo.
func (h *QueryHandler) HandleQueryItems(w http.ResponseWriter, r *http.Request) {
	const op = "api.query_items"

	params := r.URL.Query()
	echo := queryEcho{}
	filters := store.Filters{}

	if params.Has("name") {
		name := params.Get("name")
		echo.Name = &name
		filters["name"] = name
	}

	if params.Has("price") {
		price, err := strconv.ParseFloat(params.Get("price"), 64)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
			return
		}
		echo.Price = &price
		filters["price"] = strconv.FormatFloat(price, 'f', -1, 64)
	}

	if params.Has("count") {
		count, err := strconv.Atoi(params.Get("count"))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
			return
		}
		echo.Count = &count
		filters["count"] = strconv.Itoa(count)
	}

	if params.Has("category") {
		category, err := model.ParseCategory(params.Get("category"))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
			return
		}
		echo.Category = &category
		// The filter compares the enum's string value, not its name.
		filters["category"] = category.String()
	}

	rows, err := h.deps.Select(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}

	items, err := decodeItems(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "invalid_record", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{Query: echo, Selection: items})
}
