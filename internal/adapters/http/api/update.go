// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/okian/stockroom/internal/domain/model"
	"github.com/okian/stockroom/pkg/metrics"
)

// Bounds on update parameters.
const (
	updateNameMinLen = 1
	updateNameMaxLen = 8
)

// UpdateHandler handles partial item updates.
type UpdateHandler struct {
	deps Dependencies
}

// NewUpdateHandler creates a new update handler.
func NewUpdateHandler(deps Dependencies) *UpdateHandler {
	return &UpdateHandler{deps: deps}
}

// HandleUpdateItem handles PUT /update/{item_id} requests. Existence is
// checked first; only supplied parameters end up in the change set.
func (h *UpdateHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_item"

	itemID, err := strconv.Atoi(r.PathValue("item_id"))
	if err != nil || itemID < 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_error",
			NewKind(op, errors.New("item_id must be a non-negative integer")))
		return
	}

	changes, err := parseUpdateParams(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}

	idFilter := store.Filters{"id": strconv.Itoa(itemID)}

	existing, err := h.deps.Select(r.Context(), idFilter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}
	if len(existing) == 0 {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Item not found"})
		return
	}

	if len(changes) == 0 {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "No fields to update"})
		return
	}

	rows, err := h.deps.Update(r.Context(), changes, idFilter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}
	if len(rows) == 0 {
		writeJSON(w, http.StatusBadRequest, updateResultResponse{Message: "Item was not updated", Data: []store.Row{}})
		return
	}

	metrics.RecordItemUpdated()
	writeJSON(w, http.StatusOK, updateResultResponse{Message: "Item updated successfully", Data: rows})
}

// parseUpdateParams builds the partial-update change set from the supplied
// query parameters, enforcing the per-parameter bounds.
func parseUpdateParams(r *http.Request) (map[string]any, error) {
	params := r.URL.Query()
	changes := map[string]any{}

	if params.Has("name") {
		name := params.Get("name")
		if n := utf8.RuneCountInString(name); n < updateNameMinLen || n > updateNameMaxLen {
			return nil, errors.New("name must be 1 to 8 characters")
		}
		changes["name"] = name
	}

	if params.Has("price") {
		price, err := strconv.ParseFloat(params.Get("price"), 64)
		if err != nil {
			return nil, errors.New("price must be a number")
		}
		if price <= 0 {
			return nil, errors.New("price must be greater than zero")
		}
		changes["price"] = price
	}

	if params.Has("count") {
		count, err := strconv.Atoi(params.Get("count"))
		if err != nil {
			return nil, errors.New("count must be an integer")
		}
		if count < 0 {
			return nil, errors.New("count must not be negative")
		}
		changes["count"] = count
	}

	if params.Has("category") {
		category, err := model.ParseCategory(params.Get("category"))
		if err != nil {
			return nil, err
		}
		changes["category"] = category.String()
	}

	return changes, nil
}
