// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/stockroom/internal/domain/model"
	"github.com/okian/stockroom/pkg/metrics"
)

// CreateHandler handles item creation.
type CreateHandler struct {
	deps Dependencies
}

// NewCreateHandler creates a new create handler.
func NewCreateHandler(deps Dependencies) *CreateHandler {
	return &CreateHandler{deps: deps}
}

// itemRequest mirrors the create payload. Pointer fields distinguish an
// omitted field from a zero value so all four can be required.
type itemRequest struct {
	Name     *string         `json:"name"`
	Price    *float64        `json:"price"`
	Count    *int            `json:"count"`
	Category *model.Category `json:"category"`
}

func (req itemRequest) toItem() (model.Item, error) {
	switch {
	case req.Name == nil:
		return model.Item{}, errors.New("missing name")
	case req.Price == nil:
		return model.Item{}, errors.New("missing price")
	case req.Count == nil:
		return model.Item{}, errors.New("missing count")
	case req.Category == nil:
		return model.Item{}, errors.New("missing category")
	}
	item := model.Item{
		Name:     *req.Name,
		Price:    *req.Price,
		Count:    *req.Count,
		Category: *req.Category,
	}
	if err := item.Validate(); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// HandleCreateItem handles POST / requests: validate the full payload, insert
// it, and echo the validated input. The store-assigned id is not reflected in
// the response.
func (h *CreateHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_item"

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}

	item, err := req.toItem()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", WrapKind(op, ErrValidation, err))
		return
	}

	if _, err := h.deps.Insert(r.Context(), item.Record()); err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}

	metrics.RecordItemCreated()
	writeJSON(w, http.StatusOK, addResponse{Added: item})
}
