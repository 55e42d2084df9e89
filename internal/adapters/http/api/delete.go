// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/okian/stockroom/pkg/metrics"
)

// DeleteHandler handles item deletion.
type DeleteHandler struct {
	deps Dependencies
}

// NewDeleteHandler creates a new delete handler.
func NewDeleteHandler(deps Dependencies) *DeleteHandler {
	return &DeleteHandler{deps: deps}
}

// HandleDeleteItem handles DELETE /delete/{item_id} requests. Deleting a
// missing id is not an error; the response carries an empty object instead
// of a record.
func (h *DeleteHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_item"

	itemID, err := strconv.Atoi(r.PathValue("item_id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error",
			NewKind(op, errors.New("item_id must be an integer")))
		return
	}

	rows, err := h.deps.Delete(r.Context(), store.Filters{"id": strconv.Itoa(itemID)})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}

	deleted := store.Row(`{}`)
	if len(rows) > 0 {
		deleted = rows[0]
		metrics.RecordItemDeleted()
	}
	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}
