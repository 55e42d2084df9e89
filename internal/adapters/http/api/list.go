// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ListHandler handles the unfiltered item listing.
type ListHandler struct {
	deps Dependencies
}

// NewListHandler creates a new list handler.
func NewListHandler(deps Dependencies) *ListHandler {
	return &ListHandler{deps: deps}
}

// HandleListItems handles GET / requests: a single select-all round trip,
// rows validated into Items in store order.
func (h *ListHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_items"

	rows, err := h.deps.Select(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", Wrap(op, err))
		return
	}

	items, err := decodeItems(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "invalid_record", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Data: items})
}
