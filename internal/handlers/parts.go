package handlers

import (
	"net/http"

	"github.com/ukydev/garage-service/internal/service"
)

// PartsHandler serves the inventory surface
type PartsHandler struct {
	inventory *service.InventoryService
}

// NewPartsHandler creates a new parts handler
func NewPartsHandler(inventory *service.InventoryService) *PartsHandler {
	return &PartsHandler{inventory: inventory}
}

// List returns the parts inventory in storage order
func (h *PartsHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.inventory.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}
