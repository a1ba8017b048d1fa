package handler

import (
	"net/http"

	"github.com/lifeos-app/xp-platform/internal/ledger"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store ledger.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store ledger.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"ok":     false,
			"reason": "store not reachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
