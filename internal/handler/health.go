package handler

import (
	"database/sql"
	"net/http"
	"time"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a new HealthHandler. A nil db reports healthy
// without a database check.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth handles GET /api/health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			resp["status"] = "unhealthy"
			resp["database"] = "unreachable"
			writeJSON(w, http.StatusInternalServerError, resp)
			return
		}
		resp["database"] = "connected"
	}

	writeJSON(w, http.StatusOK, resp)
}
