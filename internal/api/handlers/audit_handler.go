// filepath: internal/api/handlers/audit_handler.go
package handlers

import (
	"net/http"
	"strconv"
)

const defaultAuditLimit = 50

// @Summary List recent audit events
// @Description Returns the most recent audit trail entries, newest first. Only available when an audit database is configured.
// @Tags Audit
// @Produce json
// @Param limit query int false "Maximum number of events (default 50, max 500)"
// @Success 200 {array} models.AuditEvent
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /audit [get]
// @Security KeyAuth
func (h *Handlers) GetAuditEvents(w http.ResponseWriter, r *http.Request) {
	if h.AuditStore == nil {
		respondWithError(w, http.StatusNotFound, "Audit store not configured")
		return
	}

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = n
	}
	if limit > 500 {
		limit = 500
	}

	events, err := h.AuditStore.GetAuditEvents(limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to read audit events")
		return
	}

	respondWithJSON(w, http.StatusOK, events)
}
