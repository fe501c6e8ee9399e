package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

const defaultAuditLimit = 50

type AuditLogsHandler struct {
	store storage.Storage
}

func NewAuditLogsHandler(store storage.Storage) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// List returns the newest audit entries for one tenant.
func (h *AuditLogsHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httperr.BadRequest(c, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.store.ListAuditLogs(c.Request.Context(), clientID, limit)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list audit logs")
		return
	}
	httpresp.List(c, logs)
}
