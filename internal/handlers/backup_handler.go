package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/backup"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type BackupHandler struct {
	service *backup.Service
}

func NewBackupHandler(service *backup.Service) *BackupHandler {
	return &BackupHandler{service: service}
}

type backupRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

// Run exports one tenant's data. With an upload bucket configured the
// result lands in S3; otherwise the SQL script comes back inline.
func (h *BackupHandler) Run(c *gin.Context) {
	var req backupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.service.Run(c.Request.Context(), req.ClientID)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "backup_failed", "could not run backup")
		return
	}
	httpresp.OK(c, result)
}

// History lists past backups for one tenant, newest first.
func (h *BackupHandler) History(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	backups, err := h.service.History(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list backups")
		return
	}
	httpresp.List(c, backups)
}
