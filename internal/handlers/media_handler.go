package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/backup"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/media"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type MediaHandler struct {
	store    storage.Storage
	uploader backup.Uploader
}

func NewMediaHandler(store storage.Storage, uploader backup.Uploader) *MediaHandler {
	return &MediaHandler{store: store, uploader: uploader}
}

// UploadLogo takes a multipart "logo" file, normalizes it to webp and
// records it against the tenant's branding. Without an uploader the
// processed image comes straight back in the response.
func (h *MediaHandler) UploadLogo(c *gin.Context) {
	clientID := c.Param("id")
	if _, err := h.store.GetClient(c.Request.Context(), clientID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "client not found")
			return
		}
		httperr.Internal(c, "get_failed", "could not load client")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "logo file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "read_failed", "could not read upload")
		return
	}
	defer src.Close()

	data, err := media.ProcessLogo(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}

	if h.uploader == nil {
		c.Data(200, "image/webp", data)
		return
	}

	key := fmt.Sprintf("logos/%s.webp", clientID)
	location, err := h.uploader.Upload(c.Request.Context(), key, data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "could not store logo")
		return
	}

	branding, _ := json.Marshal(map[string]string{"logo_url": location})
	brandingJSON := string(branding)
	if _, err := h.store.UpdateClient(c.Request.Context(), clientID, storage.UpdateClient{
		BrandingSettings: &brandingJSON,
	}); err != nil {
		httperr.Internal(c, "update_failed", "could not save branding")
		return
	}

	httpresp.OK(c, gin.H{"logo_url": location, "size": len(data)})
}
