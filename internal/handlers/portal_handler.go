package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/middleware"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// PortalHandler serves the tenant-facing endpoints. The client id comes
// from the bearer token, never from the request.
type PortalHandler struct {
	store storage.Storage
}

func NewPortalHandler(store storage.Storage) *PortalHandler {
	return &PortalHandler{store: store}
}

func (h *PortalHandler) Me(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	client, err := h.store.GetClient(c.Request.Context(), clientID)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load client")
		return
	}
	httpresp.OK(c, client)
}

func (h *PortalHandler) Appointments(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	appointments, err := h.store.ListAppointments(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list appointments")
		return
	}
	httpresp.List(c, appointments)
}

func (h *PortalHandler) Professionals(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	professionals, err := h.store.ListProfessionals(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list professionals")
		return
	}
	httpresp.List(c, professionals)
}
