package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type ServiceHandler struct {
	store storage.Storage
}

func NewServiceHandler(store storage.Storage) *ServiceHandler {
	return &ServiceHandler{store: store}
}

func (h *ServiceHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	services, err := h.store.ListServices(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list services")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.store.GetService(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load service")
		return
	}
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req storage.InsertService
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service, err := h.store.CreateService(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create service")
		return
	}
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req storage.UpdateService
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service, err := h.store.UpdateService(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update service")
		return
	}
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete service")
		return
	}
	c.Status(204)
}
