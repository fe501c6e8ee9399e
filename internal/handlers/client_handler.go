package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/audit"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type ClientHandler struct {
	store storage.Storage
	audit *audit.Dispatcher
}

func NewClientHandler(store storage.Storage, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{store: store, audit: audit}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.store.ListClients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list clients")
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.store.GetClient(c.Request.Context(), c.Param("id"))
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

func (h *ClientHandler) Create(c *gin.Context) {
	var req storage.InsertClient
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.store.CreateClient(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create client")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: client.ID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req storage.UpdateClient
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.store.UpdateClient(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "client_not_found", "client not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update client")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: client.ID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete client")
		return
	}
	c.Status(204)
}
