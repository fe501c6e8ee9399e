package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/audit"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type ProfessionalHandler struct {
	store storage.Storage
	audit *audit.Dispatcher
}

func NewProfessionalHandler(store storage.Storage, audit *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{store: store, audit: audit}
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	professionals, err := h.store.ListProfessionals(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list professionals")
		return
	}
	httpresp.List(c, professionals)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	professional, err := h.store.GetProfessional(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "professional_not_found", "professional not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load professional")
		return
	}
	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req storage.InsertProfessional
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	professional, err := h.store.CreateProfessional(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create professional")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: professional.ClientID,
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &professional.ID,
	})

	httpresp.Created(c, professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	var req storage.UpdateProfessional
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	professional, err := h.store.UpdateProfessional(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "professional_not_found", "professional not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update professional")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: professional.ClientID,
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &professional.ID,
	})

	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProfessional(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete professional")
		return
	}
	c.Status(204)
}
