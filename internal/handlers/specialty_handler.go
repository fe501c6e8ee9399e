package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type SpecialtyHandler struct {
	store storage.Storage
}

func NewSpecialtyHandler(store storage.Storage) *SpecialtyHandler {
	return &SpecialtyHandler{store: store}
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	specialties, err := h.store.ListSpecialties(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list specialties")
		return
	}
	httpresp.List(c, specialties)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	specialty, err := h.store.GetSpecialty(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "specialty_not_found", "specialty not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load specialty")
		return
	}
	httpresp.OK(c, specialty)
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req storage.InsertSpecialty
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	specialty, err := h.store.CreateSpecialty(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create specialty")
		return
	}
	httpresp.Created(c, specialty)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	var req storage.UpdateSpecialty
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	specialty, err := h.store.UpdateSpecialty(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "specialty_not_found", "specialty not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update specialty")
		return
	}
	httpresp.OK(c, specialty)
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteSpecialty(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete specialty")
		return
	}
	c.Status(204)
}
