package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/audit"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type AppointmentHandler struct {
	store storage.Storage
	audit *audit.Dispatcher
}

func NewAppointmentHandler(store storage.Storage, audit *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{store: store, audit: audit}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	appointments, err := h.store.ListAppointments(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list appointments")
		return
	}
	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appointment, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load appointment")
		return
	}
	httpresp.OK(c, appointment)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req storage.InsertAppointment
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	appointment, err := h.store.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: appointment.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &appointment.ID,
	})

	httpresp.Created(c, appointment)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req storage.UpdateAppointment
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	appointment, err := h.store.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "appointment_not_found", "appointment not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update appointment")
		return
	}
	httpresp.OK(c, appointment)
}

// Cancel flips the status without removing the record; cancelling an
// unknown id is a no-op.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.CancelAppointment(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "cancel_failed", "could not cancel appointment")
		return
	}

	if appointment, err := h.store.GetAppointment(c.Request.Context(), id); err == nil {
		h.audit.Dispatch(audit.Event{
			ClientID: appointment.ClientID,
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &appointment.ID,
		})
	}

	c.JSON(200, gin.H{"message": "appointment_cancelled"})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete appointment")
		return
	}
	c.Status(204)
}
