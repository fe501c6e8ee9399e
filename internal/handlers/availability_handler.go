package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/timezone"
)

type AvailabilityHandler struct {
	store storage.Storage
}

func NewAvailabilityHandler(store storage.Storage) *AvailabilityHandler {
	return &AvailabilityHandler{store: store}
}

// List returns slots for one professional, or for a whole tenant when
// only client_id is given.
func (h *AvailabilityHandler) List(c *gin.Context) {
	if professionalID := c.Query("professional_id"); professionalID != "" {
		slots, err := h.store.ListProfessionalAvailability(c.Request.Context(), professionalID)
		if err != nil {
			httperr.Internal(c, "list_failed", "could not list availability")
			return
		}
		httpresp.List(c, slots)
		return
	}

	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	slots, err := h.store.ListProfessionalAvailabilityByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list availability")
		return
	}
	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	slot, err := h.store.GetProfessionalAvailability(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "availability_not_found", "availability slot not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load availability slot")
		return
	}
	httpresp.OK(c, slot)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req storage.InsertAvailability
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.store.CreateProfessionalAvailability(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create availability slot")
		return
	}
	httpresp.Created(c, slot)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req storage.UpdateAvailability
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slot, err := h.store.UpdateProfessionalAvailability(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "availability_not_found", "availability slot not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update availability slot")
		return
	}
	httpresp.OK(c, slot)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProfessionalAvailability(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete availability slot")
		return
	}
	c.Status(204)
}

// UpdateMonthly replaces every slot of one professional inside one month
// in a single call.
func (h *AvailabilityHandler) UpdateMonthly(c *gin.Context) {
	var req storage.MonthlyAvailability
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.store.UpdateMonthlyAvailability(c.Request.Context(), req); err != nil {
		httperr.Internal(c, "update_failed", "could not update monthly availability")
		return
	}
	c.JSON(200, gin.H{"message": "monthly_availability_updated"})
}

type generateNextMonthRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Timezone string `json:"timezone"`
}

// GenerateNextMonth projects the current month's weekday pattern onto
// the next month, per professional, in the tenant's timezone.
func (h *AvailabilityHandler) GenerateNextMonth(c *gin.Context) {
	var req generateNextMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	tz := req.Timezone
	if tz == "" {
		if client, err := h.store.GetClient(c.Request.Context(), req.ClientID); err == nil {
			tz = client.Timezone
		} else {
			tz = timezone.DefaultTimezone
		}
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "unknown timezone identifier")
		return
	}

	if err := h.store.GenerateNextMonthAvailability(c.Request.Context(), req.ClientID, tz); err != nil {
		httperr.Internal(c, "generate_failed", "could not generate next month availability")
		return
	}
	c.JSON(200, gin.H{"message": "next_month_generated"})
}
