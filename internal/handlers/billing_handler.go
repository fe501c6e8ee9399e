package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/billing"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type BillingHandler struct {
	store    storage.Storage
	checkout *billing.Checkout
}

func NewBillingHandler(store storage.Storage, checkout *billing.Checkout) *BillingHandler {
	return &BillingHandler{store: store, checkout: checkout}
}

func (h *BillingHandler) ListPlans(c *gin.Context) {
	plans, err := h.store.ListSubscriptionPlans(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list plans")
		return
	}
	httpresp.List(c, plans)
}

func (h *BillingHandler) GetPlan(c *gin.Context) {
	plan, err := h.store.GetSubscriptionPlan(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "plan_not_found", "plan not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load plan")
		return
	}
	httpresp.OK(c, plan)
}

func (h *BillingHandler) CreatePlan(c *gin.Context) {
	var req storage.InsertSubscriptionPlan
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	plan, err := h.store.CreateSubscriptionPlan(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create plan")
		return
	}
	httpresp.Created(c, plan)
}

func (h *BillingHandler) ListSubscriptions(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	subscriptions, err := h.store.ListSubscriptions(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list subscriptions")
		return
	}
	httpresp.List(c, subscriptions)
}

func (h *BillingHandler) GetSubscription(c *gin.Context) {
	subscription, err := h.store.GetSubscription(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "subscription_not_found", "subscription not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load subscription")
		return
	}
	httpresp.OK(c, subscription)
}

func (h *BillingHandler) CreateSubscription(c *gin.Context) {
	var req storage.InsertSubscription
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	subscription, err := h.store.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create subscription")
		return
	}
	httpresp.Created(c, subscription)
}

func (h *BillingHandler) ListInvoices(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	invoices, err := h.store.ListInvoices(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list invoices")
		return
	}
	httpresp.List(c, invoices)
}

func (h *BillingHandler) ListPayments(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	payments, err := h.store.ListPayments(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list payments")
		return
	}
	httpresp.List(c, payments)
}

type checkoutRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	PlanID   string `json:"plan_id" binding:"required"`
}

// Checkout returns a Mercado Pago payment link for a plan.
func (h *BillingHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	link, err := h.checkout.CreateLink(c.Request.Context(), req.ClientID, req.PlanID)
	if httperr.IsBusiness(err, "billing_disabled") {
		httperr.Write(c, http.StatusServiceUnavailable, "billing_disabled", "payment provider is not configured")
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "not_found", "client or plan not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "checkout_failed", "could not create payment link")
		return
	}
	httpresp.OK(c, link)
}
