package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type CustomerHandler struct {
	store storage.Storage
}

func NewCustomerHandler(store storage.Storage) *CustomerHandler {
	return &CustomerHandler{store: store}
}

func (h *CustomerHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	customers, err := h.store.ListCustomers(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list customers")
		return
	}
	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.store.GetCustomer(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "customer_not_found", "customer not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load customer")
		return
	}
	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req storage.InsertCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, err := h.store.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create customer")
		return
	}
	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req storage.UpdateCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, err := h.store.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "customer_not_found", "customer not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update customer")
		return
	}
	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete customer")
		return
	}
	c.Status(204)
}
