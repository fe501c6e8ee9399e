package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
	"github.com/semprecheioapp/semprecheio-api/internal/httpresp"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type ConnectionHandler struct {
	store  storage.Storage
	config *config.Config
}

func NewConnectionHandler(store storage.Storage, cfg *config.Config) *ConnectionHandler {
	return &ConnectionHandler{store: store, config: cfg}
}

func (h *ConnectionHandler) List(c *gin.Context) {
	clientID, ok := requireClientID(c)
	if !ok {
		return
	}

	connections, err := h.store.ListConnections(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "could not list connections")
		return
	}
	httpresp.List(c, connections)
}

func (h *ConnectionHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	connection, err := h.store.GetConnection(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "connection_not_found", "connection not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "get_failed", "could not load connection")
		return
	}
	httpresp.OK(c, connection)
}

// Create registers a messaging instance. When no token is supplied a
// signed one is issued carrying the owning client and instance.
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req storage.InsertConnection
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Token == "" {
		token, err := h.issueInstanceToken(req.ClientID, req.Instance)
		if err != nil {
			httperr.Internal(c, "token_failed", "could not issue connection token")
			return
		}
		req.Token = token
	}

	connection, err := h.store.CreateConnection(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, "create_failed", "could not create connection")
		return
	}
	httpresp.Created(c, connection)
}

func (h *ConnectionHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req storage.UpdateConnection
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	connection, err := h.store.UpdateConnection(c.Request.Context(), id, req)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "connection_not_found", "connection not found")
		return
	}
	if err != nil {
		httperr.Internal(c, "update_failed", "could not update connection")
		return
	}
	httpresp.OK(c, connection)
}

func (h *ConnectionHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteConnection(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "delete_failed", "could not delete connection")
		return
	}
	c.Status(204)
}

// Validate reports whether the connection exists and is active.
func (h *ConnectionHandler) Validate(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	valid, err := h.store.ValidateConnection(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "validate_failed", "could not validate connection")
		return
	}
	c.JSON(200, gin.H{"valid": valid})
}

// ClientByInstance resolves the tenant behind a messaging instance URL.
// Inbound webhooks only know the instance, not the client id.
func (h *ConnectionHandler) ClientByInstance(c *gin.Context) {
	instanceURL := c.Query("instance_url")
	if instanceURL == "" {
		httperr.BadRequest(c, "missing_instance_url", "instance_url query parameter is required")
		return
	}

	client, err := h.store.GetClientByWhatsappInstance(c.Request.Context(), instanceURL)
	if errors.Is(err, storage.ErrNotFound) {
		httperr.NotFound(c, "client_not_found", "no client registered for instance")
		return
	}
	if err != nil {
		httperr.Internal(c, "lookup_failed", "could not resolve instance")
		return
	}
	httpresp.OK(c, client)
}

func (h *ConnectionHandler) issueInstanceToken(clientID, instance string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      clientID,
		"typ":      "connection",
		"instance": instance,
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
