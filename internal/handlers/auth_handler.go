package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/middleware"
	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/validators"
)

type AuthHandler struct {
	store  storage.Storage
	config *config.Config
}

func NewAuthHandler(store storage.Storage, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: store, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req storage.InsertUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login validates admin credentials and sets the HTTP-only session
// cookie. Unknown email and wrong password answer identically.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.store.ValidateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	ttl := time.Duration(h.config.SessionTTLHours) * time.Hour
	session, err := h.store.CreateSession(c.Request.Context(), user.ID, time.Now().Add(ttl))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_session"})
		return
	}

	c.SetCookie(middleware.SessionCookie, session.ID, int(ttl.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no_session"})
		return
	}

	user, err := h.store.GetUserBySession(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// Logout deletes the session unconditionally; logging out twice is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		_ = h.store.DeleteSession(c.Request.Context(), token)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged_out"})
}

// ClientLogin authenticates a tenant and returns a bearer token for the
// client portal.
func (h *AuthHandler) ClientLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	client, err := h.store.ValidateClient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateClientToken(client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client": gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"email": client.Email,
			"plan":  client.Plan,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateClientToken(client *models.Client) (string, error) {
	claims := jwt.MapClaims{
		"sub": client.ID,
		"typ": "client",
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
