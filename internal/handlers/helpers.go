package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semprecheioapp/semprecheio-api/internal/httperr"
)

// requireClientID pulls the tenant scope off the query string. Every
// listing endpoint is scoped; forgetting the filter is how cross-tenant
// leaks happen.
func requireClientID(c *gin.Context) (string, bool) {
	clientID := c.Query("client_id")
	if clientID == "" {
		httperr.BadRequest(c, "missing_client_id", "client_id query parameter is required")
		return "", false
	}
	return clientID, true
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be numeric")
		return 0, false
	}
	return uint(n), true
}
