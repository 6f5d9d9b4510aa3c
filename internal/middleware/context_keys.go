package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// principalKey is the key under which the authenticated principal is stored
// in the request context.
const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal set by
// AuthMiddleware. The boolean reports whether one was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}
