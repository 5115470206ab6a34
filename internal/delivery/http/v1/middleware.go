package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hrmanager/internal/services"
)

const (
	employeeIDCtxKey    = "employee_id"
	employeeEmailCtxKey = "employee_email"
	isAdminCtxKey       = "is_admin"
)

// HandleAuthMiddleware admits any request carrying a valid bearer token.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	claims, ok := h.authorize(c)
	if !ok {
		return
	}

	setClaims(c, claims)
	c.Next()
}

// HandleAdminMiddleware admits only requests whose token carries the
// admin flag. A valid token without it is an authorization failure,
// not an authentication one.
func (h *handlerImpl) HandleAdminMiddleware(c *gin.Context) {
	claims, ok := h.authorize(c)
	if !ok {
		return
	}

	if !claims.IsAdmin {
		h.logger.Error().
			Str("employee_id", claims.EmployeeID()).
			Msg("admin privileges required")
		abort(c, newForbiddenError("admin privileges required"))
		return
	}

	setClaims(c, claims)
	c.Next()
}

// authorize extracts the bearer token from the authorization header and
// verifies it. Both gate variants layer on top of this single step.
func (h *handlerImpl) authorize(c *gin.Context) (*services.TokenClaims, bool) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		abort(c, newUnauthorizedError("authorization header required"))
		return nil, false
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		h.logger.Error().Msg("invalid authorization header")
		abort(c, newUnauthorizedError("invalid authorization header"))
		return nil, false
	}

	claims, err := h.tokens.Verify(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to verify token")
		abort(c, newUnauthorizedError("invalid or expired token"))
		return nil, false
	}

	return claims, true
}

func setClaims(c *gin.Context, claims *services.TokenClaims) {
	c.Set(employeeIDCtxKey, claims.EmployeeID())
	c.Set(employeeEmailCtxKey, claims.Email)
	c.Set(isAdminCtxKey, claims.IsAdmin)
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}
