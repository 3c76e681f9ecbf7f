package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mazikuben/construction-be/types"
	"github.com/mazikuben/construction-be/utils"
)

const claimsContextKey = "claims"

// AuthMiddleware authenticates bearer tokens and enforces role membership.
// Ownership rules (client owns project, worker owns request, user owns
// notifications) are a second layer applied by each handler against the
// target resource.
type AuthMiddleware struct {
	tokens *utils.TokenManager
}

func NewAuthMiddleware(tokens *utils.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireRoles aborts with 401 when the token is missing, malformed, expired
// or forged, and with 403 when the caller's role is not in allowedRoles. An
// empty role list means any authenticated user.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header is required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid or expired token",
			})
			return
		}

		if len(allowedRoles) > 0 && !roleAllowed(claims.Role, allowedRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
				Status:  false,
				Message: fmt.Sprintf("Insufficient permissions. Required roles: %s", strings.Join(allowedRoles, ", ")),
			})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ClaimsFrom returns the decoded claims stored by RequireRoles.
func ClaimsFrom(c *gin.Context) (*utils.UserClaims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.UserClaims)
	return claims, ok
}
