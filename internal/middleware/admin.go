package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-admin-api/internal/models"
	appErrors "github.com/noah-isme/campus-admin-api/pkg/errors"
	"github.com/noah-isme/campus-admin-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the administrator identity.
const ContextAdminKey = "currentAdmin"

const (
	headerAdminID   = "X-Admin-Id"
	headerAdminName = "X-Admin-Name"
)

// Admin resolves the administrator identity forwarded by the gateway. The
// gateway authenticates; this service only requires that an identity is
// present on mutating administrative routes.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerAdminID))
		if id == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing administrator identity"))
			c.Abort()
			return
		}
		c.Set(ContextAdminKey, &models.AdminIdentity{
			ID:   id,
			Name: strings.TrimSpace(c.GetHeader(headerAdminName)),
		})
		c.Next()
	}
}

// OptionalAdmin attaches the identity when present but does not block.
func OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerAdminID))
		if id != "" {
			c.Set(ContextAdminKey, &models.AdminIdentity{
				ID:   id,
				Name: strings.TrimSpace(c.GetHeader(headerAdminName)),
			})
		}
		c.Next()
	}
}
