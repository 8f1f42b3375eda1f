package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-admin-api/internal/middleware"
	"github.com/noah-isme/campus-admin-api/internal/models"
)

func adminFromContext(c *gin.Context) *models.AdminIdentity {
	value, exists := c.Get(middleware.ContextAdminKey)
	if !exists {
		return nil
	}
	admin, ok := value.(*models.AdminIdentity)
	if !ok {
		return nil
	}
	return admin
}
