package middleware

import (
	"net/http"

	"vaxportal/models"

	"github.com/gin-gonic/gin"
)

// StaffOnlyMiddleware restricts back-office endpoints to staff accounts.
// It must run after JWTAuthMiddleware.
func StaffOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}
