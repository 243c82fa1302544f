package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
)

// RequireAuth resolves the bearer token to a user and puts both the
// user and the token id on the context. Requests without a valid token
// never reach the handler.
func RequireAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortWithError(c, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		bearer := strings.TrimPrefix(header, "Bearer ")

		db, ok := c.Get(DBKey)
		if !ok {
			response.AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		user, tokenID, err := authService.Authenticate(c.Request.Context(), db.(*gorm.DB), bearer)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(UserKey, user)
		c.Set(TokenIDKey, tokenID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserKey)
		if !ok {
			response.AbortWithError(c, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		user, ok := val.(*models.User)
		if !ok || user.Role != models.UserRoleAdmin {
			response.AbortWithError(c, http.StatusForbidden, "Admin access required", nil)
			return
		}
		c.Next()
	}
}
