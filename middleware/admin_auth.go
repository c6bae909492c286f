package middleware

import (
	"strings"

	"github.com/diljithmon170/GK-Group/config"
	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/internal/auth"
	"github.com/gin-gonic/gin"
)

// AdminAuth requires a Bearer token signed with the admin secret and
// carrying role=admin. The token subject is stored under AdminIDKey.
func AdminAuth(cfg *config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			_ = c.Error(apperrors.Unauthorized("missing_token", "Authorization required"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateAdminToken(token, cfg.JWTSecret, cfg.Issuer)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(AdminIDKey, claims.Subject)
		c.Next()
	}
}
