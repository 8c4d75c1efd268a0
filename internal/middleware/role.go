package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentiment-analysis-api/internal/logger"
	"sentiment-analysis-api/pkg/utils"
)

// SuperuserOnly rejects requests from non-superuser accounts. It must run
// after AuthMiddleware has resolved the user.
func SuperuserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
			c.Abort()
			return
		}

		if !user.IsSuperuser {
			logger.Warn("Unauthorized admin access attempt",
				zap.String("username", user.Username),
				zap.String("path", c.Request.URL.Path),
			)
			utils.ErrorResponse(c, http.StatusForbidden, "Not enough permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
