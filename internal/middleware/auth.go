package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentiment-analysis-api/internal/config"
	domainUser "sentiment-analysis-api/internal/domain/user"
	"sentiment-analysis-api/pkg/utils"
)

const currentUserKey = "currentUser"

// userResolver is the subset of the user repository the guard needs.
type userResolver interface {
	GetByUsername(ctx context.Context, username string) (*domainUser.User, error)
}

// AuthMiddleware validates the bearer token on each request and resolves it
// to a user. Applied per route group; public routes bypass it entirely.
func AuthMiddleware(cfg *config.Config, users userResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret, cfg.JWT.Algorithm)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		if claims.Subject == "" {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		// The token itself stays valid until expiry; deactivation is only
		// enforced here.
		if !user.IsActive {
			utils.ErrorResponse(c, http.StatusBadRequest, "Inactive user")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	utils.ErrorResponse(c, http.StatusUnauthorized, message)
	c.Abort()
}

// CurrentUser retrieves the guard-resolved user from the Gin context.
func CurrentUser(c *gin.Context) (*domainUser.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domainUser.User)
	return user, ok
}
