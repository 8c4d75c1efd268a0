package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentiment-analysis-api/internal/config"
	"sentiment-analysis-api/internal/logger"
	"sentiment-analysis-api/internal/middleware"
	"sentiment-analysis-api/pkg/utils"
)

// ProtectedHandler serves the demonstration routes behind the auth guard.
type ProtectedHandler struct {
	config *config.Config
}

func NewProtectedHandler(cfg *config.Config) *ProtectedHandler {
	return &ProtectedHandler{config: cfg}
}

func (h *ProtectedHandler) RegisterRoutes(router *gin.RouterGroup) {
	protected := router.Group("/protected")
	{
		protected.GET("/", h.Root)
		protected.GET("/data", h.Data)
		protected.GET("/admin", middleware.SuperuserOnly(), h.Admin)
	}
}

func (h *ProtectedHandler) Root(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	hostname, _ := os.Hostname()

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Hello %s from %s!", current.Username, h.config.App.InstanceID),
		"instance_id": h.config.App.InstanceID,
		"hostname":    hostname,
		"user": gin.H{
			"id":        current.ID,
			"username":  current.Username,
			"email":     current.Email,
			"full_name": current.FullName,
		},
		"client_ip": c.ClientIP(),
	})
}

func (h *ProtectedHandler) Data(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	hostname, _ := os.Hostname()

	c.JSON(http.StatusOK, gin.H{
		"data": []gin.H{
			{"id": 1, "value": "Protected Item 1", "owner": current.Username},
			{"id": 2, "value": "Protected Item 2", "owner": current.Username},
			{"id": 3, "value": "Protected Item 3", "owner": current.Username},
		},
		"served_by": h.config.App.InstanceID,
		"hostname":  hostname,
		"user_id":   current.ID,
	})
}

func (h *ProtectedHandler) Admin(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	logger.Info("Admin endpoint accessed", zap.String("username", current.Username))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to admin area",
		"instance_id": h.config.App.InstanceID,
		"user":        current.Username,
		"privileges":  "superuser",
	})
}
