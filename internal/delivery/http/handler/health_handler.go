package handler

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentiment-analysis-api/internal/config"
	"sentiment-analysis-api/internal/logger"
)

// databaseChecker reports connectivity of the backing store.
type databaseChecker interface {
	Health() error
}

// modelChecker reports whether the classification model is loaded.
type modelChecker interface {
	ModelLoaded() bool
}

type HealthHandler struct {
	config *config.Config
	db     databaseChecker
	model  modelChecker
}

func NewHealthHandler(cfg *config.Config, db databaseChecker, model modelChecker) *HealthHandler {
	return &HealthHandler{config: cfg, db: db, model: model}
}

// RegisterRoutes wires the public health and root routes.
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Root)

	health := router.Group("/health")
	{
		health.GET("", h.Health)
		health.GET("/ready", h.Ready)
		health.GET("/live", h.Live)
	}
}

func (h *HealthHandler) Root(c *gin.Context) {
	hostname, _ := os.Hostname()

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("%s - Instance: %s", h.config.App.Name, h.config.App.InstanceID),
		"app_name":     h.config.App.Name,
		"version":      h.config.App.Version,
		"instance_id":  h.config.App.InstanceID,
		"hostname":     hostname,
		"model_loaded": h.model.ModelLoaded(),
		"client_ip":    c.ClientIP(),
		"health_check": "/health",
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	hostname, _ := os.Hostname()

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"instance_id": h.config.App.InstanceID,
		"hostname":    hostname,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	hostname, _ := os.Hostname()

	status := "ready"
	checks := gin.H{}

	if err := h.db.Health(); err != nil {
		status = "not_ready"
		checks["database"] = fmt.Sprintf("error: %v", err)
		logger.Error("Database health check failed", zap.Error(err))
	} else {
		checks["database"] = "connected"
	}

	if h.model.ModelLoaded() {
		checks["model"] = "loaded"
	} else {
		checks["model"] = "not_loaded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"instance_id": h.config.App.InstanceID,
		"hostname":    hostname,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"checks":      checks,
	})
}

func (h *HealthHandler) Live(c *gin.Context) {
	hostname, _ := os.Hostname()

	c.JSON(http.StatusOK, gin.H{
		"status":      "alive",
		"instance_id": h.config.App.InstanceID,
		"hostname":    hostname,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
