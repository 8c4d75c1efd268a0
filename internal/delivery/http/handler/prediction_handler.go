package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentiment-analysis-api/internal/middleware"
	"sentiment-analysis-api/internal/usecase/prediction"
	"sentiment-analysis-api/pkg/utils"
)

type PredictionHandler struct {
	service *prediction.Service
}

func NewPredictionHandler(service *prediction.Service) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// RegisterRoutes wires the bearer-protected prediction routes.
func (h *PredictionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/predict", h.Predict)
	router.POST("/predict/batch", h.PredictBatch)
	router.GET("/model/info", h.ModelInfo)
}

func (h *PredictionHandler) Predict(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req prediction.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Predict(c.Request.Context(), current.Username, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PredictionHandler) PredictBatch(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req prediction.BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.PredictBatch(c.Request.Context(), current.Username, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PredictionHandler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ModelInfo())
}
