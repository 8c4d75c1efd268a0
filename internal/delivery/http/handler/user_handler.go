package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentiment-analysis-api/internal/middleware"
	"sentiment-analysis-api/internal/usecase/user"
	"sentiment-analysis-api/pkg/utils"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes wires the bearer-protected user routes.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/me", h.Me)
		users.PUT("/me", h.UpdateMe)
		users.GET("/", h.List)
		users.GET("/:id", h.GetByID)
		users.DELETE("/:id", middleware.SuperuserOnly(), h.Deactivate)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", user.ToUserResponse(current))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email != nil {
		sanitized := utils.SanitizeEmail(*req.Email)
		req.Email = &sanitized
	}
	if req.Username != nil {
		sanitized := utils.SanitizeString(*req.Username)
		req.Username = &sanitized
	}
	if req.FullName != nil {
		sanitized := utils.SanitizeString(*req.FullName)
		req.FullName = &sanitized
	}

	updated, err := h.service.Update(c.Request.Context(), current.ID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", updated)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

// Deactivate soft-deletes a user. Superuser only.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated", nil)
}
