package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sentiment-analysis-api/internal/logger"
	"sentiment-analysis-api/internal/middleware"
	appErrors "sentiment-analysis-api/pkg/errors"
	"sentiment-analysis-api/pkg/utils"
)

// respondWithError is the single boundary translator from domain error kind
// to transport status. Anything unmatched is logged in full and returned as
// an opaque 500.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrDuplicateUsername),
		errors.Is(err, appErrors.ErrDuplicateEmail),
		errors.Is(err, appErrors.ErrUserInactive):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrModelUnavailable):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, appErrors.ErrModelUnavailable.Error())
	case errors.Is(err, appErrors.ErrPredictionFailed):
		utils.ErrorResponse(c, http.StatusInternalServerError, appErrors.ErrPredictionFailed.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
