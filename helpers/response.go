package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grzegorzmaniak/gothic-validator/errors"
	"go.uber.org/zap"
)

// ErrorResponse aborts the request with the AppError rendered as JSON. The
// underlying error is only exposed outside of release mode.
func ErrorResponse(ctx *gin.Context, appErr *errors.AppError) {
	production := gin.Mode() == gin.ReleaseMode

	// - Should not happen.
	if appErr == nil {
		zap.L().Warn("ErrorResponse called with nil error")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred."})
		return
	}

	logFields := []zap.Field{
		zap.Int("statusCode", appErr.Code),
		zap.String("clientMessage", appErr.Message),
		zap.Any("details", appErr.Details),
	}
	if appErr.Err != nil {
		logFields = append(logFields, zap.Error(appErr.Err))
	}
	zap.L().Debug("Application error occurred", logFields...)

	ctx.AbortWithStatusJSON(appErr.Code, appErr.ToJSONResponse(production))
}

// SuccessResponse sets headers and sends data as JSON, or 204 when data is nil.
func SuccessResponse(ctx *gin.Context, data interface{}, headers map[string]string) {
	for key, value := range headers {
		ctx.Header(key, value)
	}

	if data == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, data)
}
