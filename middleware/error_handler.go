package middleware

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context as a
// types.ErrorResponse. Server-side failures never leak their detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		err := last.Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status := appErr.GetHTTPStatus()
			logger.LogHTTPError(c, err, status, fmt.Sprintf("%s error", appErr.Type))

			resp := types.ErrorResponse{
				Success: false,
				Code:    string(appErr.Type),
				Message: appErr.Message,
			}
			if len(appErr.Fields) > 0 {
				resp.Errors = appErr.Fields
			}
			if appErr.Detail != "" && (status < http.StatusInternalServerError || gin.IsDebugging()) {
				resp.Details = appErr.Detail
			}
			c.JSON(status, resp)
			return
		}

		if last.Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, http.StatusBadRequest, "Request binding error")
			resp := types.ErrorResponse{
				Success: false,
				Code:    string(apperrors.ValidationError),
				Message: "Invalid request body",
			}
			if gin.IsDebugging() {
				resp.Details = err.Error()
			}
			c.JSON(http.StatusBadRequest, resp)
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		resp := types.ErrorResponse{
			Success: false,
			Code:    string(apperrors.ServerError),
			Message: "Internal Server Error",
		}
		if gin.IsDebugging() {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
