package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs the cause behind every 5xx a handler produced and writes
// a fallback envelope when a handler recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()

		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"status", status,
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLines),
			)
		}
		if c.Writer.Written() {
			return
		}

		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
