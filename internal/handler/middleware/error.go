package middleware

import (
	"log/slog"
	"net/http"

	"parkcore/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached to the context and guarantees a JSON
// envelope when a handler aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			status := http.StatusInternalServerError
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				status = resp.Status
			}
			if status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"status", status,
					"error", ginErr.Err,
				)
			}
		}

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.JSON(resp.Status, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
