package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"bookify/internal/handler/httperr"
	"bookify/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs server-side failures with their stack and writes the last
// public error if the handler left the response empty.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			last := c.Errors.Last()
			slog.ErrorContext(c.Request.Context(), "request failed",
				"path", c.Request.URL.Path,
				"status", status,
				"error", last.Error(),
				"stack", errs.ExtractStackLines(last.Err, stackLines))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, c.Errors.Last().Err, "Internal server error", nil)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"path", c.Request.URL.Path,
					"panic", fmt.Sprint(rec),
					"stack", errs.ExtractStackLines(err, stackLines))
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
		}()
		c.Next()
	}
}
