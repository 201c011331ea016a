package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

// ErrorHandler turns errors attached via c.Error into the JSON envelope.
// Internal errors are logged with their cause; the client only ever sees
// the generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)
		appErr := apperror.From(c.Errors.Last().Err)

		if appErr.Kind == apperror.KindInternal {
			log.Error().
				Err(appErr.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request failed")
		}

		status := appErr.StatusCode()
		c.JSON(status, handler.NewErrorResponse(status, appErr.Message))
	}
}
