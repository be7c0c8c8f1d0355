package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agropulse/internal/domain/dto"
	"agropulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context via c.Error() into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If a handler already wrote a response, does nothing.
//   - Otherwise, takes the last attached error, logs it, and responds
//     with a 500 and the dto.ErrorResponse envelope.
//
// Handlers that know the right status code should respond directly; this
// middleware is the safety net for errors that fall through.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the chain and responds with the standardized
// error envelope. It also attaches the error to the context so the
// request logger can see it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
