package handlers

import (
	"servit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger from the Gin context, falling
// back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(utils.ContextLoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// fail hands err to the error middleware, which writes the response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// badRequest reports a binding failure as a validation error.
func badRequest(c *gin.Context, err error) {
	getLogger(c).Debug("Invalid request", zap.Error(err))
	fail(c, utils.NewValidationError(err.Error()))
}
