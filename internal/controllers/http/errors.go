package http

import (
	"errors"

	"marketplace-service/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error."

// writeError translates err into its status and {error} body. Internal
// faults are logged and answered with a generic message.
func (h *Handler) writeError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindInternal {
		h.logger.Error("Request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.AbortWithStatusJSON(apperr.KindInternal.HTTPStatus(), ErrorResponse{Error: msgInternal})
		return
	}
	c.AbortWithStatusJSON(ae.Kind.HTTPStatus(), ErrorResponse{Error: ae.Message})
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Debug("Invalid request", zap.Error(err))
	c.AbortWithStatusJSON(apperr.KindInvalidRequest.HTTPStatus(), ErrorResponse{
		Error:   "Invalid request format",
		Details: err.Error(),
	})
}
