package http

import (
	"net/http"
	"time"

	"marketplace-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	currentUserKey  = "current_user"
)

type SessionResolver interface {
	Resolve(req *http.Request) (*domain.User, error)
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// Authenticate resolves the caller's session and stores the user on the
// context. Requests without a valid session stop here.
func (h *Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.sessions.Resolve(c.Request)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	u, _ := c.Get(currentUserKey)
	user, _ := u.(*domain.User)
	return user
}
