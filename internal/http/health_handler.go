package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"personal-site/internal/service"
)

const healthTimeout = 2 * time.Second

// HealthHandler reporta si el store responde.
type HealthHandler struct {
	logger   *zap.Logger
	messages *service.MessageService
	driver   string
}

func NewHealthHandler(logger *zap.Logger, messages *service.MessageService, driver string) *HealthHandler {
	return &HealthHandler{logger: logger, messages: messages, driver: driver}
}

// Health maneja GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.messages.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": h.driver})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": h.driver})
}
