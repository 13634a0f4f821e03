package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"personal-site/internal/domain"
	"personal-site/internal/email"
	"personal-site/internal/metrics"
	"personal-site/internal/service"
)

// MessageHandler mantiene dependencias para los endpoints de mensajes.
type MessageHandler struct {
	logger   *zap.Logger
	messages *service.MessageService
	metrics  *metrics.Metrics
	notifier email.Sender
}

const notifyTimeout = 15 * time.Second

// NewMessageHandler crea una instancia de MessageHandler con dependencias necesarias.
// notifier puede ser nil: en ese caso no se avisa por email de los mensajes nuevos.
func NewMessageHandler(logger *zap.Logger, messages *service.MessageService, m *metrics.Metrics, notifier email.Sender) *MessageHandler {
	return &MessageHandler{
		logger:   logger,
		messages: messages,
		metrics:  m,
		notifier: notifier,
	}
}

// ListMessages maneja GET /messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list messages failed", err, statusRetrieveError)
		return
	}
	c.JSON(http.StatusOK, messagesResponse{Messages: messages, Status: statusOK})
}

// GetMessage maneja GET /messages/:messageId.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	messages, err := h.messages.Get(c.Request.Context(), c.Param("messageId"))
	if err != nil {
		h.fail(c, "get message failed", err, statusRetrieveError)
		return
	}
	c.JSON(http.StatusOK, messagesResponse{Messages: messages, Status: statusOK})
}

// SaveMessage maneja POST /messages/save.
func (h *MessageHandler) SaveMessage(c *gin.Context) {
	var req saveMessageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			h.fail(c, "invalid save message request", service.ValidationError("bind save message", err), statusSaveError)
			return
		}
	}

	msg, err := h.messages.Save(c.Request.Context(), service.SaveMessageInput{
		Name:    req.Name,
		Message: req.Message,
	})
	if err != nil {
		h.fail(c, "save message failed", err, statusSaveError)
		return
	}

	h.metrics.MessageSaved()
	h.notify(msg)
	c.JSON(http.StatusOK, messageResponse{Message: msg, Status: statusOK})
}

// notify avisa en segundo plano para no bloquear la respuesta.
func (h *MessageHandler) notify(msg domain.Message) {
	if h.notifier == nil {
		return
	}
	go func(m domain.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.SendNewMessage(ctx, m); err != nil {
			h.logger.Warn("new message notification failed", zap.Error(err), zap.String("message_id", m.ID))
		}
	}(msg)
}

func (h *MessageHandler) fail(c *gin.Context, logMsg string, err error, status string) {
	kind := service.KindOf(err)
	fields := []zap.Field{zap.Error(err), zap.String("kind", string(kind)), zap.String("request_id", requestID(c))}
	if kind == service.KindValidationFailed {
		h.logger.Warn(logMsg, fields...)
	} else {
		h.logger.Error(logMsg, fields...)
	}
	h.metrics.RequestFailed(string(kind))
	writeError(c, kind, status)
}
