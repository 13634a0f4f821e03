package service

import (
	"context"
	"errors"
	"strings"

	"personal-site/internal/domain"
	"personal-site/internal/repository"
)

// MessageService encapsula la lógica para manejar los mensajes del sitio.
type MessageService struct {
	repo repository.MessageRepository
}

var ErrMessageServiceNotConfigured = errors.New("message service not configured")

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// SaveMessageInput son los campos que acepta POST /messages/save. Ninguno es
// obligatorio; se guardan tal cual llegan.
type SaveMessageInput struct {
	Name    string
	Message string
}

func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	const op = "list messages"
	if s == nil || s.repo == nil {
		return nil, newError(KindStoreUnavailable, op, ErrMessageServiceNotConfigured)
	}
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, newError(KindStoreUnavailable, op, err)
	}
	return nonNil(messages), nil
}

// Get devuelve los mensajes con ese id: cero o uno, siempre como slice.
func (s *MessageService) Get(ctx context.Context, id string) ([]domain.Message, error) {
	const op = "get message"
	if s == nil || s.repo == nil {
		return nil, newError(KindStoreUnavailable, op, ErrMessageServiceNotConfigured)
	}
	id = strings.TrimSpace(id)
	if !repository.ValidID(id) {
		return nil, newError(KindValidationFailed, op, repository.ErrInvalidID)
	}
	messages, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, newError(KindValidationFailed, op, err)
		}
		return nil, newError(KindStoreUnavailable, op, err)
	}
	return nonNil(messages), nil
}

// Save crea un mensaje nuevo. No es idempotente: dos llamadas iguales crean
// dos registros.
func (s *MessageService) Save(ctx context.Context, input SaveMessageInput) (domain.Message, error) {
	const op = "save message"
	if s == nil || s.repo == nil {
		return domain.Message{}, newError(KindStoreUnavailable, op, ErrMessageServiceNotConfigured)
	}
	msg, err := s.repo.Create(ctx, domain.Message{
		Name:    input.Name,
		Message: input.Message,
	})
	if err != nil {
		return domain.Message{}, newError(KindStoreUnavailable, op, err)
	}
	return msg, nil
}

// Ping verifica que el store responda.
func (s *MessageService) Ping(ctx context.Context) error {
	if s == nil || s.repo == nil {
		return newError(KindStoreUnavailable, "ping store", ErrMessageServiceNotConfigured)
	}
	if err := s.repo.Ping(ctx); err != nil {
		return newError(KindStoreUnavailable, "ping store", err)
	}
	return nil
}

func nonNil(messages []domain.Message) []domain.Message {
	if messages == nil {
		return []domain.Message{}
	}
	return messages
}
