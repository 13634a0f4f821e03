package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"personal-site/internal/domain"
)

// MessageRepository define el contrato de persistencia para mensajes.
type MessageRepository interface {
	List(ctx context.Context) ([]domain.Message, error)
	FindByID(ctx context.Context, id string) ([]domain.Message, error)
	Create(ctx context.Context, message domain.Message) (domain.Message, error)
	Ping(ctx context.Context) error
}

var (
	ErrInvalidID          = errors.New("invalid message id")
	ErrStoreNotConnected  = errors.New("store not connected")
	ErrCorruptMessageData = errors.New("corrupt message data")
)

// NewID genera un identificador con formato ObjectID para cualquier backend.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID indica si id tiene formato ObjectID (24 caracteres hex).
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// stamp completa ID y timestamps. Mongo guarda milisegundos, así que truncamos
// para que el registro devuelto sea igual al persistido.
func stamp(message domain.Message, now time.Time) domain.Message {
	if message.ID == "" {
		message.ID = NewID()
	}
	now = now.UTC().Truncate(time.Millisecond)
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	if message.UpdatedAt.IsZero() {
		message.UpdatedAt = message.CreatedAt
	}
	return message
}
