package repository

import (
	"context"
	"fmt"

	"personal-site/internal/domain"
)

// unavailableMessageRepository se usa cuando el store no pudo construirse al
// arrancar. El proceso sigue vivo y cada operación falla.
type unavailableMessageRepository struct {
	reason error
}

func NewUnavailableMessageRepository(reason error) MessageRepository {
	return &unavailableMessageRepository{reason: reason}
}

func (r *unavailableMessageRepository) err() error {
	if r.reason == nil {
		return ErrStoreNotConnected
	}
	return fmt.Errorf("%w: %v", ErrStoreNotConnected, r.reason)
}

func (r *unavailableMessageRepository) List(_ context.Context) ([]domain.Message, error) {
	return nil, r.err()
}

func (r *unavailableMessageRepository) FindByID(_ context.Context, _ string) ([]domain.Message, error) {
	return nil, r.err()
}

func (r *unavailableMessageRepository) Create(_ context.Context, _ domain.Message) (domain.Message, error) {
	return domain.Message{}, r.err()
}

func (r *unavailableMessageRepository) Ping(_ context.Context) error {
	return r.err()
}
