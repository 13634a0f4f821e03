package repository

import (
	"context"
	"sync"
	"time"

	"personal-site/internal/domain"
)

// MemoryMessageRepository mantiene los mensajes en memoria. Útil para
// desarrollo local y tests; se pierde todo al reiniciar.
type MemoryMessageRepository struct {
	mu       sync.Mutex
	messages []domain.Message
	now      func() time.Time
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{now: time.Now}
}

func (r *MemoryMessageRepository) List(_ context.Context) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *MemoryMessageRepository) FindByID(_ context.Context, id string) ([]domain.Message, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			return []domain.Message{m}, nil
		}
	}
	return []domain.Message{}, nil
}

func (r *MemoryMessageRepository) Create(_ context.Context, message domain.Message) (domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	message = stamp(message, r.now())
	r.messages = append(r.messages, message)
	return message, nil
}

func (r *MemoryMessageRepository) Ping(_ context.Context) error {
	return nil
}
