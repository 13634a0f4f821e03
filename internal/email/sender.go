package email

import (
	"context"

	"personal-site/internal/domain"
)

// Sender define la interfaz para avisar al dueño del sitio de un mensaje nuevo.
type Sender interface {
	SendNewMessage(ctx context.Context, msg domain.Message) error
}
