package domain

import "time"

// MessagesCollection es la colección donde se guardan los mensajes.
const MessagesCollection = "messages"

// Message es un mensaje dejado en el sitio. El ID lo asigna el store.
type Message struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
