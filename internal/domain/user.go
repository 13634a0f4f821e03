package domain

import "time"

// UsersCollection existe en la base pero ninguna ruta la usa todavía.
const UsersCollection = "users"

// User está declarado sin operaciones expuestas.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
