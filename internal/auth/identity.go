package auth

import "github.com/google/uuid"

// Identity аутентифицированный пользователь текущего запроса.
type Identity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
