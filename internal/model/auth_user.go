package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser учётная запись. Пароль храним только хэшем,
// токен подтверждения email живёт до VerifyExpiresAt.
type AuthUser struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	EmailVerified   bool       `json:"email_verified"`
	VerifyToken     *string    `json:"-"`
	VerifyExpiresAt *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
}
