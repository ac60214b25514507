package model

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTutor   UserType = "tutor"
)

// Profile профиль пользователя, создаётся при регистрации.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
