package repository

import (
	"context"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository/base"
	"github.com/google/uuid"
)

type ProfileRepository struct {
	db base.DB
}

func NewProfileRepository(db base.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create создаёт профиль пользователя
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, email, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Email,
		profile.UserType,
	).Scan(&profile.ID, &profile.CreatedAt)

	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// GetByUserID получает профиль по владельцу
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, user_id, full_name, email, user_type, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile model.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Email,
		&profile.UserType,
		&profile.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Профиль не найден
		}
		return nil, fmt.Errorf("get profile by user id: %w", err)
	}

	return &profile, nil
}
