package repository

import (
	"context"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository/base"
	"github.com/google/uuid"
)

type AuthUserRepository struct {
	db base.DB
}

func NewAuthUserRepository(db base.DB) *AuthUserRepository {
	return &AuthUserRepository{db: db}
}

// Create создаёт учётную запись
func (r *AuthUserRepository) Create(ctx context.Context, user *model.AuthUser) error {
	query := `
		INSERT INTO users (email, password_hash, email_verified, verify_token, verify_expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		user.Email,
		user.PasswordHash,
		user.EmailVerified,
		user.VerifyToken,
		user.VerifyExpiresAt,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByEmail получает учётную запись по email
func (r *AuthUserRepository) GetByEmail(ctx context.Context, email string) (*model.AuthUser, error) {
	query := `
		SELECT id, email, password_hash, email_verified, verify_token, verify_expires_at, created_at
		FROM users
		WHERE email = $1
	`

	user, err := r.scanUser(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// GetByID получает учётную запись по ID
func (r *AuthUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthUser, error) {
	query := `
		SELECT id, email, password_hash, email_verified, verify_token, verify_expires_at, created_at
		FROM users
		WHERE id = $1
	`

	user, err := r.scanUser(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// GetByVerifyToken получает учётную запись по токену подтверждения
func (r *AuthUserRepository) GetByVerifyToken(ctx context.Context, token string) (*model.AuthUser, error) {
	query := `
		SELECT id, email, password_hash, email_verified, verify_token, verify_expires_at, created_at
		FROM users
		WHERE verify_token = $1 AND verify_expires_at > now()
	`

	user, err := r.scanUser(ctx, query, token)
	if err != nil {
		return nil, fmt.Errorf("get user by verify token: %w", err)
	}
	return user, nil
}

// MarkVerified помечает email подтверждённым и сбрасывает токен
func (r *AuthUserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET email_verified = true, verify_token = NULL, verify_expires_at = NULL
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark user verified: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// DeleteExpiredUnverified удаляет неподтверждённые учётки с истёкшим токеном
func (r *AuthUserRepository) DeleteExpiredUnverified(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM users
		WHERE email_verified = false AND verify_expires_at < now()
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("delete expired unverified users: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *AuthUserRepository) scanUser(ctx context.Context, query string, arg any) (*model.AuthUser, error) {
	var user model.AuthUser
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.EmailVerified,
		&user.VerifyToken,
		&user.VerifyExpiresAt,
		&user.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Учётная запись не найдена
		}
		return nil, err
	}

	return &user, nil
}
