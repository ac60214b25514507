package repository

import (
	"context"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Колонки таблицы tutors. Rating читаем текстом, чтобы приведение
// к числу (и дефолт при NULL) оставалось на стороне сервиса.
const tutorColumns = `id, user_id, name, subject, rating::text, review_count, hourly_rate, image, bio, experience, education, languages, timezone, specialties, created_at`

type TutorRepository struct {
	db base.DB
}

func NewTutorRepository(db base.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

func scanTutorRow(row pgx.Row) (*model.TutorRow, error) {
	var t model.TutorRow
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Subject,
		&t.Rating,
		&t.ReviewCount,
		&t.HourlyRate,
		&t.Image,
		&t.Bio,
		&t.Experience,
		&t.Education,
		&t.Languages,
		&t.Timezone,
		&t.Specialties,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID получает репетитора по ID, ожидается не больше одной строки
func (r *TutorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TutorRow, error) {
	query := `
		SELECT ` + tutorColumns + `
		FROM tutors
		WHERE id = $1
	`

	tutor, err := scanTutorRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Репетитор не найден
		}
		return nil, fmt.Errorf("get tutor by id: %w", err)
	}

	return tutor, nil
}

// GetByUserID получает профиль репетитора по владельцу
func (r *TutorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.TutorRow, error) {
	query := `
		SELECT ` + tutorColumns + `
		FROM tutors
		WHERE user_id = $1
	`

	tutor, err := scanTutorRow(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by user id: %w", err)
	}

	return tutor, nil
}

// ListAll получает полный снимок таблицы, новые записи первыми
func (r *TutorRepository) ListAll(ctx context.Context) ([]*model.TutorRow, error) {
	query := `
		SELECT ` + tutorColumns + `
		FROM tutors
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.TutorRow
	for rows.Next() {
		tutor, err := scanTutorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutors: %w", err)
	}

	return tutors, nil
}

// Create создаёт профиль репетитора. Новые профили начинают
// с нулевым рейтингом и без отзывов.
func (r *TutorRepository) Create(ctx context.Context, tutor *model.TutorRow) error {
	query := `
		INSERT INTO tutors (user_id, name, subject, bio, hourly_rate, experience, education, languages, timezone, specialties, rating, review_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, 0)
		RETURNING id, rating::text, review_count, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		tutor.UserID,
		tutor.Name,
		tutor.Subject,
		tutor.Bio,
		tutor.HourlyRate,
		tutor.Experience,
		tutor.Education,
		tutor.Languages,
		tutor.Timezone,
		tutor.Specialties,
	).Scan(&tutor.ID, &tutor.Rating, &tutor.ReviewCount, &tutor.CreatedAt)

	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}

	return nil
}
