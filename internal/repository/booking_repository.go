package repository

import (
	"context"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository/base"
	"github.com/google/uuid"
)

type BookingRepository struct {
	db base.DB
}

func NewBookingRepository(db base.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create создаёт заявку на занятие. Статус выставляет БД (pending).
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (tutor_id, student_id, student_name, student_email, subject, date, time, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		booking.TutorID,
		booking.StudentID,
		booking.StudentName,
		booking.StudentEmail,
		booking.Subject,
		booking.Date,
		booking.Time,
		booking.Message,
	).Scan(&booking.ID, &booking.Status, &booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByStudentID получает все заявки студента, новые первыми
func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*model.Booking, error) {
	query := `
		SELECT id, tutor_id, student_id, student_name, student_email, subject, date, time, message, status, created_at
		FROM bookings
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get bookings by student: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var booking model.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.TutorID,
			&booking.StudentID,
			&booking.StudentName,
			&booking.StudentEmail,
			&booking.Subject,
			&booking.Date,
			&booking.Time,
			&booking.Message,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
