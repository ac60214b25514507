package service

import (
	"time"

	"github.com/google/uuid"
)

// Колонки и значения строки tutors для pgxmock в порядке tutorColumns.

func tutorRowColumns() []string {
	return []string{
		"id", "user_id", "name", "subject", "rating", "review_count",
		"hourly_rate", "image", "bio", "experience", "education",
		"languages", "timezone", "specialties", "created_at",
	}
}

func tutorRowValues(id, name, subject string) []any {
	return []any{
		uuid.MustParse(id),
		uuid.New(),
		name,
		subject,
		strPtr("4.5"),
		(*int32)(nil),
		(*float64)(nil),
		(*string)(nil),
		(*string)(nil),
		(*string)(nil),
		(*string)(nil),
		[]string(nil),
		(*string)(nil),
		[]string(nil),
		time.Now(),
	}
}
