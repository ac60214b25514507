package service

import (
	"testing"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func int32Ptr(n int32) *int32     { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestNormalizeTutor_Defaults(t *testing.T) {
	// Строка только с обязательными колонками: всё опциональное NULL
	row := &model.TutorRow{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Name:    "Ana",
		Subject: "Physics",
		Rating:  strPtr("4.5"),
	}

	tutor := NormalizeTutor(row)

	assert.Equal(t, row.ID.String(), tutor.ID)
	assert.Equal(t, "Ana", tutor.Name)
	assert.Equal(t, "Physics", tutor.Subject)
	assert.Equal(t, 4.5, tutor.Rating)
	assert.Equal(t, 0, tutor.ReviewCount)
	assert.Equal(t, "/placeholder.svg", tutor.Image)
	assert.Equal(t, []string{"Physics"}, tutor.Specialties)
	assert.Equal(t, "Available", tutor.Availability)
	assert.Equal(t, "1+ years", tutor.Experience)
	assert.Equal(t, "", tutor.Education)
	assert.Equal(t, []string{"English"}, tutor.Languages)
	assert.Equal(t, "UTC", tutor.Timezone)
}

func TestNormalizeTutor_BadRatingText(t *testing.T) {
	row := &model.TutorRow{
		ID:      uuid.New(),
		Name:    "Bob",
		Subject: "Music",
		Rating:  strPtr("not-a-number"),
	}

	tutor := NormalizeTutor(row)

	assert.Equal(t, 0.0, tutor.Rating)
}

func TestNormalizeTutor_NilRating(t *testing.T) {
	row := &model.TutorRow{
		ID:      uuid.New(),
		Name:    "Bob",
		Subject: "Music",
	}

	tutor := NormalizeTutor(row)

	assert.Equal(t, 0.0, tutor.Rating)
}

func TestNormalizeTutor_FilledRowPassesThrough(t *testing.T) {
	row := &model.TutorRow{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Ivan Petrov",
		Subject:     "Programming",
		Rating:      strPtr("4.75"),
		ReviewCount: int32Ptr(42),
		HourlyRate:  floatPtr(55),
		Image:       strPtr("/assets/ivan.jpg"),
		Bio:         strPtr("Backend engineer"),
		Experience:  strPtr("10"),
		Education:   strPtr("MSc, ITMO"),
		Languages:   []string{"English", "Russian"},
		Timezone:    strPtr("MSK"),
		Specialties: []string{"Go", "PostgreSQL"},
	}

	tutor := NormalizeTutor(row)

	assert.Equal(t, 4.75, tutor.Rating)
	assert.Equal(t, 42, tutor.ReviewCount)
	assert.Equal(t, 55.0, tutor.HourlyRate)
	assert.Equal(t, "/assets/ivan.jpg", tutor.Image)
	assert.Equal(t, "Backend engineer", tutor.Bio)
	assert.Equal(t, "10", tutor.Experience)
	assert.Equal(t, "MSc, ITMO", tutor.Education)
	assert.Equal(t, []string{"English", "Russian"}, tutor.Languages)
	assert.Equal(t, "MSK", tutor.Timezone)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, tutor.Specialties)
}
