package service

import (
	"strconv"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
)

// Дефолты для опциональных колонок таблицы tutors.
const (
	defaultImage        = "/placeholder.svg"
	defaultAvailability = "Available"
	defaultExperience   = "1+ years"
	defaultTimezone     = "UTC"
)

// NormalizeTutor приводит строку таблицы tutors к нормализованной карточке:
// рейтинг из текста в число, пустые опциональные поля к фиксированным
// дефолтам. Записи статического каталога сюда не попадают, они уже полные.
func NormalizeTutor(row *model.TutorRow) model.Tutor {
	tutor := model.Tutor{
		ID:           row.ID.String(),
		Name:         row.Name,
		Subject:      row.Subject,
		Availability: defaultAvailability,
		Image:        defaultImage,
		Experience:   defaultExperience,
		Timezone:     defaultTimezone,
		Languages:    []string{"English"},
		Specialties:  []string{row.Subject},
	}

	if row.Rating != nil {
		if rating, err := strconv.ParseFloat(*row.Rating, 64); err == nil {
			tutor.Rating = rating
		}
	}
	if row.ReviewCount != nil {
		tutor.ReviewCount = int(*row.ReviewCount)
	}
	if row.HourlyRate != nil {
		tutor.HourlyRate = *row.HourlyRate
	}
	if row.Image != nil && *row.Image != "" {
		tutor.Image = *row.Image
	}
	if row.Bio != nil {
		tutor.Bio = *row.Bio
	}
	if row.Experience != nil && *row.Experience != "" {
		tutor.Experience = *row.Experience
	}
	if row.Education != nil {
		tutor.Education = *row.Education
	}
	if len(row.Languages) > 0 {
		tutor.Languages = row.Languages
	}
	if row.Timezone != nil && *row.Timezone != "" {
		tutor.Timezone = *row.Timezone
	}
	if len(row.Specialties) > 0 {
		tutor.Specialties = row.Specialties
	}

	return tutor
}
