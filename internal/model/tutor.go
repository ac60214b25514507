package model

import (
	"time"

	"github.com/google/uuid"
)

// Tutor нормализованная карточка репетитора.
// Это единый формат для записей из статического каталога и из БД,
// поэтому ID строковый: сидовые записи имеют литеральные id ("1", "2"...),
// а записи из БД используют uuid.
type Tutor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Subject      string   `json:"subject"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	HourlyRate   float64  `json:"hourlyRate"`
	Image        string   `json:"image"`
	Specialties  []string `json:"specialties"`
	Availability string   `json:"availability"`
	Bio          string   `json:"bio"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	Languages    []string `json:"languages"`
	Timezone     string   `json:"timezone"`
}

// TutorRow сырая строка из таблицы tutors.
// Опциональные колонки остаются указателями, дефолты заполняются
// при нормализации. Rating читаем текстом (rating::text) и приводим
// к числу на стороне сервиса.
type TutorRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Subject     string
	Rating      *string
	ReviewCount *int32
	HourlyRate  *float64
	Image       *string
	Bio         *string
	Experience  *string
	Education   *string
	Languages   []string
	Timezone    *string
	Specialties []string
	CreatedAt   time.Time
}
