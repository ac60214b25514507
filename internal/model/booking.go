package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // Ожидает подтверждения репетитора
	BookingStatusConfirmed BookingStatus = "confirmed" // Подтверждено (меняется вне этой системы)
)

type Booking struct {
	ID           uuid.UUID     `json:"id"`
	TutorID      string        `json:"tutor_id"`
	StudentID    uuid.UUID     `json:"student_id"`
	StudentName  string        `json:"student_name"`
	StudentEmail string        `json:"student_email"`
	Subject      string        `json:"subject"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Message      string        `json:"message"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`

	// Дополнительное поле для отображения (не из БД)
	TutorName string `json:"tutor_name,omitempty"`
}
