package handlers

import (
	"net/http"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/service"
	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	TutorID      string `json:"tutor_id" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Message      string `json:"message"`
	StudentName  string `json:"student_name" binding:"required"`
	StudentEmail string `json:"student_email" binding:"required,email"`
}

// CreateBooking принимает заявку на занятие
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookings.Submit(c.Request.Context(), auth.IdentityFromContext(c), service.BookingInput{
		TutorID:      req.TutorID,
		Subject:      req.Subject,
		Date:         req.Date,
		Time:         req.Time,
		Message:      req.Message,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings отдаёт заявки текущего студента (новые первыми)
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.GetStudentBookings(c.Request.Context(), auth.IdentityFromContext(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
