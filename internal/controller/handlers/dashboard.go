package handlers

import (
	"net/http"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/service"
	"github.com/gin-gonic/gin"
)

// Dashboard отдаёт данные личного кабинета одним запросом
func (h *Handler) Dashboard(c *gin.Context) {
	data, err := h.profiles.Dashboard(c.Request.Context(), auth.IdentityFromContext(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

type createTutorProfileRequest struct {
	Bio         string   `json:"bio" binding:"required"`
	HourlyRate  float64  `json:"hourly_rate" binding:"required,gt=0"`
	Subject     string   `json:"subject" binding:"required"`
	Experience  string   `json:"experience" binding:"required"`
	Education   string   `json:"education" binding:"required"`
	Specialties []string `json:"specialties"`
	Languages   []string `json:"languages"`
	Timezone    string   `json:"timezone"`
}

// CreateTutorProfile публикует анкету репетитора текущего пользователя
func (h *Handler) CreateTutorProfile(c *gin.Context) {
	var req createTutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tutor, err := h.profiles.CreateTutorProfile(c.Request.Context(), auth.IdentityFromContext(c), service.TutorProfileInput{
		Bio:         req.Bio,
		HourlyRate:  req.HourlyRate,
		Subject:     req.Subject,
		Experience:  req.Experience,
		Education:   req.Education,
		Specialties: req.Specialties,
		Languages:   req.Languages,
		Timezone:    req.Timezone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tutor)
}

// GetMyTutorProfile отдаёт анкету репетитора текущего пользователя
func (h *Handler) GetMyTutorProfile(c *gin.Context) {
	identity := auth.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	tutor, err := h.profiles.GetTutorProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tutor)
}
