package handlers

import (
	"errors"
	"net/http"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler держит зависимости всех HTTP-обработчиков.
type Handler struct {
	auth      *auth.Service
	directory *service.DirectoryService
	resolver  *service.ResolverService
	bookings  *service.BookingService
	profiles  *service.ProfileService
	logger    *zap.Logger
}

func New(
	authSvc *auth.Service,
	directory *service.DirectoryService,
	resolver *service.ResolverService,
	bookings *service.BookingService,
	profiles *service.ProfileService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		auth:      authSvc,
		directory: directory,
		resolver:  resolver,
		bookings:  bookings,
		profiles:  profiles,
		logger:    logger,
	}
}

// Register вешает маршруты API на роутер.
func (h *Handler) Register(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.GET("/subjects", h.ListSubjects)
	v1.GET("/tutors", h.ListTutors)
	v1.GET("/tutors/:id", h.GetTutor)

	v1.POST("/auth/signup", h.SignUp)
	v1.POST("/auth/signin", h.SignIn)
	v1.GET("/auth/verify", h.Verify)

	authed := r.Group("/v1", auth.RequireAuth(h.auth))
	authed.POST("/auth/signout", h.SignOut)
	authed.GET("/dashboard", h.Dashboard)
	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings", h.ListBookings)
	authed.POST("/tutors/me", h.CreateTutorProfile)
	authed.GET("/tutors/me", h.GetMyTutorProfile)
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Неизвестные ошибки отдаются как есть с кодом 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailNotVerified):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrTutorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrInvalidVerifyToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
