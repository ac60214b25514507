package service

import (
	"context"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/catalog"
	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/notify"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService struct {
	resolver    *ResolverService
	bookingRepo *repository.BookingRepository
	tutorRepo   *repository.TutorRepository
	notifier    notify.Notifier
	logger      *zap.Logger
}

func NewBookingService(
	resolver *ResolverService,
	bookingRepo *repository.BookingRepository,
	tutorRepo *repository.TutorRepository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		resolver:    resolver,
		bookingRepo: bookingRepo,
		tutorRepo:   tutorRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

type BookingInput struct {
	TutorID      string
	Subject      string
	Date         string
	Time         string
	Message      string
	StudentName  string
	StudentEmail string
}

// Submit создаёт заявку на занятие.
// Предусловия: есть идентичность и репетитор разрешается по id.
// Обязательность полей формы проверяет HTTP-граница, не сервис.
// Ошибка записи отдаётся наверх как есть, без повторных попыток.
func (s *BookingService) Submit(ctx context.Context, identity *auth.Identity, input BookingInput) (*model.Booking, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	tutor, err := s.resolver.Resolve(ctx, input.TutorID)
	if err != nil {
		return nil, ErrTutorNotFound
	}

	booking := &model.Booking{
		TutorID:      tutor.ID,
		StudentID:    identity.UserID,
		StudentName:  input.StudentName,
		StudentEmail: input.StudentEmail,
		Subject:      input.Subject,
		Date:         input.Date,
		Time:         input.Time,
		Message:      input.Message,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.notifier.Notify(ctx, "Error", err.Error(), notify.SeverityError)
		return nil, err
	}

	booking.TutorName = tutor.Name

	s.logger.Info("Booking submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.String("tutor_id", booking.TutorID),
		zap.String("student_id", booking.StudentID.String()),
		zap.String("status", string(booking.Status)),
	)

	s.notifier.Notify(ctx, "Booking Successful!",
		"Your booking request has been submitted. The tutor will contact you soon.",
		notify.SeverityInfo,
	)

	return booking, nil
}

// GetStudentBookings получает заявки студента с именами репетиторов
func (s *BookingService) GetStudentBookings(ctx context.Context, identity *auth.Identity) ([]*model.Booking, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	bookings, err := s.bookingRepo.GetByStudentID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get student bookings: %w", err)
	}

	for _, booking := range bookings {
		booking.TutorName = s.displayTutorName(ctx, booking.TutorID)
	}

	return bookings, nil
}

// displayTutorName разрешает имя для карточки заявки: каталог,
// потом БД, иначе заглушка. Ошибки поиска имя не ломают.
func (s *BookingService) displayTutorName(ctx context.Context, tutorID string) string {
	if tutor, ok := catalog.GetByID(tutorID); ok {
		return tutor.Name
	}

	if remoteID, err := uuid.Parse(tutorID); err == nil {
		row, err := s.tutorRepo.GetByID(ctx, remoteID)
		if err != nil {
			s.logger.Warn("Could not find tutor for booking",
				zap.String("tutor_id", tutorID),
				zap.Error(err),
			)
		} else if row != nil {
			return row.Name
		}
	}

	return "Unknown Tutor"
}
