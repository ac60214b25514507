package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Haedeel-Basel/My-Tutor/internal/auth"
	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo *repository.ProfileRepository
	tutorRepo   *repository.TutorRepository
	bookings    *BookingService
	logger      *zap.Logger
}

func NewProfileService(
	profileRepo *repository.ProfileRepository,
	tutorRepo *repository.TutorRepository,
	bookings *BookingService,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		tutorRepo:   tutorRepo,
		bookings:    bookings,
		logger:      logger,
	}
}

// GetProfile получает профиль текущего пользователя
func (s *ProfileService) GetProfile(ctx context.Context, identity *auth.Identity) (*model.Profile, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	profile, err := s.profileRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	return profile, nil
}

type TutorProfileInput struct {
	Bio         string
	HourlyRate  float64
	Subject     string
	Experience  string
	Education   string
	Specialties []string
	Languages   []string
	Timezone    string
}

// CreateTutorProfile публикует анкету репетитора в каталоге.
// Доступно только пользователям с типом tutor, повторная анкета
// не создаётся.
func (s *ProfileService) CreateTutorProfile(ctx context.Context, identity *auth.Identity, input TutorProfileInput) (*model.Tutor, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	if input.Bio == "" || input.Subject == "" || input.Experience == "" || input.Education == "" {
		return nil, fmt.Errorf("%w: bio, subject, experience and education are required", ErrValidation)
	}
	if input.HourlyRate <= 0 {
		return nil, fmt.Errorf("%w: hourly rate must be positive", ErrValidation)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil || profile.UserType != model.UserTypeTutor {
		return nil, fmt.Errorf("%w: only tutor accounts can publish a tutor profile", ErrValidation)
	}

	existing, err := s.tutorRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("check existing tutor: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tutor profile already exists", ErrValidation)
	}

	name := profile.FullName
	if name == "" {
		name = "New Tutor"
	}

	row := &model.TutorRow{
		UserID:      identity.UserID,
		Name:        name,
		Subject:     input.Subject,
		HourlyRate:  &input.HourlyRate,
		Bio:         &input.Bio,
		Experience:  &input.Experience,
		Education:   &input.Education,
		Specialties: input.Specialties,
		Languages:   input.Languages,
	}
	if input.Timezone != "" {
		row.Timezone = &input.Timezone
	}

	if err := s.tutorRepo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("create tutor: %w", err)
	}

	s.logger.Info("Tutor profile published",
		zap.String("tutor_id", row.ID.String()),
		zap.String("user_id", identity.UserID.String()),
		zap.String("subject", row.Subject),
	)

	tutor := NormalizeTutor(row)
	return &tutor, nil
}

// GetTutorProfile получает анкету репетитора по id пользователя
func (s *ProfileService) GetTutorProfile(ctx context.Context, userID uuid.UUID) (*model.Tutor, error) {
	row, err := s.tutorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get tutor by user: %w", err)
	}
	if row == nil {
		return nil, ErrNotFound
	}

	tutor := NormalizeTutor(row)
	return &tutor, nil
}

// DashboardData собирает всё, что нужно личному кабинету за один вызов.
type DashboardData struct {
	Profile              *model.Profile   `json:"profile"`
	Bookings             []*model.Booking `json:"bookings"`
	TutorProfile         *model.Tutor     `json:"tutorProfile,omitempty"`
	NeedsTutorOnboarding bool             `json:"needsTutorOnboarding"`
}

// Dashboard возвращает данные кабинета: профиль, заявки студента,
// для репетитора ещё его анкету или флаг, что её пора заполнить.
func (s *ProfileService) Dashboard(ctx context.Context, identity *auth.Identity) (*DashboardData, error) {
	profile, err := s.GetProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetStudentBookings(ctx, identity)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		Profile:  profile,
		Bookings: bookings,
	}

	if profile.UserType == model.UserTypeTutor {
		tutor, err := s.GetTutorProfile(ctx, identity.UserID)
		switch {
		case err == nil:
			data.TutorProfile = tutor
		case errors.Is(err, ErrNotFound):
			data.NeedsTutorOnboarding = true
		default:
			return nil, err
		}
	}

	return data, nil
}
