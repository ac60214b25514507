package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/notify"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service провайдер идентичности: регистрация с подтверждением email,
// вход/выход, сессионные токены. Смена состояния сессии публикуется
// в Broker отдельными событиями, глобального мутабельного состояния нет.
type Service struct {
	userRepo    *repository.AuthUserRepository
	profileRepo *repository.ProfileRepository
	notifier    notify.Notifier
	broker      *Broker
	logger      *zap.Logger

	issuer     string
	signingKey string
	tokenTTL   time.Duration
	verifyTTL  time.Duration
}

func NewService(
	userRepo *repository.AuthUserRepository,
	profileRepo *repository.ProfileRepository,
	notifier notify.Notifier,
	broker *Broker,
	logger *zap.Logger,
	issuer, signingKey string,
	tokenTTL, verifyTTL time.Duration,
) *Service {
	return &Service{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		broker:      broker,
		logger:      logger,
		issuer:      issuer,
		signingKey:  signingKey,
		tokenTTL:    tokenTTL,
		verifyTTL:   verifyTTL,
	}
}

type SignUpInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	UserType        model.UserType
}

// SignUp регистрирует пользователя и создаёт его профиль.
// Сессия не открывается: сначала пользователь подтверждает email
// по токену из письма (здесь из уведомления).
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*model.AuthUser, error) {
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	verifyToken := uuid.NewString()
	verifyExpires := time.Now().Add(s.verifyTTL)

	user := &model.AuthUser{
		Email:           input.Email,
		PasswordHash:    string(hash),
		EmailVerified:   false,
		VerifyToken:     &verifyToken,
		VerifyExpiresAt: &verifyExpires,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := &model.Profile{
		UserID:   user.ID,
		FullName: input.FullName,
		Email:    input.Email,
		UserType: input.UserType,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.notifier.Notify(ctx, "Check your email!",
		fmt.Sprintf("We've sent you a verification link. Token: %s", verifyToken),
		notify.SeverityInfo,
	)

	s.logger.Info("New user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("user_type", string(input.UserType)),
	)

	return user, nil
}

// Verify подтверждает email по токену и открывает сессию.
func (s *Service) Verify(ctx context.Context, token string) (string, *Identity, error) {
	user, err := s.userRepo.GetByVerifyToken(ctx, token)
	if err != nil {
		return "", nil, fmt.Errorf("lookup verify token: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidVerifyToken
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return "", nil, fmt.Errorf("mark verified: %w", err)
	}

	sessionToken, _, err := IssueToken(user.ID, user.Email, s.issuer, s.signingKey, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	identity := &Identity{UserID: user.ID, Email: user.Email}
	s.broker.Publish(Event{Type: EventSignedIn, UserID: user.ID, Email: user.Email, At: time.Now()})

	s.logger.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return sessionToken, identity, nil
}

// SignIn проверяет учётные данные и открывает сессию
func (s *Service) SignIn(ctx context.Context, email, password string) (string, *Identity, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	sessionToken, _, err := IssueToken(user.ID, user.Email, s.issuer, s.signingKey, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	identity := &Identity{UserID: user.ID, Email: user.Email}
	s.broker.Publish(Event{Type: EventSignedIn, UserID: user.ID, Email: user.Email, At: time.Now()})

	return sessionToken, identity, nil
}

// SignOut закрывает сессию. Токены stateless, поэтому выход
// это событие для подписчиков, а не инвалидация на сервере.
func (s *Service) SignOut(ctx context.Context, identity *Identity) {
	s.broker.Publish(Event{Type: EventSignedOut, UserID: identity.UserID, Email: identity.Email, At: time.Now()})

	s.logger.Info("User signed out",
		zap.String("user_id", identity.UserID.String()),
	)
}

// CurrentUser извлекает идентичность из сессионного токена.
func (s *Service) CurrentUser(tokenStr string) (*Identity, error) {
	claims, err := ParseToken(tokenStr, s.signingKey, s.issuer)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("parse subject: %w", err)
	}

	return &Identity{UserID: userID, Email: claims.Email}, nil
}

// Events канал событий сессий для подписчиков.
func (s *Service) Events() (<-chan Event, func()) {
	return s.broker.Subscribe()
}
