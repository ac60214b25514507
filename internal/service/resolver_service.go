package service

import (
	"context"

	"github.com/Haedeel-Basel/My-Tutor/internal/catalog"
	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResolverService разрешает id репетитора в одну нормализованную карточку.
// Источники опрашиваются по порядку: сначала статический каталог, потом
// таблица tutors. Первое совпадение финально: если id есть в каталоге,
// БД не опрашивается вообще.
type ResolverService struct {
	tutorRepo *repository.TutorRepository
	logger    *zap.Logger
}

func NewResolverService(tutorRepo *repository.TutorRepository, logger *zap.Logger) *ResolverService {
	return &ResolverService{
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// Resolve возвращает карточку репетитора или ErrNotFound.
// Ошибка чтения из БД не пробрасывается: логируем и деградируем
// до "не найдено". Кэша и повторных попыток нет, каждый вызов
// разрешает id заново.
func (s *ResolverService) Resolve(ctx context.Context, id string) (*model.Tutor, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	if tutor, ok := catalog.GetByID(id); ok {
		return &tutor, nil
	}

	// Все id в таблице tutors это uuid, сидовые литералы туда не попадают
	remoteID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	row, err := s.tutorRepo.GetByID(ctx, remoteID)
	if err != nil {
		s.logger.Warn("Failed to fetch tutor",
			zap.String("tutor_id", id),
			zap.Error(err),
		)
		return nil, ErrNotFound
	}

	if row == nil {
		return nil, ErrNotFound
	}

	tutor := NormalizeTutor(row)
	return &tutor, nil
}
