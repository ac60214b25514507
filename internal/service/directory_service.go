package service

import (
	"context"
	"strings"

	"github.com/Haedeel-Basel/My-Tutor/internal/catalog"
	"github.com/Haedeel-Basel/My-Tutor/internal/model"
	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"go.uber.org/zap"
)

// DirectoryService собирает общий список репетиторов для витрины:
// статический каталог плюс снимок таблицы tutors.
type DirectoryService struct {
	tutorRepo *repository.TutorRepository
	logger    *zap.Logger
}

func NewDirectoryService(tutorRepo *repository.TutorRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// Snapshot получает нормализованный снимок таблицы tutors (новые первыми).
// При ошибке чтения возвращает пустой снимок: витрина деградирует
// до одного статического каталога, ошибка только логируется.
func (s *DirectoryService) Snapshot(ctx context.Context) []model.Tutor {
	rows, err := s.tutorRepo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch tutors, serving static catalog only", zap.Error(err))
		return nil
	}

	tutors := make([]model.Tutor, 0, len(rows))
	for _, row := range rows {
		tutors = append(tutors, NormalizeTutor(row))
	}
	return tutors
}

// List возвращает объединённый отфильтрованный список.
// Один bulk-запрос к БД на вызов; фильтры применяются локально.
func (s *DirectoryService) List(ctx context.Context, subject, search string) []model.Tutor {
	return Merge(catalog.BySubject(subject), s.Snapshot(ctx), subject, search)
}

// Merge объединяет записи каталога и снимок БД в итоговый список.
// Каталог всегда идёт первым, внутри каждой группы порядок источника
// сохраняется. Дедупликации по id нет: запись, живущая в обоих
// источниках, появится в списке дважды.
func Merge(static, remote []model.Tutor, subject, search string) []model.Tutor {
	combined := make([]model.Tutor, 0, len(static)+len(remote))
	combined = append(combined, static...)

	for _, t := range remote {
		if subject == catalog.SubjectAll || t.Subject == subject {
			combined = append(combined, t)
		}
	}

	if search == "" {
		return combined
	}

	filtered := combined[:0:0]
	for _, t := range combined {
		if matchesSearch(t, search) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// matchesSearch проверяет вхождение строки поиска (без учёта регистра)
// в имя, предмет или любую из специализаций.
func matchesSearch(t model.Tutor, search string) bool {
	q := strings.ToLower(search)

	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Subject), q) {
		return true
	}
	for _, specialty := range t.Specialties {
		if strings.Contains(strings.ToLower(specialty), q) {
			return true
		}
	}
	return false
}
