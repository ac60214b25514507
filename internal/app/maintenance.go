package app

import (
	"context"
	"time"

	"github.com/Haedeel-Basel/My-Tutor/internal/repository"
	"go.uber.org/zap"
)

// Maintenance управляет фоновыми задачами
type Maintenance struct {
	userRepo *repository.AuthUserRepository
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewMaintenance создаёт новый планировщик фоновых задач
func NewMaintenance(userRepo *repository.AuthUserRepository, logger *zap.Logger) *Maintenance {
	return &Maintenance{
		userRepo: userRepo,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (m *Maintenance) Start(ctx context.Context) {
	m.logger.Info("Starting background maintenance")

	go m.runPurgeTask(ctx)
}

// Stop останавливает фоновые задачи
func (m *Maintenance) Stop() {
	m.logger.Info("Stopping background maintenance")
	close(m.stopChan)
}

// runPurgeTask периодически чистит неподтверждённые регистрации
func (m *Maintenance) runPurgeTask(ctx context.Context) {
	// Первый запуск сразу при старте
	m.purgeUnverified(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.purgeUnverified(ctx)
		case <-m.stopChan:
			m.logger.Info("Purge task stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Purge task cancelled")
			return
		}
	}
}

// purgeUnverified удаляет пользователей, не подтвердивших email
// до истечения токена. Их профили уходят каскадом.
func (m *Maintenance) purgeUnverified(ctx context.Context) {
	purged, err := m.userRepo.DeleteExpiredUnverified(ctx)
	if err != nil {
		m.logger.Error("Failed to purge unverified users", zap.Error(err))
		return
	}

	if purged > 0 {
		m.logger.Info("Purged unverified users", zap.Int64("count", purged))
	}
}
