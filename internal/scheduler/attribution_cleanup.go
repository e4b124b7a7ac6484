package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/attribution"
)

type AttributionCleanupConfig struct {
	CronSchedule string
	BatchSize    int
	SyncEnabled  bool
}

// AttributionCleanupService remove de hora em hora as sessões de atribuição expiradas
type AttributionCleanupService struct {
	scheduler  *gocron.Scheduler
	config     AttributionCleanupConfig
	linker     attribution.Linker
	state      syncState
	ctx        context.Context
	lastReport *domain.CleanupReport
}

func NewAttributionCleanupService(linker attribution.Linker, appConfig *config.Config) *AttributionCleanupService {
	cleanupConfig := AttributionCleanupConfig{
		CronSchedule: appConfig.Attribution.CleanupCronSchedule,
		BatchSize:    appConfig.Attribution.CleanupBatchSize,
		SyncEnabled:  appConfig.Attribution.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"batch_size":    cleanupConfig.BatchSize,
		"sync_enabled":  cleanupConfig.SyncEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &AttributionCleanupService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cleanupConfig,
		linker:    linker,
		ctx:       context.Background(),
	}
}

func (s *AttributionCleanupService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de sessões de atribuição desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões de atribuição")

	if err := schedule(ctx, s.scheduler, s.config.CronSchedule, "attribution_cleanup", s.syncAll); err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões de atribuição: %w", err)
	}

	return nil
}

func (s *AttributionCleanupService) syncAll() {
	s.cleanup(s.ctx)
}

func (s *AttributionCleanupService) cleanup(ctx context.Context) *domain.CleanupReport {
	if !s.state.begin() {
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return nil
	}

	completed := false
	defer func() { s.state.finish(completed) }()

	report, err := s.linker.CleanupExpired(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na limpeza de sessões de atribuição")
		return report
	}

	s.state.mu.Lock()
	s.lastReport = report
	s.state.mu.Unlock()

	completed = true
	return report
}

func (s *AttributionCleanupService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual de sessões de atribuição")
	go s.syncAll()
	return true
}

func (s *AttributionCleanupService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.status()

	s.state.mu.Lock()
	lastReport := s.lastReport
	s.state.mu.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"cleanup_batch_size":     s.config.BatchSize,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_report":            lastReport,
	}
}
