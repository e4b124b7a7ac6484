package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/identity"
)

type IdentityBackfillConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// IdentityBackfillService resolve toda noite os responsáveis das atividades ainda sem usuário
type IdentityBackfillService struct {
	scheduler   *gocron.Scheduler
	config      IdentityBackfillConfig
	accountRepo repository.AccountRepository
	resolver    identity.Resolver
	state       syncState
	ctx         context.Context
}

func NewIdentityBackfillService(
	accountRepo repository.AccountRepository,
	resolver identity.Resolver,
	appConfig *config.Config,
) *IdentityBackfillService {
	backfillConfig := IdentityBackfillConfig{
		CronSchedule:      appConfig.IdentityBackfill.CronSchedule,
		MaxConcurrentJobs: appConfig.IdentityBackfill.MaxConcurrentJobs,
		SyncEnabled:       appConfig.IdentityBackfill.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       backfillConfig.CronSchedule,
		"max_concurrent_jobs": backfillConfig.MaxConcurrentJobs,
		"sync_enabled":        backfillConfig.SyncEnabled,
	}).Info("Configuração do agendador de backfill de identidades carregada")

	return &IdentityBackfillService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      backfillConfig,
		accountRepo: accountRepo,
		resolver:    resolver,
		ctx:         context.Background(),
	}
}

func (s *IdentityBackfillService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Backfill de identidades desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backfill de identidades")

	if err := schedule(ctx, s.scheduler, s.config.CronSchedule, "identity_backfill", s.syncAll); err != nil {
		return fmt.Errorf("erro ao agendar backfill de identidades: %w", err)
	}

	return nil
}

func (s *IdentityBackfillService) syncAll() {
	s.backfillAllAccounts(s.ctx)
}

func (s *IdentityBackfillService) backfillAllAccounts(ctx context.Context) []*domain.BackfillReport {
	if !s.state.begin() {
		logrus.Info("Backfill de identidades já em andamento, ignorando")
		return nil
	}

	completed := false
	defer func() { s.state.finish(completed) }()

	startTime := time.Now()

	accounts, err := getActiveAccounts(ctx, s.accountRepo)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para backfill de identidades")
		return nil
	}

	var mu sync.Mutex
	reports := make([]*domain.BackfillReport, 0, len(accounts))

	forEachAccount(ctx, accounts, s.config.MaxConcurrentJobs, func(ctx context.Context, account *domain.Account) {
		report, err := s.resolver.Backfill(ctx, account.ID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Error("Erro no backfill de identidades da conta")
			return
		}

		mu.Lock()
		reports = append(reports, report)
		mu.Unlock()
	})

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].AccountID < reports[j].AccountID
	})

	succeeded, ambiguous, unresolved, failed, failedBatches := 0, 0, 0, 0, 0
	for _, report := range reports {
		succeeded += report.Succeeded
		ambiguous += report.Ambiguous
		unresolved += report.Unresolved
		failed += report.Failed
		failedBatches += report.FailedBatches
	}

	logrus.WithFields(logrus.Fields{
		"duration":       time.Since(startTime).String(),
		"accounts":       len(accounts),
		"succeeded":      succeeded,
		"ambiguous":      ambiguous,
		"unresolved":     unresolved,
		"failed":         failed,
		"failed_batches": failedBatches,
	}).Info("Backfill de identidades concluído")

	completed = true
	return reports
}

func (s *IdentityBackfillService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Backfill de identidades já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando backfill manual de identidades")
	go s.syncAll()
	return true
}

func (s *IdentityBackfillService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.status()
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
