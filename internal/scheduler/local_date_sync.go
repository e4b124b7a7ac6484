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
	"github.com/vfg2006/sales-analytics-api/internal/usecases/localdate"
)

// LocalDateSyncConfig representa a configuração do agendador de datas locais
type LocalDateSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// LocalDateSyncService preenche periodicamente os buckets de data local das linhas novas
type LocalDateSyncService struct {
	scheduler   *gocron.Scheduler
	config      LocalDateSyncConfig
	accountRepo repository.AccountRepository
	recomputer  localdate.Recomputer
	state       syncState
	ctx         context.Context
}

func NewLocalDateSyncService(
	accountRepo repository.AccountRepository,
	recomputer localdate.Recomputer,
	appConfig *config.Config,
) *LocalDateSyncService {
	syncConfig := LocalDateSyncConfig{
		CronSchedule:      appConfig.LocalDateSync.CronSchedule,
		MaxConcurrentJobs: appConfig.LocalDateSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.LocalDateSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de datas locais carregada")

	return &LocalDateSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      syncConfig,
		accountRepo: accountRepo,
		recomputer:  recomputer,
		ctx:         context.Background(),
	}
}

// Start inicia o agendador
func (s *LocalDateSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de datas locais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de datas locais")

	if err := schedule(ctx, s.scheduler, s.config.CronSchedule, "local_date_sync", s.syncAll); err != nil {
		return fmt.Errorf("erro ao agendar sincronização de datas locais: %w", err)
	}

	return nil
}

func (s *LocalDateSyncService) syncAll() {
	s.normalizeAllAccounts(s.ctx)
}

// normalizeAllAccounts executa NormalizePending em todas as contas ativas e devolve os relatórios ordenados por conta
func (s *LocalDateSyncService) normalizeAllAccounts(ctx context.Context) []*domain.BatchReport {
	if !s.state.begin() {
		logrus.Info("Sincronização de datas locais já em andamento, ignorando")
		return nil
	}

	completed := false
	defer func() { s.state.finish(completed) }()

	startTime := time.Now()

	accounts, err := getActiveAccounts(ctx, s.accountRepo)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização de datas locais")
		return nil
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de datas locais")
		completed = true
		return nil
	}

	var mu sync.Mutex
	reports := make([]*domain.BatchReport, 0, len(accounts))

	forEachAccount(ctx, accounts, s.config.MaxConcurrentJobs, func(ctx context.Context, account *domain.Account) {
		report, err := s.recomputer.NormalizePending(ctx, account.ID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Error("Erro ao normalizar datas locais da conta")
		}
		if report == nil {
			return
		}

		mu.Lock()
		reports = append(reports, report)
		mu.Unlock()
	})

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].AccountID < reports[j].AccountID
	})

	processed, failed := 0, 0
	for _, report := range reports {
		processed += report.Processed
		failed += report.Failed
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"accounts":  len(accounts),
		"processed": processed,
		"failed":    failed,
	}).Info("Sincronização de datas locais concluída")

	completed = true
	return reports
}

// TriggerManualSync inicia manualmente uma sincronização de datas locais
func (s *LocalDateSyncService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Sincronização de datas locais já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de datas locais")
	go s.syncAll()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *LocalDateSyncService) GetStatus() map[string]any {
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
