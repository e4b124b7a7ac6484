package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Job é o contrato comum dos agendadores expostos na rota de cron
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// syncState impede execuções sobrepostas e guarda os horários da última execução
type syncState struct {
	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func (s *syncState) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *syncState) finish(completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	if completed {
		s.lastSyncCompletedAt = time.Now()
	}
}

func (s *syncState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *syncState) status() (running bool, startedAt time.Time, completedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running, s.lastSyncStartedAt, s.lastSyncCompletedAt
}

// schedule registra a função no cron e para o agendador quando o contexto é cancelado
func schedule(ctx context.Context, scheduler *gocron.Scheduler, cron string, name string, fn func()) error {
	if _, err := scheduler.Cron(cron).Do(fn); err != nil {
		return err
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", name).Info("Parando agendador")
		scheduler.Stop()
	}()

	return nil
}

// getActiveAccounts busca as contas ativas
func getActiveAccounts(ctx context.Context, accountRepo repository.AccountRepository) ([]*domain.Account, error) {
	accounts, err := accountRepo.ListAccounts(ctx, []domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return []*domain.Account{}, nil
	}

	return accounts, nil
}

// forEachAccount executa fn para cada conta com no máximo maxConcurrent execuções simultâneas
func forEachAccount(ctx context.Context, accounts []*domain.Account, maxConcurrent int, fn func(ctx context.Context, account *domain.Account)) {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			fn(ctx, acc)
		}(account)
	}

	wg.Wait()
}

var (
	_ Job = (*LocalDateSyncService)(nil)
	_ Job = (*IdentityBackfillService)(nil)
	_ Job = (*AttributionCleanupService)(nil)
)
