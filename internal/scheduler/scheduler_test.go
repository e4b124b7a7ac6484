package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	attributionmocks "github.com/vfg2006/sales-analytics-api/internal/usecases/attribution/mocks"
	identitymocks "github.com/vfg2006/sales-analytics-api/internal/usecases/identity/mocks"
	localdatemocks "github.com/vfg2006/sales-analytics-api/internal/usecases/localdate/mocks"
	"go.uber.org/mock/gomock"
)

var activeStatus = []domain.AccountStatus{domain.AccountStatusActive}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LocalDateSync.CronSchedule = "*/10 * * * *"
	cfg.LocalDateSync.MaxConcurrentJobs = 2
	cfg.IdentityBackfill.CronSchedule = "0 2 * * *"
	cfg.IdentityBackfill.MaxConcurrentJobs = 2
	cfg.Attribution.CleanupCronSchedule = "0 * * * *"
	cfg.Attribution.CleanupBatchSize = 1000
	return cfg
}

func TestLocalDateSyncService_normalizeAllAccounts(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(accountRepo *mocks.MockAccountRepository, recomputer *localdatemocks.MockRecomputer)
		validate func(t *testing.T, reports []*domain.BatchReport)
	}{
		{
			name: "Normaliza cada conta ativa",
			setup: func(accountRepo *mocks.MockAccountRepository, recomputer *localdatemocks.MockRecomputer) {
				accountRepo.EXPECT().ListAccounts(gomock.Any(), activeStatus).Return([]*domain.Account{
					{ID: "ACC002", BusinessTimezone: "America/New_York"},
					{ID: "ACC001"},
					{ID: "ACC003", BusinessTimezone: "Asia/Tokyo"},
				}, nil)

				recomputer.EXPECT().NormalizePending(gomock.Any(), "ACC001").
					Return(&domain.BatchReport{AccountID: "ACC001", Processed: 10, Succeeded: 10}, nil)
				recomputer.EXPECT().NormalizePending(gomock.Any(), "ACC002").
					Return(&domain.BatchReport{AccountID: "ACC002", Processed: 5, Succeeded: 4, Failed: 1}, nil)
				recomputer.EXPECT().NormalizePending(gomock.Any(), "ACC003").
					Return(nil, errors.New("fuso inválido"))
			},
			validate: func(t *testing.T, reports []*domain.BatchReport) {
				require.Len(t, reports, 2)
				assert.Equal(t, "ACC001", reports[0].AccountID)
				assert.Equal(t, "ACC002", reports[1].AccountID)
				assert.Equal(t, 1, reports[1].Failed)
			},
		},
		{
			name: "Erro ao listar contas",
			setup: func(accountRepo *mocks.MockAccountRepository, recomputer *localdatemocks.MockRecomputer) {
				accountRepo.EXPECT().ListAccounts(gomock.Any(), activeStatus).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, reports []*domain.BatchReport) {
				assert.Nil(t, reports)
			},
		},
		{
			name: "Sem contas ativas",
			setup: func(accountRepo *mocks.MockAccountRepository, recomputer *localdatemocks.MockRecomputer) {
				accountRepo.EXPECT().ListAccounts(gomock.Any(), activeStatus).Return(nil, nil)
			},
			validate: func(t *testing.T, reports []*domain.BatchReport) {
				assert.Empty(t, reports)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			recomputer := localdatemocks.NewMockRecomputer(ctrl)
			tt.setup(accountRepo, recomputer)

			service := NewLocalDateSyncService(accountRepo, recomputer, testConfig())
			reports := service.normalizeAllAccounts(context.Background())

			tt.validate(t, reports)
			assert.False(t, service.state.isRunning())
		})
	}
}

func TestLocalDateSyncService_skipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewLocalDateSyncService(mocks.NewMockAccountRepository(ctrl), localdatemocks.NewMockRecomputer(ctrl), testConfig())

	require.True(t, service.state.begin())

	assert.Nil(t, service.normalizeAllAccounts(context.Background()))
	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])
}

func TestIdentityBackfillService_backfillAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	resolver := identitymocks.NewMockResolver(ctrl)

	accountRepo.EXPECT().ListAccounts(gomock.Any(), activeStatus).Return([]*domain.Account{{ID: "ACC002"}, {ID: "ACC001"}}, nil)
	resolver.EXPECT().Backfill(gomock.Any(), "ACC001").Return(&domain.BackfillReport{AccountID: "ACC001", Processed: 3, Succeeded: 2, Ambiguous: 1}, nil)
	resolver.EXPECT().Backfill(gomock.Any(), "ACC002").Return(&domain.BackfillReport{AccountID: "ACC002", Processed: 1, Unresolved: 1}, nil)

	service := NewIdentityBackfillService(accountRepo, resolver, testConfig())
	reports := service.backfillAllAccounts(context.Background())

	require.Len(t, reports, 2)
	assert.Equal(t, "ACC001", reports[0].AccountID)
	assert.Equal(t, 1, reports[0].Ambiguous)
	assert.Equal(t, "ACC002", reports[1].AccountID)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}

func TestAttributionCleanupService_cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	linker := attributionmocks.NewMockLinker(ctrl)

	expected := &domain.CleanupReport{Deleted: 42, Stats: &domain.CleanupStats{Total: 10, Linked: 7, Unlinked: 3}}
	linker.EXPECT().CleanupExpired(gomock.Any()).Return(expected, nil)

	service := NewAttributionCleanupService(linker, testConfig())
	report := service.cleanup(context.Background())

	assert.Equal(t, expected, report)
	assert.Equal(t, expected, service.GetStatus()["last_report"])
}

func TestScheduler_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()

	jobs := []Job{
		NewLocalDateSyncService(mocks.NewMockAccountRepository(ctrl), localdatemocks.NewMockRecomputer(ctrl), cfg),
		NewIdentityBackfillService(mocks.NewMockAccountRepository(ctrl), identitymocks.NewMockResolver(ctrl), cfg),
		NewAttributionCleanupService(attributionmocks.NewMockLinker(ctrl), cfg),
	}

	for _, job := range jobs {
		assert.NoError(t, job.Start(context.Background()))
		assert.Equal(t, false, job.GetStatus()["sync_enabled"])
	}
}
