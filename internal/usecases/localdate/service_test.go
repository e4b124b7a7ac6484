package localdate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(repo *mocks.MockLocalDateRepository, accountRepo *mocks.MockAccountRepository, batchSize int) *Service {
	cfg := &config.Config{}
	cfg.LocalDateSync.BatchSize = batchSize
	return NewService(repo, accountRepo, NewZoneTable("America/New_York", "Asia/Tokyo"), cfg)
}

func timestampRows(from, to int64, at time.Time) []domain.TimestampRow {
	rows := make([]domain.TimestampRow, 0, to-from+1)
	for id := from; id <= to; id++ {
		rows = append(rows, domain.TimestampRow{ID: id, Timestamp: at})
	}
	return rows
}

func accountIn(timezone string) *domain.Account {
	return &domain.Account{ID: "ACC001", BusinessTimezone: timezone, Status: domain.AccountStatusActive}
}

func TestService_RecomputeForAccount(t *testing.T) {
	occurred := time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockLocalDateRepository, accountRepo *mocks.MockAccountRepository)
		validate func(t *testing.T, report *domain.BatchReport, err error)
	}{
		{
			name: "Lote com falha é registrado e o job continua",
			setup: func(repo *mocks.MockLocalDateRepository, accountRepo *mocks.MockAccountRepository) {
				ctx := gomock.Any()
				accountRepo.EXPECT().GetAccountByID(ctx, "ACC001").Return(accountIn("America/New_York"), nil).AnyTimes()

				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableDials, "ACC001", int64(0), 2, false).
					Return(timestampRows(1, 2, occurred), nil)
				repo.EXPECT().UpdateLocalBuckets(ctx, domain.TableDials, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.BucketTable, updates []domain.BucketUpdate) error {
						require.Len(t, updates, 2)
						assert.Equal(t, civil(2024, 3, 9), updates[0].Buckets.LocalDate)
						return nil
					})
				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableDials, "ACC001", int64(2), 2, false).
					Return(timestampRows(3, 4, occurred), nil)
				repo.EXPECT().UpdateLocalBuckets(ctx, domain.TableDials, gomock.Any()).
					Return(errors.New("deadlock detected"))
				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableDials, "ACC001", int64(4), 2, false).
					Return(timestampRows(5, 5, occurred), nil)
				repo.EXPECT().UpdateLocalBuckets(ctx, domain.TableDials, gomock.Any()).Return(nil)

				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableAppointments, "ACC001", int64(0), 2, false).Return(nil, nil)
				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableDiscoveries, "ACC001", int64(0), 2, false).Return(nil, errors.New("timeout"))
				repo.EXPECT().ListTimestampsAfter(ctx, domain.TableContacts, "ACC001", int64(0), 2, false).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ACC001", report.AccountID)
				assert.Equal(t, "America/New_York", report.Timezone)
				assert.Contains(t, report.JobID, "recompute_")
				assert.False(t, report.Superseded)
				assert.Equal(t, 5, report.Processed)
				assert.Equal(t, 3, report.Succeeded)
				assert.Equal(t, 2, report.Failed)
				assert.Equal(t, 2, report.FailedBatches)
				require.Len(t, report.Reasons, 2)
				assert.Equal(t, "dials:3-4", report.Reasons[0].BatchKey)
				assert.Equal(t, "discoveries:>0", report.Reasons[1].BatchKey)
			},
		},
		{
			name: "Fuso inválido gravado na conta é rejeitado antes de ler as tabelas",
			setup: func(repo *mocks.MockLocalDateRepository, accountRepo *mocks.MockAccountRepository) {
				accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(accountIn("Not/A_Zone"), nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Nil(t, report)
			},
		},
		{
			name: "Conta inexistente",
			setup: func(repo *mocks.MockLocalDateRepository, accountRepo *mocks.MockAccountRepository) {
				accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.BatchReport, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockLocalDateRepository(ctrl)
			accountRepo := mocks.NewMockAccountRepository(ctrl)
			tt.setup(repo, accountRepo)

			report, err := newTestService(repo, accountRepo, 2).RecomputeForAccount(context.Background(), "ACC001")
			tt.validate(t, report, err)
		})
	}
}

func TestService_NormalizePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocalDateRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(accountIn(""), nil)
	for _, table := range domain.BucketTables {
		repo.EXPECT().ListTimestampsAfter(gomock.Any(), table, "ACC001", int64(0), 500, true).Return(nil, nil)
	}

	report, err := newTestService(repo, accountRepo, 500).NormalizePending(context.Background(), "ACC001")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimezone, report.Timezone)
	assert.Equal(t, 0, report.Processed)
	assert.Empty(t, report.Reasons)
}

func TestService_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocalDateRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").Return(accountIn("UTC"), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newTestService(repo, accountRepo, 500).RecomputeForAccount(ctx, "ACC001")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

// Duas trocas de fuso seguidas: o job antigo é interrompido e os buckets terminam no fuso declarado
func TestService_RecomputeForAccount_ConcurrentTimezoneChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLocalDateRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	service := newTestService(repo, accountRepo, 2)

	occurred := time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC) // 09/03 em Nova York, 10/03 em Tóquio

	var mu sync.Mutex
	declared := "America/New_York"
	written := make(map[int64]time.Time)
	updateCalls := 0

	firstWriteStarted := make(chan struct{})
	releaseFirstWrite := make(chan struct{})

	accountRepo.EXPECT().GetAccountByID(gomock.Any(), "ACC001").
		DoAndReturn(func(context.Context, string) (*domain.Account, error) {
			mu.Lock()
			defer mu.Unlock()
			return accountIn(declared), nil
		}).AnyTimes()

	repo.EXPECT().ListTimestampsAfter(gomock.Any(), gomock.Any(), "ACC001", gomock.Any(), 2, false).
		DoAndReturn(func(_ context.Context, table domain.BucketTable, _ string, afterID int64, _ int, _ bool) ([]domain.TimestampRow, error) {
			if table != domain.TableDials {
				return nil, nil
			}
			switch afterID {
			case 0:
				return timestampRows(1, 2, occurred), nil
			case 2:
				return timestampRows(3, 3, occurred), nil
			}
			return nil, nil
		}).AnyTimes()

	repo.EXPECT().UpdateLocalBuckets(gomock.Any(), domain.TableDials, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.BucketTable, updates []domain.BucketUpdate) error {
			mu.Lock()
			updateCalls++
			first := updateCalls == 1
			mu.Unlock()

			if first {
				close(firstWriteStarted)
				<-releaseFirstWrite
			}

			mu.Lock()
			defer mu.Unlock()
			for _, update := range updates {
				written[update.ID] = update.Buckets.LocalDate
			}
			return nil
		}).AnyTimes()

	var wg sync.WaitGroup
	var first, second *domain.BatchReport
	var firstErr, secondErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = service.RecomputeForAccount(context.Background(), "ACC001")
	}()

	<-firstWriteStarted

	mu.Lock()
	declared = "Asia/Tokyo"
	mu.Unlock()

	wg.Add(1)
	go func() {
		defer wg.Done()
		second, secondErr = service.RecomputeForAccount(context.Background(), "ACC001")
	}()

	close(releaseFirstWrite)
	wg.Wait()

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)

	assert.Equal(t, "America/New_York", first.Timezone)
	assert.True(t, first.Superseded)
	assert.Equal(t, "Asia/Tokyo", second.Timezone)
	assert.False(t, second.Superseded)
	assert.Equal(t, 3, second.Succeeded)

	require.Len(t, written, 3)
	for id, localDate := range written {
		assert.Equal(t, civil(2024, 3, 10), localDate, "linha %d", id)
	}
}

func TestAccountLocks(t *testing.T) {
	locks := newAccountLocks()

	unlock, err := locks.lock(context.Background(), "ACC001")
	require.NoError(t, err)

	other, err := locks.lock(context.Background(), "ACC002")
	require.NoError(t, err)
	other()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locks.lock(ctx, "ACC001")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	again, err := locks.lock(context.Background(), "ACC001")
	require.NoError(t, err)
	again()
}
