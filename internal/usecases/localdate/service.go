package localdate

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const defaultBatchSize = 500

// Recomputer grava os buckets de data local sempre no fuso declarado pela conta no momento da execução.
//
//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Recomputer interface {
	RecomputeForAccount(ctx context.Context, accountID string) (*domain.BatchReport, error)
	NormalizePending(ctx context.Context, accountID string) (*domain.BatchReport, error)
}

type Service struct {
	localDateRepository repository.LocalDateRepository
	accountRepository   repository.AccountRepository
	zones               *ZoneTable
	locks               *accountLocks
	batchSize           int
}

func NewService(
	localDateRepository repository.LocalDateRepository,
	accountRepository repository.AccountRepository,
	zones *ZoneTable,
	cfg *config.Config,
) *Service {
	batchSize := cfg.LocalDateSync.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		localDateRepository: localDateRepository,
		accountRepository:   accountRepository,
		zones:               zones,
		locks:               newAccountLocks(),
		batchSize:           batchSize,
	}
}

// RecomputeForAccount recalcula os buckets de todas as linhas da conta, usado quando o fuso muda
func (s *Service) RecomputeForAccount(ctx context.Context, accountID string) (*domain.BatchReport, error) {
	return s.run(ctx, "recompute", accountID, false)
}

// NormalizePending preenche os buckets apenas das linhas que ainda não têm local_date
func (s *Service) NormalizePending(ctx context.Context, accountID string) (*domain.BatchReport, error) {
	return s.run(ctx, "normalize", accountID, true)
}

// run executa um job por vez por conta. O fuso é lido já com a trava e conferido a cada página:
// se a conta trocar de fuso no meio, o job para e o recálculo disparado pela troca assume.
func (s *Service) run(ctx context.Context, kind string, accountID string, onlyMissing bool) (*domain.BatchReport, error) {
	if accountID == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "account_id é obrigatório")
	}

	unlock, err := s.locks.lock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	timezone, err := s.declaredTimezone(ctx, accountID)
	if err != nil {
		return nil, err
	}

	loc, err := s.zones.Location(timezone)
	if err != nil {
		return nil, err
	}

	report := &domain.BatchReport{
		JobID:     utils.GenerateJobID(kind),
		AccountID: accountID,
		Timezone:  timezone,
		Reasons:   make([]domain.BatchFailure, 0),
		StartedAt: time.Now(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"job_id":     report.JobID,
		"account_id": accountID,
		"timezone":   timezone,
	})
	logger.Info("Iniciando recálculo de datas locais")

	for _, table := range domain.BucketTables {
		if err := s.processTable(ctx, logger, report, table, loc, onlyMissing); err != nil {
			report.FinishedAt = time.Now()
			return report, err
		}
		if report.Superseded {
			break
		}
	}

	report.FinishedAt = time.Now()

	logger.WithFields(logrus.Fields{
		"processed":      report.Processed,
		"succeeded":      report.Succeeded,
		"failed":         report.Failed,
		"failed_batches": report.FailedBatches,
		"superseded":     report.Superseded,
		"duration":       report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Recálculo de datas locais concluído")

	return report, nil
}

// processTable percorre a tabela por keyset (id > último visto) até esgotar as linhas da conta
func (s *Service) processTable(
	ctx context.Context,
	logger *logrus.Entry,
	report *domain.BatchReport,
	table domain.BucketTable,
	loc *time.Location,
	onlyMissing bool,
) error {
	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if afterID > 0 {
			changed, err := s.timezoneChanged(ctx, report)
			if err != nil {
				s.recordFailure(logger, report, fmt.Sprintf("%s:>%d", table, afterID), 0, err)
				return nil
			}
			if changed {
				report.Superseded = true
				logger.Warn("Fuso da conta mudou durante o recálculo, interrompendo")
				return nil
			}
		}

		rows, err := s.localDateRepository.ListTimestampsAfter(ctx, table, report.AccountID, afterID, s.batchSize, onlyMissing)
		if err != nil {
			s.recordFailure(logger, report, fmt.Sprintf("%s:>%d", table, afterID), 0, err)
			return nil
		}

		if len(rows) == 0 {
			return nil
		}

		s.processBatch(ctx, logger, report, table, loc, rows)

		if len(rows) < s.batchSize {
			return nil
		}
		afterID = rows[len(rows)-1].ID
	}
}

// processBatch grava uma página; a falha fica restrita a ela
func (s *Service) processBatch(
	ctx context.Context,
	logger *logrus.Entry,
	report *domain.BatchReport,
	table domain.BucketTable,
	loc *time.Location,
	rows []domain.TimestampRow,
) {
	batchKey := fmt.Sprintf("%s:%d-%d", table, rows[0].ID, rows[len(rows)-1].ID)

	updates := make([]domain.BucketUpdate, 0, len(rows))
	for _, row := range rows {
		updates = append(updates, domain.BucketUpdate{
			ID:      row.ID,
			Buckets: BucketsIn(row.Timestamp, loc),
		})
	}

	report.Processed += len(rows)

	if err := s.localDateRepository.UpdateLocalBuckets(ctx, table, updates); err != nil {
		s.recordFailure(logger, report, batchKey, len(rows), err)
		return
	}

	report.Succeeded += len(rows)

	logger.WithFields(logrus.Fields{
		"batch_key":  batchKey,
		"batch_rows": len(rows),
	}).Debug("Lote de datas locais gravado")
}

func (s *Service) declaredTimezone(ctx context.Context, accountID string) (string, error) {
	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar fuso da conta")
	}
	if account == nil {
		return "", domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, accountID, "conta não encontrada")
	}
	return account.Timezone(), nil
}

func (s *Service) timezoneChanged(ctx context.Context, report *domain.BatchReport) (bool, error) {
	current, err := s.declaredTimezone(ctx, report.AccountID)
	if err != nil {
		return false, err
	}
	return current != report.Timezone, nil
}

func (s *Service) recordFailure(logger *logrus.Entry, report *domain.BatchReport, batchKey string, rows int, err error) {
	report.Failed += rows
	report.FailedBatches++
	report.Reasons = append(report.Reasons, domain.BatchFailure{
		BatchKey: batchKey,
		Error:    err.Error(),
	})

	logger.WithError(err).WithField("batch_key", batchKey).Error("Falha ao processar lote de datas locais")
}
