package account

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/localdate"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

const recomputeTimeout = 30 * time.Minute

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type AccountService interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	UpdateTimezone(ctx context.Context, request domain.UpdateTimezoneRequest) (*domain.UpdateTimezoneResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	zones             *localdate.ZoneTable
	recomputer        localdate.Recomputer
}

func NewService(
	accountRepository repository.AccountRepository,
	zones *localdate.ZoneTable,
	recomputer localdate.Recomputer,
) *Service {
	return &Service{
		accountRepository: accountRepository,
		zones:             zones,
		recomputer:        recomputer,
	}
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "account_id é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar conta")
	}
	if account == nil {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, accountID, "conta não encontrada")
	}

	return account, nil
}

// UpdateTimezone grava o novo fuso e dispara o recálculo dos buckets em segundo plano.
// A resposta volta assim que o fuso é persistido.
func (s *Service) UpdateTimezone(ctx context.Context, request domain.UpdateTimezoneRequest) (*domain.UpdateTimezoneResponse, error) {
	if request.Timezone == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "timezone é obrigatório")
	}
	if _, err := s.zones.Location(request.Timezone); err != nil {
		return nil, err
	}

	account, err := s.GetAccount(ctx, request.AccountID)
	if err != nil {
		return nil, err
	}

	response := &domain.UpdateTimezoneResponse{
		AccountID: account.ID,
		Timezone:  request.Timezone,
	}

	if account.BusinessTimezone == request.Timezone {
		return response, nil
	}

	if err := s.accountRepository.UpdateTimezone(ctx, account.ID, request.Timezone); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar fuso horário da conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"old_timezone": account.Timezone(),
		"new_timezone": request.Timezone,
	}).Info("Fuso horário da conta atualizado, iniciando recálculo das datas locais")

	go s.recompute(context.WithoutCancel(ctx), account.ID)
	response.RecomputeQueued = true

	return response, nil
}

// recompute roda em segundo plano; o recalculador usa o fuso declarado quando obtém a vez da conta
func (s *Service) recompute(ctx context.Context, accountID string) {
	ctx, cancel := context.WithTimeout(ctx, recomputeTimeout)
	defer cancel()

	report, err := s.recomputer.RecomputeForAccount(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao recalcular datas locais após troca de fuso")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"job_id":     report.JobID,
		"timezone":   report.Timezone,
		"processed":  report.Processed,
		"failed":     report.Failed,
		"superseded": report.Superseded,
	}).Info("Recálculo de datas locais concluído")
}
