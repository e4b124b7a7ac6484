package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// computeFailedMessage é o que o painel mostra quando uma consulta de métrica falha
const computeFailedMessage = "failed to compute metric"

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks
type Calculator interface {
	Calculate(ctx context.Context, scope domain.MetricScope, metricName string, dateRange domain.DateRange, opts domain.CalculateOptions) (*domain.MetricResult, error)
	Definitions() []domain.MetricDefinition
}

// Engine executa métricas do catálogo. Não faz autorização: o chamador já validou o acesso ao escopo.
type Engine struct {
	registry         *Registry
	metricRepository repository.MetricRepository
	now              func() time.Time
}

func NewEngine(registry *Registry, metricRepository repository.MetricRepository) *Engine {
	return &Engine{
		registry:         registry,
		metricRepository: metricRepository,
		now:              time.Now,
	}
}

func (e *Engine) Definitions() []domain.MetricDefinition {
	return e.registry.List()
}

func (e *Engine) Calculate(
	ctx context.Context,
	scope domain.MetricScope,
	metricName string,
	dateRange domain.DateRange,
	opts domain.CalculateOptions,
) (*domain.MetricResult, error) {
	def, ok := e.registry.Lookup(metricName)
	if !ok {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrMetricNotFound, scope.AccountID,
			fmt.Sprintf("métrica %q não registrada", metricName))
	}

	comparisonRange, err := validate(def, scope, dateRange, opts)
	if err != nil {
		return nil, err
	}

	if def.AppliesTo == domain.AppliesToAccount {
		scope.UserID = ""
	}

	strat := strategies[def.ComputeKey]
	startedAt := e.now()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"metric":     def.Name,
		"account_id": scope.AccountID,
		"user_id":    scope.UserID,
	})

	var current, previous float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		value, err := strat.compute(gctx, e.metricRepository, scope, dateRange)
		current = value
		return err
	})
	if comparisonRange != nil {
		g.Go(func() error {
			value, err := strat.compute(gctx, e.metricRepository, scope, *comparisonRange)
			previous = value
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao calcular métrica")
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrComputeFailed, apiErrors.ErrComputeFailed, scope.AccountID, computeFailedMessage).Wrap(err)
	}

	if def.TargetType == domain.TargetCurrency {
		current = utils.RoundWithTwoDecimalPlace(current)
		previous = utils.RoundWithTwoDecimalPlace(previous)
	}

	result := &domain.MetricResult{
		Metric:       def.Name,
		Label:        def.Label,
		TargetType:   def.TargetType,
		Scope:        scope,
		Range:        dateRange,
		Value:        current,
		DisplayValue: FormatValue(def.TargetType, current),
		ExecutedAt:   startedAt,
	}

	if comparisonRange != nil {
		result.Comparison = compare(def.TargetType, *comparisonRange, current, previous)
	}

	result.ExecutionTimeMs = e.now().Sub(startedAt).Milliseconds()

	logger.WithField("duration_ms", result.ExecutionTimeMs).Debug("Métrica calculada")

	return result, nil
}

func validate(def domain.MetricDefinition, scope domain.MetricScope, dateRange domain.DateRange, opts domain.CalculateOptions) (*domain.DateRange, error) {
	if scope.AccountID == "" {
		return nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "account_id é obrigatório")
	}

	if def.AppliesTo == domain.AppliesToUser && scope.UserID == "" {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrValidation, apiErrors.ErrMissingRequiredData, scope.AccountID,
			fmt.Sprintf("métrica %q exige user_id", def.Name))
	}

	if !dateRange.Valid() {
		return nil, domain.NewAnalyticsErrorWithID(domain.ErrValidation, apiErrors.ErrInvalidDateRange, scope.AccountID,
			"intervalo de datas inválido")
	}

	if opts.ComparisonRange != nil {
		if !opts.ComparisonRange.Valid() {
			return nil, domain.NewAnalyticsErrorWithID(domain.ErrValidation, apiErrors.ErrInvalidDateRange, scope.AccountID,
				"intervalo de comparação inválido")
		}
		comparison := *opts.ComparisonRange
		return &comparison, nil
	}

	if opts.ComparePrevious {
		previous := dateRange.Previous()
		return &previous, nil
	}

	return nil, nil
}

// compare calcula delta e variação percentual. Sem valor anterior a variação fica nil.
func compare(targetType domain.TargetType, comparisonRange domain.DateRange, current, previous float64) *domain.MetricComparison {
	comparison := &domain.MetricComparison{
		Range:                comparisonRange,
		PreviousValue:        previous,
		PreviousDisplayValue: FormatValue(targetType, previous),
		Delta:                current - previous,
	}

	if previous != 0 {
		percent := comparison.Delta / previous * 100
		comparison.PercentChange = &percent
		comparison.DisplayPercentChange = FormatPercentChange(percent)
	}

	return comparison
}
