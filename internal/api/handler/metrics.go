package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

type metricListResponse struct {
	Metrics []domain.MetricDefinition `json:"metrics"`
}

func ListMetrics(calculator metrics.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, metricListResponse{Metrics: calculator.Definitions()})
	}
}

// CalculateMetric calcula uma métrica registrada para a conta (ou usuário) no intervalo informado
func CalculateMetric(calculator metrics.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricName := pathParam(r, "metric")
		scope := domain.MetricScope{
			AccountID: accountID(r),
			UserID:    r.URL.Query().Get("user_id"),
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"metric":     metricName,
			"account_id": scope.AccountID,
			"user_id":    currentUser(r),
		})

		dateRange, ok, err := parseDateRange(r, "start_date", "end_date")
		if err != nil {
			logger.WithError(err).Debug("Datas inválidas")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date e end_date devem estar no formato YYYY-MM-DD", nil)
			return
		}
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
			return
		}

		comparisonRange, hasComparison, err := parseDateRange(r, "compare_start_date", "compare_end_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "compare_start_date e compare_end_date devem estar no formato YYYY-MM-DD", nil)
			return
		}

		opts := domain.CalculateOptions{ComparePrevious: parseBool(r, "compare_previous")}
		if hasComparison {
			opts.ComparisonRange = &comparisonRange
		}

		result, err := calculator.Calculate(r.Context(), scope, metricName, dateRange, opts)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métrica")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
