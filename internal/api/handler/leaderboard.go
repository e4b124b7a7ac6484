package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

func GetLeaderboard(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, ok, err := parseDateRange(r, "start_date", "end_date")
		if err != nil {
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

		var comparison *domain.DateRange
		switch {
		case hasComparison:
			comparison = &comparisonRange
		case parseBool(r, "compare_previous"):
			previous := dateRange.Previous()
			comparison = &previous
		}

		leaderboard, err := service.Leaderboard(r.Context(), accountID(r), pathParam(r, "metric"), dateRange, comparison)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar ranking")
			return
		}

		writeJSON(w, r, http.StatusOK, leaderboard)
	}
}
