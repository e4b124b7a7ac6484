package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/account"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// UpdateAccountTimezone altera o fuso da conta e agenda o recálculo das datas locais
func UpdateAccountTimezone(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateTimezoneRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		request.AccountID = accountID(r)

		response, err := service.UpdateTimezone(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar fuso horário")
			return
		}

		status := http.StatusOK
		if response.RecomputeQueued {
			status = http.StatusAccepted
		}
		writeJSON(w, r, status, response)
	}
}
