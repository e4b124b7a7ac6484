package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/attribution"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetFilterOptions(linker attribution.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := linker.AggregateFilterOptions(r.Context(), accountID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar opções de filtro")
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}

// TouchSession registra (ou renova) uma sessão de visitante com os sinais de atribuição capturados
func TouchSession(linker attribution.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var session domain.AttributionSession
		if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		session.AccountID = accountID(r)

		stored, err := linker.Touch(r.Context(), &session)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar sessão")
			return
		}

		writeJSON(w, r, http.StatusOK, stored)
	}
}

// LinkSession vincula a sessão a um contato; um vínculo exato conflitante responde 409
func LinkSession(linker attribution.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.LinkRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		request.AccountID = accountID(r)
		request.SessionID = pathParam(r, "session_id")

		result, err := linker.Link(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao vincular sessão")
			return
		}

		if result.Outcome == domain.LinkConflict {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"account_id": request.AccountID,
				"session_id": request.SessionID,
				"contact_id": request.ContactID,
			}).Warn("Sessão já possui vínculo exato com outro contato")
			apiErrors.WriteError(w, apiErrors.ErrAttributionConflict, "sessão já vinculada a outro contato", result)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
