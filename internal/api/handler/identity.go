package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/identity"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func GetCandidates(resolver identity.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := resolver.ResolveCandidates(r.Context(), accountID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar candidatos")
			return
		}

		writeJSON(w, r, http.StatusOK, candidates)
	}
}

// InviteCandidate registra o convite de um usuário do CRM ainda não vinculado
func InviteCandidate(resolver identity.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.InvitationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		request.AccountID = accountID(r)

		crmUser, err := resolver.RecordInvitation(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar convite")
			return
		}

		writeJSON(w, r, http.StatusCreated, crmUser)
	}
}

func RunBackfill(resolver identity.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := resolver.Backfill(r.Context(), accountID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao executar backfill de identidade")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id":    report.AccountID,
			"job_id":        report.JobID,
			"batch_total":   report.Processed,
			"batch_failed":  report.Failed,
			"batch_aborted": report.FailedBatches,
		}).Info("Backfill de identidade concluído")

		writeJSON(w, r, http.StatusOK, report)
	}
}

type roleProposalsResponse struct {
	Proposals []domain.RoleProposal `json:"proposals"`
}

func GetRoleProposals(resolver identity.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposals, err := resolver.ReclassifyRoles(r.Context(), accountID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao reclassificar papéis")
			return
		}
		if proposals == nil {
			proposals = []domain.RoleProposal{}
		}

		writeJSON(w, r, http.StatusOK, roleProposalsResponse{Proposals: proposals})
	}
}
