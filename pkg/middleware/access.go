package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/access"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// AccountParam é o parâmetro de rota com o id da conta
const AccountParam = "account_id"

// RequireAccountRole só deixa passar quem tem papel igual ou superior a minRole na conta da rota.
// Administradores globais passam sempre.
func RequireAccountRole(gate access.Gate, minRole domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			accountID := httprouter.ParamsFromContext(r.Context()).ByName(AccountParam)
			if accountID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
				return
			}

			logger := log.ForContext(r.Context()).WithFields(log.Fields{
				"user_id":    claims.UserID,
				"account_id": accountID,
				"min_role":   minRole,
			})

			isAdmin, err := gate.IsGlobalAdmin(r.Context(), claims.UserID)
			if err != nil {
				logger.WithError(err).Error("Erro ao verificar administrador global")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao verificar permissões", nil)
				return
			}
			if isAdmin {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := gate.HasRole(r.Context(), claims.UserID, accountID, minRole)
			if err != nil {
				logger.WithError(err).Error("Erro ao verificar acesso à conta")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao verificar permissões", nil)
				return
			}

			if !allowed {
				logger.Warn("Acesso à conta negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GlobalAdminOnly restringe a rota aos administradores da plataforma
func GlobalAdminOnly(gate access.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAdmin, err := gate.IsGlobalAdmin(r.Context(), claims.UserID)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("Erro ao verificar administrador global")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao verificar permissões", nil)
				return
			}

			if !isAdmin {
				log.ForContext(r.Context()).WithField("user_id", claims.UserID).Warn("Acesso de administrador negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem realizar esta ação", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
