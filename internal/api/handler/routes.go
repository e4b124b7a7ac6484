package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/access"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/account"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/attribution"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/identity"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(calculator metrics.Calculator, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics",
			Method:  http.MethodGet,
			Handler: ListMetrics(calculator),
		},
		{
			Path:        "/v1/accounts/:account_id/metrics/:metric",
			Method:      http.MethodGet,
			Handler:     CalculateMetric(calculator),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleSetter)},
		},
	}
}

func Leaderboard(service ranking.RankingService, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account_id/leaderboard/:metric",
			Method:      http.MethodGet,
			Handler:     GetLeaderboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleModerator)},
		},
	}
}

func Attribution(linker attribution.Linker, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account_id/attribution/filter-options",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(linker),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleSetter)},
		},
		{
			Path:        "/v1/accounts/:account_id/attribution/sessions",
			Method:      http.MethodPost,
			Handler:     TouchSession(linker),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleSetter)},
		},
		{
			Path:        "/v1/accounts/:account_id/attribution/sessions/:session_id/link",
			Method:      http.MethodPost,
			Handler:     LinkSession(linker),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleModerator)},
		},
	}
}

func Identity(resolver identity.Resolver, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account_id/identity/candidates",
			Method:      http.MethodGet,
			Handler:     GetCandidates(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleModerator)},
		},
		{
			Path:        "/v1/accounts/:account_id/identity/candidates/invite",
			Method:      http.MethodPost,
			Handler:     InviteCandidate(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleAdmin)},
		},
		{
			Path:        "/v1/accounts/:account_id/identity/backfill",
			Method:      http.MethodPost,
			Handler:     RunBackfill(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleAdmin)},
		},
		{
			Path:        "/v1/accounts/:account_id/identity/role-proposals",
			Method:      http.MethodGet,
			Handler:     GetRoleProposals(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleAdmin)},
		},
	}
}

func Accounts(service account.AccountService, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account_id/timezone",
			Method:      http.MethodPut,
			Handler:     UpdateAccountTimezone(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAccountRole(gate, domain.RoleAdmin)},
		},
	}
}

func CronJobs(services CronJobServices, gate access.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.GlobalAdminOnly(gate)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.GlobalAdminOnly(gate)},
		},
	}
}
