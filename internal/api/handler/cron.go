package handler

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeLocalDateSync      = "local-date-sync"
	CronJobTypeIdentityBackfill   = "identity-backfill"
	CronJobTypeAttributionCleanup = "attribution-cleanup"
	CronJobTypeAll                = "all"
)

// CronJobServices contém os jobs que podem ser executados manualmente, indexados pelo tipo
type CronJobServices map[string]scheduler.Job

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for jobType, job := range s {
		if job != nil {
			types = append(types, jobType)
		}
	}
	slices.Sort(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		triggered := map[string]bool{}
		if cronType == CronJobTypeAll {
			for _, jobType := range services.types() {
				triggered[jobType] = services[jobType].TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
					"accepted": append(services.types(), CronJobTypeAll),
				})
				return
			}
			triggered[cronType] = job.TriggerManualSync()
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message":   "Cron job iniciada com sucesso",
			"type":      cronType,
			"triggered": triggered,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]any, len(services))
		for _, jobType := range services.types() {
			status[jobType] = services[jobType].GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
