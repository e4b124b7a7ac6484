package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz o erro de um caso de uso para a resposta padronizada da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var analyticsErr *domain.AnalyticsError
	if errors.As(err, &analyticsErr) {
		status := apiErrors.StatusFor(analyticsErr.Code)
		if status >= http.StatusInternalServerError {
			logger.Error(fallback)
		} else {
			logger.Debug(fallback)
		}

		message := analyticsErr.Details
		if errors.Is(err, domain.ErrComputeFailed) {
			message = "failed to compute metric"
		}
		apiErrors.WriteError(w, analyticsErr.Code, message, nil)
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
}

func accountID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(middleware.AccountParam)
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// parseDateRange lê um par de datas YYYY-MM-DD da query string; ok é false quando as duas estão vazias
func parseDateRange(r *http.Request, startParam, endParam string) (dateRange domain.DateRange, ok bool, err error) {
	query := r.URL.Query()
	startRaw, endRaw := query.Get(startParam), query.Get(endParam)
	if startRaw == "" && endRaw == "" {
		return domain.DateRange{}, false, nil
	}

	start, err := utils.ParseDate(startRaw)
	if err != nil {
		return domain.DateRange{}, false, err
	}
	end, err := utils.ParseDate(endRaw)
	if err != nil {
		return domain.DateRange{}, false, err
	}

	return domain.DateRange{Start: *start, End: *end}, true, nil
}

func parseBool(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && value
}

func currentUser(r *http.Request) string {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.UserID
	}
	return ""
}
