package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/accounts/:account_id/timezone",
		Method: http.MethodPut,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("auth"), mark("role")},
	}))

	t.Run("aplica os middlewares na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/accounts/ACC001/timezone", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"auth", "role", "handler"}, order)
	})

	t.Run("rota desconhecida responde com o erro padronizado", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrResourceNotFound)
	})

	t.Run("método sem rota também responde 404", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/ACC001/timezone", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
