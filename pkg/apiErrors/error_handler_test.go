package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "métrica não registrada", code: ErrMetricNotFound, wantStatus: http.StatusNotFound},
		{name: "falha de cálculo", code: ErrComputeFailed, wantStatus: http.StatusInternalServerError},
		{name: "conflito de atribuição", code: ErrAttributionConflict, wantStatus: http.StatusConflict},
		{name: "privilégio insuficiente", code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
