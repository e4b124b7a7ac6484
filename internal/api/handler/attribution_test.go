package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	attributionMocks "github.com/vfg2006/sales-analytics-api/internal/usecases/attribution/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	linker := attributionMocks.NewMockLinker(ctrl)
	linker.EXPECT().AggregateFilterOptions(gomock.Any(), "ACC001").Return(domain.FilterOptions{
		"utm_source": {"facebook", "google"},
	}, nil)

	rec := serve(Attribution(linker, allowAllGate(ctrl)), http.MethodGet, "/v1/accounts/ACC001/attribution/filter-options", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var options domain.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, []string{"facebook", "google"}, options["utm_source"])
}

func TestLinkSession(t *testing.T) {
	contactID := int64(42)

	tests := []struct {
		name       string
		body       string
		setup      func(linker *attributionMocks.MockLinker)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Vínculo aplicado",
			body: `{"contact_id": 42}`,
			setup: func(linker *attributionMocks.MockLinker) {
				linker.EXPECT().Link(gomock.Any(), domain.LinkRequest{AccountID: "ACC001", SessionID: "S1", ContactID: 42}).Return(&domain.LinkResult{
					Outcome: domain.LinkApplied,
					Quality: domain.QualityExact,
					Method:  domain.MethodFBCLID,
					Session: &domain.AttributionSession{SessionID: "S1", ContactID: &contactID},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Conflito com vínculo exato existente",
			body: `{"contact_id": 42}`,
			setup: func(linker *attributionMocks.MockLinker) {
				linker.EXPECT().Link(gomock.Any(), gomock.Any()).Return(&domain.LinkResult{
					Outcome: domain.LinkConflict,
					Quality: domain.QualityExact,
				}, nil)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrAttributionConflict,
		},
		{
			name: "Sessão não encontrada",
			body: `{"contact_id": 42}`,
			setup: func(linker *attributionMocks.MockLinker) {
				linker.EXPECT().Link(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAnalyticsError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "sessão não encontrada"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:       "Corpo inválido",
			body:       `{"contact_id": "abc"`,
			setup:      func(linker *attributionMocks.MockLinker) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Erro no armazenamento",
			body: `{"contact_id": 42}`,
			setup: func(linker *attributionMocks.MockLinker) {
				linker.EXPECT().Link(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			linker := attributionMocks.NewMockLinker(ctrl)
			tt.setup(linker)

			rec := serve(Attribution(linker, allowAllGate(ctrl)), http.MethodPost, "/v1/accounts/ACC001/attribution/sessions/S1/link", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestTouchSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	linker := attributionMocks.NewMockLinker(ctrl)
	linker.EXPECT().Touch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session *domain.AttributionSession) (*domain.AttributionSession, error) {
			assert.Equal(t, "ACC001", session.AccountID)
			assert.Equal(t, "S1", session.SessionID)
			assert.Equal(t, "abc", session.FBCLID)
			return session, nil
		})

	rec := serve(Attribution(linker, allowAllGate(ctrl)), http.MethodPost, "/v1/accounts/ACC001/attribution/sessions",
		`{"session_id": "S1", "account_id": "OTHER", "fbclid": "abc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTouchSession_ReturnsStoredLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	linker := attributionMocks.NewMockLinker(ctrl)
	contactID := int64(77)
	linker.EXPECT().Touch(gomock.Any(), gomock.Any()).Return(&domain.AttributionSession{
		SessionID: "S1",
		AccountID: "ACC001",
		Quality:   domain.QualityExact,
		Method:    domain.MethodFBCLID,
		ContactID: &contactID,
	}, nil)

	rec := serve(Attribution(linker, allowAllGate(ctrl)), http.MethodPost, "/v1/accounts/ACC001/attribution/sessions",
		`{"session_id": "S1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.AttributionSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.QualityExact, body.Quality)
	require.NotNil(t, body.ContactID)
	assert.Equal(t, int64(77), *body.ContactID)
}

func TestTouchSession_OtherAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	linker := attributionMocks.NewMockLinker(ctrl)
	linker.EXPECT().Touch(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewAnalyticsErrorWithID(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "ACC001", "sessão não encontrada"))

	rec := serve(Attribution(linker, allowAllGate(ctrl)), http.MethodPost, "/v1/accounts/ACC001/attribution/sessions",
		`{"session_id": "S1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}
