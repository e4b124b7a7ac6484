package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	identityMocks "github.com/vfg2006/sales-analytics-api/internal/usecases/identity/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestIdentityRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(resolver *identityMocks.MockResolver)
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name:   "Lista candidatos",
			method: http.MethodGet,
			path:   "/v1/accounts/ACC001/identity/candidates",
			setup: func(resolver *identityMocks.MockResolver) {
				resolver.EXPECT().ResolveCandidates(gomock.Any(), "ACC001").Return(&domain.CandidatesResponse{
					Reps:    []domain.Candidate{{ID: "crm-1", Name: "Ana Souza", Role: domain.RoleSalesRep}},
					Setters: []domain.Candidate{},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var response domain.CandidatesResponse
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Reps, 1)
				assert.Equal(t, "Ana Souza", response.Reps[0].Name)
			},
		},
		{
			name:   "Registra convite",
			method: http.MethodPost,
			path:   "/v1/accounts/ACC001/identity/candidates/invite",
			body:   `{"name": "Ana Souza", "role": "sales_rep", "crm_user_id": "crm-1"}`,
			setup: func(resolver *identityMocks.MockResolver) {
				resolver.EXPECT().RecordInvitation(gomock.Any(), domain.InvitationRequest{
					AccountID: "ACC001",
					Name:      "Ana Souza",
					Role:      domain.RoleSalesRep,
					CRMUserID: "crm-1",
				}).Return(&domain.CRMUser{}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "Nome ambíguo no convite",
			method: http.MethodPost,
			path:   "/v1/accounts/ACC001/identity/candidates/invite",
			body:   `{"name": "Ana", "role": "setter"}`,
			setup: func(resolver *identityMocks.MockResolver) {
				resolver.EXPECT().RecordInvitation(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAnalyticsError(domain.ErrAmbiguousMatch, apiErrors.ErrAmbiguousMatch, "Ana"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "Executa backfill",
			method: http.MethodPost,
			path:   "/v1/accounts/ACC001/identity/backfill",
			setup: func(resolver *identityMocks.MockResolver) {
				resolver.EXPECT().Backfill(gomock.Any(), "ACC001").Return(&domain.BackfillReport{
					JobID:      "job-1",
					AccountID:  "ACC001",
					Processed:  10,
					Succeeded:  7,
					Ambiguous:  1,
					Unresolved: 2,
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var report domain.BackfillReport
				require.NoError(t, json.Unmarshal(body, &report))
				assert.Equal(t, 7, report.Succeeded)
				assert.Equal(t, 2, report.Unresolved)
			},
		},
		{
			name:   "Propostas vazias viram lista vazia",
			method: http.MethodGet,
			path:   "/v1/accounts/ACC001/identity/role-proposals",
			setup: func(resolver *identityMocks.MockResolver) {
				resolver.EXPECT().ReclassifyRoles(gomock.Any(), "ACC001").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"proposals": []}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := identityMocks.NewMockResolver(ctrl)
			tt.setup(resolver)

			rec := serve(Identity(resolver, allowAllGate(ctrl)), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}
