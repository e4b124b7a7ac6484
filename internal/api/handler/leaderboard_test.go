package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	rankingMocks "github.com/vfg2006/sales-analytics-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetLeaderboard(t *testing.T) {
	week := domain.DateRange{Start: date("2024-03-08"), End: date("2024-03-14")}
	previousWeek := domain.DateRange{Start: date("2024-03-01"), End: date("2024-03-07")}

	tests := []struct {
		name       string
		path       string
		setup      func(service *rankingMocks.MockRankingService)
		wantStatus int
		validate   func(t *testing.T, body []byte)
	}{
		{
			name: "Ranking com período anterior",
			path: "/v1/accounts/ACC001/leaderboard/rep_cash?start_date=2024-03-08&end_date=2024-03-14&compare_previous=true",
			setup: func(service *rankingMocks.MockRankingService) {
				service.EXPECT().Leaderboard(gomock.Any(), "ACC001", "rep_cash", week, &previousWeek).Return(&domain.Leaderboard{
					AccountID: "ACC001",
					Metric:    "rep_cash",
					Entries: []domain.LeaderboardEntry{
						{UserID: "USR2", Position: 1, PreviousPosition: 2, PositionChange: 1},
						{UserID: "USR1", Position: 2, PreviousPosition: 1, PositionChange: -1},
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var leaderboard domain.Leaderboard
				require.NoError(t, json.Unmarshal(body, &leaderboard))
				require.Len(t, leaderboard.Entries, 2)
				assert.Equal(t, "USR2", leaderboard.Entries[0].UserID)
				assert.Equal(t, 1, leaderboard.Entries[0].PositionChange)
			},
		},
		{
			name: "Ranking sem comparação",
			path: "/v1/accounts/ACC001/leaderboard/rep_cash?start_date=2024-03-08&end_date=2024-03-14",
			setup: func(service *rankingMocks.MockRankingService) {
				service.EXPECT().Leaderboard(gomock.Any(), "ACC001", "rep_cash", week, nil).Return(&domain.Leaderboard{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Métrica de conta não gera ranking",
			path: "/v1/accounts/ACC001/leaderboard/total_dials?start_date=2024-03-08&end_date=2024-03-14",
			setup: func(service *rankingMocks.MockRankingService) {
				service.EXPECT().Leaderboard(gomock.Any(), "ACC001", "total_dials", week, nil).
					Return(nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrInvalidRequest, "métrica não é por usuário"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Datas ausentes",
			path:       "/v1/accounts/ACC001/leaderboard/rep_cash",
			setup:      func(service *rankingMocks.MockRankingService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := rankingMocks.NewMockRankingService(ctrl)
			tt.setup(service)

			rec := serve(Leaderboard(service, allowAllGate(ctrl)), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}
