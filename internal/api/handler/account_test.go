package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	accountMocks "github.com/vfg2006/sales-analytics-api/internal/usecases/account/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestUpdateAccountTimezone(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *accountMocks.MockAccountService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Fuso alterado agenda recálculo",
			body: `{"timezone": "America/Sao_Paulo"}`,
			setup: func(service *accountMocks.MockAccountService) {
				service.EXPECT().UpdateTimezone(gomock.Any(), domain.UpdateTimezoneRequest{AccountID: "ACC001", Timezone: "America/Sao_Paulo"}).
					Return(&domain.UpdateTimezoneResponse{AccountID: "ACC001", Timezone: "America/Sao_Paulo", RecomputeQueued: true}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "Fuso igual não agenda recálculo",
			body: `{"timezone": "UTC"}`,
			setup: func(service *accountMocks.MockAccountService) {
				service.EXPECT().UpdateTimezone(gomock.Any(), gomock.Any()).
					Return(&domain.UpdateTimezoneResponse{AccountID: "ACC001", Timezone: "UTC"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Fuso inválido",
			body: `{"timezone": "Mars/Olympus"}`,
			setup: func(service *accountMocks.MockAccountService) {
				service.EXPECT().UpdateTimezone(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAnalyticsError(domain.ErrValidation, apiErrors.ErrInvalidTimezone, "Mars/Olympus"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidTimezone,
		},
		{
			name:       "Corpo inválido",
			body:       `timezone`,
			setup:      func(service *accountMocks.MockAccountService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := accountMocks.NewMockAccountService(ctrl)
			tt.setup(service)

			rec := serve(Accounts(service, allowAllGate(ctrl)), http.MethodPut, "/v1/accounts/ACC001/timezone", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}
