package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestCRMUserRepository_GetByCRMUserID(t *testing.T) {
	selectSQL := regexp.QuoteMeta(
		"SELECT account_id, crm_user_id, name, role, user_id, activity_count, invitation_count, last_invited_at, last_activity_at FROM crm_users WHERE account_id = $1 AND crm_user_id = $2",
	)
	columns := []string{
		"account_id", "crm_user_id", "name", "role", "user_id",
		"activity_count", "invitation_count", "last_invited_at", "last_activity_at",
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, user *domain.CRMUser, err error)
	}{
		{
			name: "Usuário encontrado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs("ACC001", "crm-42").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("ACC001", "crm-42", "Jane Doe", "setter", nil, int64(12), 1, nil, nil))
			},
			validate: func(t *testing.T, user *domain.CRMUser, err error) {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "Jane Doe", user.Name)
				assert.Equal(t, domain.RoleSetter, user.Role)
				assert.Equal(t, int64(12), user.ActivityCount)
				assert.Nil(t, user.UserID)
			},
		},
		{
			name: "Usuário inexistente retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs("ACC001", "crm-42").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			validate: func(t *testing.T, user *domain.CRMUser, err error) {
				require.NoError(t, err)
				assert.Nil(t, user)
			},
		},
		{
			name: "Erro do banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs("ACC001", "crm-42").
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, user *domain.CRMUser, err error) {
				assert.ErrorContains(t, err, "connection reset")
				assert.Nil(t, user)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			user, err := NewCRMUserRepository(db).GetByCRMUserID(context.Background(), "ACC001", "crm-42")

			tt.validate(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
