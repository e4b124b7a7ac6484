package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestMetricRepository_Aggregate(t *testing.T) {
	march := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		query    domain.AggregateQuery
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, value float64, err error)
	}{
		{
			name: "Contagem filtrada por resultado e usuário",
			query: domain.AggregateQuery{
				Table:      domain.TableDials,
				Function:   domain.AggregateCount,
				Outcomes:   []string{domain.OutcomeConnected},
				AccountID:  "ACC001",
				UserColumn: "setter_user_id",
				UserID:     "USR001",
				Range:      march,
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT COUNT(*) FROM dials WHERE account_id = $1 AND local_date BETWEEN $2 AND $3 AND outcome IN ($4) AND setter_user_id = $5",
				)).
					WithArgs("ACC001", "2024-03-01", "2024-03-31", domain.OutcomeConnected, "USR001").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
			},
			validate: func(t *testing.T, value float64, err error) {
				require.NoError(t, err)
				assert.Equal(t, 42.0, value)
			},
		},
		{
			name: "Soma de cash_collected na conta",
			query: domain.AggregateQuery{
				Table:     domain.TableAppointments,
				Function:  domain.AggregateSum,
				Column:    "cash_collected",
				AccountID: "ACC001",
				Range:     march,
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT COALESCE(SUM(cash_collected), 0) FROM appointments WHERE account_id = $1 AND local_date BETWEEN $2 AND $3",
				)).
					WithArgs("ACC001", "2024-03-01", "2024-03-31").
					WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(1234.5))
			},
			validate: func(t *testing.T, value float64, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1234.5, value)
			},
		},
		{
			name: "Coluna de soma fora da lista permitida",
			query: domain.AggregateQuery{
				Table:     domain.TableAppointments,
				Function:  domain.AggregateSum,
				Column:    "id; DROP TABLE appointments",
				AccountID: "ACC001",
				Range:     march,
			},
			setup: func(mock sqlmock.Sqlmock) {},
			validate: func(t *testing.T, value float64, err error) {
				assert.ErrorIs(t, err, ErrUnknownColumn)
			},
		},
		{
			name: "Tabela desconhecida",
			query: domain.AggregateQuery{
				Table:     domain.BucketTable("users"),
				Function:  domain.AggregateCount,
				AccountID: "ACC001",
				Range:     march,
			},
			setup: func(mock sqlmock.Sqlmock) {},
			validate: func(t *testing.T, value float64, err error) {
				assert.ErrorIs(t, err, ErrUnknownTable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			value, err := NewMetricRepository(db).Aggregate(context.Background(), tt.query)
			tt.validate(t, value, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
