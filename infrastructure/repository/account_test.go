package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestAccountRepository_GetAccountByID(t *testing.T) {
	t.Run("Conta encontrada", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.name, a.business_timezone, a.status FROM accounts a WHERE a.id = $1")).
			WithArgs("ACC001").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "business_timezone", "status"}).
				AddRow("ACC001", "Loja A", "America/New_York", "ACTIVE"))

		account, err := NewAccountRepository(db).GetAccountByID(context.Background(), "ACC001")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "America/New_York", account.Timezone())
		assert.Equal(t, domain.AccountStatusActive, account.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conta inexistente retorna nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM accounts a").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "business_timezone", "status"}))

		account, err := NewAccountRepository(db).GetAccountByID(context.Background(), "ACC404")

		require.NoError(t, err)
		assert.Nil(t, account)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_UpdateTimezone(t *testing.T) {
	t.Run("Atualiza o fuso horário", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET business_timezone = $1 WHERE id = $2")).
			WithArgs("America/Sao_Paulo", "ACC001").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = NewAccountRepository(db).UpdateTimezone(context.Background(), "ACC001", "America/Sao_Paulo")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE accounts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = NewAccountRepository(db).UpdateTimezone(context.Background(), "ACC404", "UTC")

		assert.ErrorIs(t, err, ErrNoRowsUpdated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
