package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestAttributionSessionRepository_CompareAndSetLink(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	update := domain.LinkUpdate{
		ContactID:      77,
		Quality:        domain.QualityExact,
		Method:         domain.MethodFBCLID,
		LastActivityAt: now,
		ExpiresAt:      now.Add(720 * time.Hour),
	}

	tests := []struct {
		name     string
		allowed  []domain.Quality
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, applied bool, err error)
	}{
		{
			name:    "Aplica quando a qualidade atual é inferior",
			allowed: domain.QualityExact.Below(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(
					"UPDATE attribution_sessions SET contact_id = $1, quality = $2, method = $3, last_activity_at = $4, expires_at = $5 WHERE account_id = $6 AND quality IN ($7,$8,$9) AND session_id = $10",
				)).
					WithArgs(
						int64(77), "exact", "fbclid", now, now.Add(720*time.Hour),
						"ACC001", "none", "heuristic", "utm", "sess-1",
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			validate: func(t *testing.T, applied bool, err error) {
				require.NoError(t, err)
				assert.True(t, applied)
			},
		},
		{
			name:    "Não aplica quando outra escrita elevou a qualidade antes",
			allowed: domain.QualityUTM.Below(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE attribution_sessions").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			validate: func(t *testing.T, applied bool, err error) {
				require.NoError(t, err)
				assert.False(t, applied)
			},
		},
		{
			name:    "Sem níveis permitidos não executa nada",
			allowed: domain.QualityNone.Below(),
			setup:   func(mock sqlmock.Sqlmock) {},
			validate: func(t *testing.T, applied bool, err error) {
				require.NoError(t, err)
				assert.False(t, applied)
			},
		},
		{
			name:    "Erro do banco é propagado",
			allowed: domain.QualityExact.Below(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE attribution_sessions").
					WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, applied bool, err error) {
				assert.Error(t, err)
				assert.False(t, applied)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			applied, err := NewAttributionSessionRepository(db).CompareAndSetLink(context.Background(), "ACC001", "sess-1", tt.allowed, update)
			tt.validate(t, applied, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttributionSessionRepository_Touch(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	touchSQL := `(?s)INSERT INTO attribution_sessions .*ON CONFLICT \(session_id\) DO UPDATE SET.*` +
		`WHERE attribution_sessions.account_id = EXCLUDED.account_id.*RETURNING session_id, account_id`
	columns := []string{
		"session_id", "account_id", "fbclid", "gclid", "fbc", "fbp",
		"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
		"landing_url", "referrer", "quality", "method", "contact_id",
		"first_visit_at", "last_activity_at", "expires_at",
	}
	input := &domain.AttributionSession{
		SessionID:      "sess-1",
		AccountID:      "ACC001",
		UTMSource:      "google",
		FirstVisitAt:   now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(720 * time.Hour),
	}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, session *domain.AttributionSession, err error)
	}{
		{
			name: "Devolve o vínculo já gravado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(touchSQL).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(
						"sess-1", "ACC001", "fb.click.1", "", "", "",
						"google", "", "", "", "",
						"", "", "exact", "fbclid", int64(77),
						now.Add(-time.Hour), now, now.Add(720*time.Hour),
					))
			},
			validate: func(t *testing.T, session *domain.AttributionSession, err error) {
				require.NoError(t, err)
				require.NotNil(t, session)
				assert.Equal(t, domain.QualityExact, session.Quality)
				assert.Equal(t, domain.MethodFBCLID, session.Method)
				require.NotNil(t, session.ContactID)
				assert.Equal(t, int64(77), *session.ContactID)
				assert.Equal(t, "fb.click.1", session.FBCLID)
			},
		},
		{
			name: "Session id de outra conta não devolve linha",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(touchSQL).WillReturnRows(sqlmock.NewRows(columns))
			},
			validate: func(t *testing.T, session *domain.AttributionSession, err error) {
				require.NoError(t, err)
				assert.Nil(t, session)
			},
		},
		{
			name: "Erro do banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(touchSQL).WillReturnError(errors.New("connection reset"))
			},
			validate: func(t *testing.T, session *domain.AttributionSession, err error) {
				assert.ErrorContains(t, err, "connection reset")
				assert.Nil(t, session)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			session, err := NewAttributionSessionRepository(db).Touch(context.Background(), input)

			tt.validate(t, session, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttributionSessionRepository_DeleteExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM attribution_sessions WHERE session_id IN (SELECT session_id FROM attribution_sessions WHERE expires_at < $1 LIMIT $2)",
	)).
		WithArgs(now, 1000).
		WillReturnResult(sqlmock.NewResult(0, 250))

	deleted, err := NewAttributionSessionRepository(db).DeleteExpired(context.Background(), now, 1000)

	require.NoError(t, err)
	assert.Equal(t, int64(250), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributionSessionRepository_Stats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT quality").
		WillReturnRows(sqlmock.NewRows([]string{"quality", "method", "linked", "count"}).
			AddRow("none", "", false, 10).
			AddRow("exact", "fbclid", true, 4).
			AddRow("exact", "gclid", true, 2).
			AddRow("utm", "utm", true, 3))

	stats, err := NewAttributionSessionRepository(db).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(19), stats.Total)
	assert.Equal(t, int64(9), stats.Linked)
	assert.Equal(t, int64(10), stats.Unlinked)
	assert.Equal(t, int64(6), stats.ByQuality[domain.QualityExact])
	assert.Equal(t, int64(10), stats.ByQuality[domain.QualityNone])
	assert.Equal(t, int64(4), stats.ByMethod[domain.MethodFBCLID])
	assert.NotContains(t, stats.ByMethod, domain.MethodNone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributionSessionRepository_DistinctValues(t *testing.T) {
	t.Run("Campo fora da lista de filtros", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		_, err = NewAttributionSessionRepository(db).DistinctValues(context.Background(), "ACC001", "landing_url", 200)

		assert.ErrorIs(t, err, ErrUnknownColumn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Retorna valores distintos da conta", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT utm_source FROM attribution_sessions WHERE account_id = $1")).
			WithArgs("ACC001").
			WillReturnRows(sqlmock.NewRows([]string{"utm_source"}).AddRow("facebook").AddRow("google"))

		values, err := NewAttributionSessionRepository(db).DistinctValues(context.Background(), "ACC001", domain.FilterUTMSource, 200)

		require.NoError(t, err)
		assert.Equal(t, []string{"facebook", "google"}, values)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
