package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	sessionsTable = "attribution_sessions"
)

var sessionColumns = []string{
	"session_id",
	"account_id",
	"COALESCE(fbclid, '')",
	"COALESCE(gclid, '')",
	"COALESCE(fbc, '')",
	"COALESCE(fbp, '')",
	"COALESCE(utm_source, '')",
	"COALESCE(utm_medium, '')",
	"COALESCE(utm_campaign, '')",
	"COALESCE(utm_term, '')",
	"COALESCE(utm_content, '')",
	"COALESCE(landing_url, '')",
	"COALESCE(referrer, '')",
	"quality",
	"COALESCE(method, '')",
	"contact_id",
	"first_visit_at",
	"last_activity_at",
	"expires_at",
}

//go:generate mockgen -source=attribution_session.go -destination=mocks/attribution_session.go -package=mocks
type AttributionSessionRepository interface {
	Get(ctx context.Context, accountID string, sessionID string) (*domain.AttributionSession, error)
	Touch(ctx context.Context, session *domain.AttributionSession) (*domain.AttributionSession, error)
	CompareAndSetLink(ctx context.Context, accountID string, sessionID string, allowed []domain.Quality, update domain.LinkUpdate) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time, limit int) (int64, error)
	Stats(ctx context.Context) (*domain.CleanupStats, error)
	DistinctValues(ctx context.Context, accountID string, field string, limit int) ([]string, error)
}

type attributionSessionRepository struct {
	conn postgres.Conn
}

func NewAttributionSessionRepository(conn postgres.Conn) AttributionSessionRepository {
	return &attributionSessionRepository{
		conn: conn,
	}
}

func (r *attributionSessionRepository) Get(ctx context.Context, accountID string, sessionID string) (*domain.AttributionSession, error) {
	query, args, err := squirrel.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(squirrel.Eq{"account_id": accountID, "session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	session, err := scanSession(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return session, nil
}

// Touch cria a sessão no primeiro toque; nos seguintes renova atividade e expiração e preenche ids de clique ausentes.
// Devolve a linha gravada, ou nil quando o session_id já pertence a outra conta.
func (r *attributionSessionRepository) Touch(ctx context.Context, session *domain.AttributionSession) (*domain.AttributionSession, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(sessionsTable).
		Columns(
			"session_id", "account_id", "fbclid", "gclid", "fbc", "fbp",
			"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
			"landing_url", "referrer", "quality", "first_visit_at", "last_activity_at", "expires_at",
		).
		Values(
			session.SessionID, session.AccountID,
			nullIfEmpty(session.FBCLID), nullIfEmpty(session.GCLID), nullIfEmpty(session.FBC), nullIfEmpty(session.FBP),
			nullIfEmpty(session.UTMSource), nullIfEmpty(session.UTMMedium), nullIfEmpty(session.UTMCampaign),
			nullIfEmpty(session.UTMTerm), nullIfEmpty(session.UTMContent),
			nullIfEmpty(session.LandingURL), nullIfEmpty(session.Referrer),
			domain.QualityNone, session.FirstVisitAt, session.LastActivityAt, session.ExpiresAt,
		).
		Suffix(`
			ON CONFLICT (session_id) DO UPDATE SET
				fbclid = COALESCE(attribution_sessions.fbclid, EXCLUDED.fbclid),
				gclid = COALESCE(attribution_sessions.gclid, EXCLUDED.gclid),
				fbc = COALESCE(attribution_sessions.fbc, EXCLUDED.fbc),
				fbp = COALESCE(attribution_sessions.fbp, EXCLUDED.fbp),
				last_activity_at = GREATEST(attribution_sessions.last_activity_at, EXCLUDED.last_activity_at),
				expires_at = GREATEST(attribution_sessions.expires_at, EXCLUDED.expires_at)
			WHERE attribution_sessions.account_id = EXCLUDED.account_id
			RETURNING ` + strings.Join(sessionColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	stored, err := scanSession(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapExecError(err)
	}

	return stored, nil
}

func scanSession(row rowScanner) (*domain.AttributionSession, error) {
	session := &domain.AttributionSession{}
	err := row.Scan(
		&session.SessionID,
		&session.AccountID,
		&session.FBCLID,
		&session.GCLID,
		&session.FBC,
		&session.FBP,
		&session.UTMSource,
		&session.UTMMedium,
		&session.UTMCampaign,
		&session.UTMTerm,
		&session.UTMContent,
		&session.LandingURL,
		&session.Referrer,
		&session.Quality,
		&session.Method,
		&session.ContactID,
		&session.FirstVisitAt,
		&session.LastActivityAt,
		&session.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// CompareAndSetLink aplica o vínculo somente se a qualidade atual ainda estiver entre as permitidas
func (r *attributionSessionRepository) CompareAndSetLink(
	ctx context.Context,
	accountID string,
	sessionID string,
	allowed []domain.Quality,
	update domain.LinkUpdate,
) (bool, error) {
	if len(allowed) == 0 {
		return false, nil
	}

	query, args, err := squirrel.
		Update(sessionsTable).
		Set("contact_id", update.ContactID).
		Set("quality", update.Quality).
		Set("method", update.Method).
		Set("last_activity_at", update.LastActivityAt).
		Set("expires_at", update.ExpiresAt).
		Where(squirrel.Eq{"account_id": accountID, "session_id": sessionID, "quality": allowed}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// DeleteExpired remove até limit sessões expiradas e retorna quantas foram removidas
func (r *attributionSessionRepository) DeleteExpired(ctx context.Context, now time.Time, limit int) (int64, error) {
	query, args, err := squirrel.
		Delete(sessionsTable).
		Where(
			"session_id IN (SELECT session_id FROM "+sessionsTable+" WHERE expires_at < ? LIMIT ?)",
			now, limit,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapExecError(err)
	}

	return result.RowsAffected()
}

func (r *attributionSessionRepository) Stats(ctx context.Context) (*domain.CleanupStats, error) {
	query, args, err := squirrel.
		Select("quality", "COALESCE(method, '')", "contact_id IS NOT NULL", "COUNT(*)").
		From(sessionsTable).
		GroupBy("quality", "COALESCE(method, '')", "contact_id IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := &domain.CleanupStats{
		ByQuality: make(map[domain.Quality]int64),
		ByMethod:  make(map[domain.LinkMethod]int64),
	}

	for rows.Next() {
		var quality domain.Quality
		var method domain.LinkMethod
		var linked bool
		var total int64
		if err := rows.Scan(&quality, &method, &linked, &total); err != nil {
			return nil, fmt.Errorf("erro ao deserializar estatística: %w", err)
		}

		stats.Total += total
		stats.ByQuality[quality] += total
		if method != domain.MethodNone {
			stats.ByMethod[method] += total
		}
		if linked {
			stats.Linked += total
		} else {
			stats.Unlinked += total
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return stats, nil
}

func (r *attributionSessionRepository) DistinctValues(ctx context.Context, accountID string, field string, limit int) ([]string, error) {
	if err := checkFilterField(field); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("DISTINCT " + field).
		From(sessionsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(fmt.Sprintf("COALESCE(%s, '') <> ''", field)).
		OrderBy(field + " ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryStrings(ctx, r.conn, query, args)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
