package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	crmUsersTable = "crm_users"
)

var crmUserColumns = []string{
	"account_id",
	"crm_user_id",
	"name",
	"role",
	"user_id",
	"activity_count",
	"invitation_count",
	"last_invited_at",
	"last_activity_at",
}

//go:generate mockgen -source=crm_user.go -destination=mocks/crm_user.go -package=mocks
type CRMUserRepository interface {
	GetByCRMUserID(ctx context.Context, accountID string, crmUserID string) (*domain.CRMUser, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.CRMUser, error)
	UpsertActivity(ctx context.Context, users []domain.CRMUser) error
	RecordInvitation(ctx context.Context, user domain.CRMUser) (*domain.CRMUser, error)
}

type crmUserRepository struct {
	conn postgres.Conn
}

func NewCRMUserRepository(conn postgres.Conn) CRMUserRepository {
	return &crmUserRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCRMUser(row rowScanner) (*domain.CRMUser, error) {
	user := &domain.CRMUser{}
	if err := row.Scan(
		&user.AccountID,
		&user.CRMUserID,
		&user.Name,
		&user.Role,
		&user.UserID,
		&user.ActivityCount,
		&user.InvitationCount,
		&user.LastInvitedAt,
		&user.LastActivityAt,
	); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *crmUserRepository) GetByCRMUserID(ctx context.Context, accountID string, crmUserID string) (*domain.CRMUser, error) {
	query, args, err := squirrel.
		Select(crmUserColumns...).
		From(crmUsersTable).
		Where(squirrel.Eq{"account_id": accountID, "crm_user_id": crmUserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := scanCRMUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *crmUserRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.CRMUser, error) {
	query, args, err := squirrel.
		Select(crmUserColumns...).
		From(crmUsersTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("name ASC").
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

	users := make([]domain.CRMUser, 0)
	for rows.Next() {
		user, err := scanCRMUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar usuário do CRM: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return users, nil
}

// UpsertActivity atualiza os contadores de atividade sem tocar nos contadores de convite
func (r *crmUserRepository) UpsertActivity(ctx context.Context, users []domain.CRMUser) error {
	if len(users) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(crmUsersTable).
		Columns("account_id", "crm_user_id", "name", "role", "user_id", "activity_count", "last_activity_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, user := range users {
		query = query.Values(
			user.AccountID,
			user.CRMUserID,
			user.Name,
			user.Role,
			user.UserID,
			user.ActivityCount,
			user.LastActivityAt,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (account_id, crm_user_id) DO UPDATE SET
				name = EXCLUDED.name,
				role = EXCLUDED.role,
				user_id = COALESCE(crm_users.user_id, EXCLUDED.user_id),
				activity_count = EXCLUDED.activity_count,
				last_activity_at = EXCLUDED.last_activity_at
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// RecordInvitation incrementa o contador de convites do usuário do CRM
func (r *crmUserRepository) RecordInvitation(ctx context.Context, user domain.CRMUser) (*domain.CRMUser, error) {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(crmUsersTable).
		Columns("account_id", "crm_user_id", "name", "role", "invitation_count", "last_invited_at").
		Values(user.AccountID, user.CRMUserID, user.Name, user.Role, 1, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (account_id, crm_user_id) DO UPDATE SET
				invitation_count = crm_users.invitation_count + 1,
				last_invited_at = NOW()
			RETURNING `+strings.Join(crmUserColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	updated, err := scanCRMUser(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		return nil, wrapExecError(err)
	}

	return updated, nil
}
