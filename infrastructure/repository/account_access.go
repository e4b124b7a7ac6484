package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	accountAccessTable = "account_access aa"
)

//go:generate mockgen -source=account_access.go -destination=mocks/account_access.go -package=mocks
type AccountAccessRepository interface {
	ListActive(ctx context.Context, accountID string) ([]domain.AccountAccess, error)
	GetAccess(ctx context.Context, userID string, accountID string) (*domain.AccountAccess, error)
}

type accountAccessRepository struct {
	conn postgres.Conn
}

func NewAccountAccessRepository(conn postgres.Conn) AccountAccessRepository {
	return &accountAccessRepository{
		conn: conn,
	}
}

// ListActive retorna os vínculos ativos da conta com o nome de exibição do usuário
func (r *accountAccessRepository) ListActive(ctx context.Context, accountID string) ([]domain.AccountAccess, error) {
	query, args, err := squirrel.
		Select("aa.user_id", "aa.account_id", "aa.role", "aa.is_active", "u.display_name").
		From(accountAccessTable).
		Join("users u ON u.id = aa.user_id").
		Where(squirrel.Eq{"aa.account_id": accountID, "aa.is_active": true}).
		OrderBy("u.display_name ASC").
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

	accesses := make([]domain.AccountAccess, 0)
	for rows.Next() {
		var access domain.AccountAccess
		if err := rows.Scan(
			&access.UserID,
			&access.AccountID,
			&access.Role,
			&access.IsActive,
			&access.DisplayName,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar acesso: %w", err)
		}
		accesses = append(accesses, access)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accesses, nil
}

func (r *accountAccessRepository) GetAccess(ctx context.Context, userID string, accountID string) (*domain.AccountAccess, error) {
	query, args, err := squirrel.
		Select("aa.user_id", "aa.account_id", "aa.role", "aa.is_active", "u.display_name").
		From(accountAccessTable).
		Join("users u ON u.id = aa.user_id").
		Where(squirrel.Eq{"aa.user_id": userID, "aa.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var access domain.AccountAccess
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&access.UserID,
		&access.AccountID,
		&access.Role,
		&access.IsActive,
		&access.DisplayName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &access, nil
}
