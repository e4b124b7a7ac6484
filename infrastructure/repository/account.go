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
	accountsTable = "accounts a"
)

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks
type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	ListTimezones(ctx context.Context) ([]string, error)
	UpdateTimezone(ctx context.Context, accountID string, timezone string) error
}

type accountRepository struct {
	conn postgres.Conn
}

func NewAccountRepository(conn postgres.Conn) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.name, a.business_timezone, a.status").
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc := &domain.Account{}
	err = a.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...).Scan(
		&acc.ID,
		&acc.Name,
		&acc.BusinessTimezone,
		&acc.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context, availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("a.id, a.name, a.business_timezone, a.status").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc := &domain.Account{}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.BusinessTimezone, &acc.Status); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

// ListTimezones retorna os fusos horários distintos declarados pelas contas
func (a *accountRepository) ListTimezones(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT business_timezone").
		From("accounts").
		Where(squirrel.NotEq{"business_timezone": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	timezones := make([]string, 0)
	for rows.Next() {
		var tz string
		if err := rows.Scan(&tz); err != nil {
			return nil, fmt.Errorf("erro ao ler fuso horário: %w", err)
		}
		timezones = append(timezones, tz)
	}

	return timezones, rows.Err()
}

func (a *accountRepository) UpdateTimezone(ctx context.Context, accountID string, timezone string) error {
	if accountID == "" {
		return errors.New("ID is required")
	}

	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("business_timezone", timezone).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := a.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: account %s", ErrNoRowsUpdated, accountID)
	}

	return nil
}
