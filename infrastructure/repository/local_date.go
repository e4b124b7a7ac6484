package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=local_date.go -destination=mocks/local_date.go -package=mocks
type LocalDateRepository interface {
	ListTimestampsAfter(ctx context.Context, table domain.BucketTable, accountID string, afterID int64, limit int, onlyMissing bool) ([]domain.TimestampRow, error)
	UpdateLocalBuckets(ctx context.Context, table domain.BucketTable, updates []domain.BucketUpdate) error
}

type localDateRepository struct {
	conn postgres.Conn
}

func NewLocalDateRepository(conn postgres.Conn) LocalDateRepository {
	return &localDateRepository{
		conn: conn,
	}
}

// ListTimestampsAfter pagina as linhas da conta por id (keyset): até limit linhas com id > afterID
func (r *localDateRepository) ListTimestampsAfter(
	ctx context.Context,
	table domain.BucketTable,
	accountID string,
	afterID int64,
	limit int,
	onlyMissing bool,
) ([]domain.TimestampRow, error) {
	if err := checkBucketTable(table); err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select("id", table.TimestampColumn()).
		From(string(table)).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if onlyMissing {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"local_date": nil})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.TimestampRow, 0, limit)
	for rows.Next() {
		var row domain.TimestampRow
		if err := rows.Scan(&row.ID, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao deserializar linha de %s: %w", table, err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return result, nil
}

// UpdateLocalBuckets grava os buckets de um lote em uma única transação
func (r *localDateRepository) UpdateLocalBuckets(ctx context.Context, table domain.BucketTable, updates []domain.BucketUpdate) error {
	if err := checkBucketTable(table); err != nil {
		return err
	}

	if len(updates) == 0 {
		return nil
	}

	return postgres.RunInTransaction(ctx, r.conn, func(tx *sql.Tx) error {
		for _, update := range updates {
			query, args, err := squirrel.
				Update(string(table)).
				Set("local_date", update.Buckets.LocalDate.Format(time.DateOnly)).
				Set("local_week", update.Buckets.LocalWeekStart.Format(time.DateOnly)).
				Set("local_month", update.Buckets.LocalMonthStart.Format(time.DateOnly)).
				Where(squirrel.Eq{"id": update.ID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return wrapExecError(err)
			}
		}

		return nil
	})
}
