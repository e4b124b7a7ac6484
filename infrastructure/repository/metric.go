package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var summableColumns = map[string]struct{}{
	"cash_collected": {},
}

var userColumns = map[string]struct{}{
	"setter_user_id":    {},
	"sales_rep_user_id": {},
}

//go:generate mockgen -source=metric.go -destination=mocks/metric.go -package=mocks
type MetricRepository interface {
	Aggregate(ctx context.Context, query domain.AggregateQuery) (float64, error)
}

type metricRepository struct {
	conn postgres.Conn
}

func NewMetricRepository(conn postgres.Conn) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// Aggregate executa COUNT ou SUM sobre a tabela, sempre filtrando por local_date
func (r *metricRepository) Aggregate(ctx context.Context, q domain.AggregateQuery) (float64, error) {
	if err := checkBucketTable(q.Table); err != nil {
		return 0, err
	}

	selectExpr := "COUNT(*)"
	if q.Function == domain.AggregateSum {
		if _, ok := summableColumns[q.Column]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, q.Column)
		}
		selectExpr = fmt.Sprintf("COALESCE(SUM(%s), 0)", q.Column)
	}

	queryBuilder := squirrel.
		Select(selectExpr).
		From(string(q.Table)).
		Where(squirrel.Eq{"account_id": q.AccountID}).
		Where("local_date BETWEEN ? AND ?", q.Range.Start.Format(time.DateOnly), q.Range.End.Format(time.DateOnly)).
		PlaceholderFormat(squirrel.Dollar)

	if len(q.Outcomes) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"outcome": q.Outcomes})
	}

	if q.UserColumn != "" {
		if _, ok := userColumns[q.UserColumn]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, q.UserColumn)
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{q.UserColumn: q.UserID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("erro ao agregar %s: %w", q.Table, err)
	}

	return value, nil
}
