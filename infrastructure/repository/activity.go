package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=activity.go -destination=mocks/activity.go -package=mocks
type ActivityRepository interface {
	ListUnresolved(ctx context.Context, kind domain.ActivityKind, role domain.Role, accountID string, afterID int64, limit int) ([]domain.UnresolvedAssignee, error)
	FillUserID(ctx context.Context, kind domain.ActivityKind, role domain.Role, recordID int64, userID string) (bool, error)
	DistinctAssignees(ctx context.Context, kind domain.ActivityKind, role domain.Role, accountID string) ([]domain.AssigneeObservation, error)
	LastMatchedAt(ctx context.Context, role domain.Role, accountID string, name string, userIDs []string) (map[string]time.Time, error)
	RoleCounts(ctx context.Context, accountID string) (map[string]domain.RoleCount, error)
}

type activityRepository struct {
	conn postgres.Conn
}

func NewActivityRepository(conn postgres.Conn) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// normalizedName espelha em SQL a normalização de nomes feita pelo resolvedor
func normalizedName(column string) string {
	return fmt.Sprintf(`LOWER(REGEXP_REPLACE(TRIM(%s), '\s+', ' ', 'g'))`, column)
}

func columnsFor(kind domain.ActivityKind, role domain.Role) (string, domain.AssigneeColumns, error) {
	table := kind.Table()
	if table == "" {
		return "", domain.AssigneeColumns{}, fmt.Errorf("%w: %s", ErrUnknownTable, kind)
	}

	columns, err := domain.ColumnsFor(role)
	if err != nil {
		return "", domain.AssigneeColumns{}, err
	}

	for _, assignee := range kind.Assignees() {
		if assignee == role {
			return string(table), columns, nil
		}
	}

	return "", domain.AssigneeColumns{}, fmt.Errorf("%w: %s has no %s", ErrUnknownColumn, table, role)
}

// ListUnresolved pagina por id (keyset) as linhas da conta com o *_user_id vazio
func (r *activityRepository) ListUnresolved(
	ctx context.Context,
	kind domain.ActivityKind,
	role domain.Role,
	accountID string,
	afterID int64,
	limit int,
) ([]domain.UnresolvedAssignee, error) {
	table, columns, err := columnsFor(kind, role)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("id", fmt.Sprintf("COALESCE(%s, '')", columns.Name), columns.CRMUserID).
		From(table).
		Where(squirrel.Eq{"account_id": accountID, columns.UserID: nil}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
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

	result := make([]domain.UnresolvedAssignee, 0, limit)
	for rows.Next() {
		var item domain.UnresolvedAssignee
		if err := rows.Scan(&item.RecordID, &item.Name, &item.CRMUserID); err != nil {
			return nil, fmt.Errorf("erro ao deserializar linha de %s: %w", table, err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return result, nil
}

// FillUserID grava o id apenas se a coluna ainda estiver vazia; false indica que outra escrita chegou antes
func (r *activityRepository) FillUserID(ctx context.Context, kind domain.ActivityKind, role domain.Role, recordID int64, userID string) (bool, error) {
	table, columns, err := columnsFor(kind, role)
	if err != nil {
		return false, err
	}

	query, args, err := squirrel.
		Update(table).
		Set(columns.UserID, userID).
		Where(squirrel.Eq{"id": recordID, columns.UserID: nil}).
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

	return rowsAffected > 0, nil
}

func (r *activityRepository) DistinctAssignees(ctx context.Context, kind domain.ActivityKind, role domain.Role, accountID string) ([]domain.AssigneeObservation, error) {
	table, columns, err := columnsFor(kind, role)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(
			fmt.Sprintf("TRIM(%s)", columns.Name),
			columns.UserID,
			columns.CRMUserID,
			"COUNT(*)",
			"MAX(occurred_at)",
		).
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(fmt.Sprintf("COALESCE(TRIM(%s), '') <> ''", columns.Name)).
		GroupBy(fmt.Sprintf("TRIM(%s)", columns.Name), columns.UserID, columns.CRMUserID).
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

	observations := make([]domain.AssigneeObservation, 0)
	for rows.Next() {
		var obs domain.AssigneeObservation
		if err := rows.Scan(&obs.Name, &obs.UserID, &obs.CRMUserID, &obs.Count, &obs.LastSeenAt); err != nil {
			return nil, fmt.Errorf("erro ao deserializar responsável: %w", err)
		}
		observations = append(observations, obs)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return observations, nil
}

// LastMatchedAt retorna, por usuário, o registro mais recente já atribuído a ele sob o nome informado
func (r *activityRepository) LastMatchedAt(
	ctx context.Context,
	role domain.Role,
	accountID string,
	name string,
	userIDs []string,
) (map[string]time.Time, error) {
	latest := make(map[string]time.Time, len(userIDs))
	if len(userIDs) == 0 {
		return latest, nil
	}

	for _, kind := range domain.ActivityKinds {
		table, columns, err := columnsFor(kind, role)
		if err != nil {
			continue
		}

		query, args, err := squirrel.
			Select(columns.UserID, "MAX(occurred_at)").
			From(table).
			Where(squirrel.Eq{"account_id": accountID, columns.UserID: userIDs}).
			Where(normalizedName(columns.Name)+" = ?", name).
			GroupBy(columns.UserID).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := r.collectLatest(ctx, query, args, latest); err != nil {
			return nil, err
		}
	}

	return latest, nil
}

func (r *activityRepository) collectLatest(ctx context.Context, query string, args []any, latest map[string]time.Time) error {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var at time.Time
		if err := rows.Scan(&userID, &at); err != nil {
			return fmt.Errorf("erro ao deserializar última ocorrência: %w", err)
		}
		if current, ok := latest[userID]; !ok || at.After(current) {
			latest[userID] = at
		}
	}

	return rows.Err()
}

// RoleCounts soma, por usuário, as linhas em que ele aparece como setter e como sales rep
func (r *activityRepository) RoleCounts(ctx context.Context, accountID string) (map[string]domain.RoleCount, error) {
	counts := make(map[string]domain.RoleCount)

	for _, kind := range domain.ActivityKinds {
		for _, role := range kind.Assignees() {
			table, columns, err := columnsFor(kind, role)
			if err != nil {
				return nil, err
			}

			query, args, err := squirrel.
				Select(columns.UserID, "COUNT(*)").
				From(table).
				Where(squirrel.Eq{"account_id": accountID}).
				Where(squirrel.NotEq{columns.UserID: nil}).
				GroupBy(columns.UserID).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return nil, fmt.Errorf("erro ao construir a query: %w", err)
			}

			if err := r.collectCounts(ctx, query, args, role, counts); err != nil {
				return nil, err
			}
		}
	}

	return counts, nil
}

func (r *activityRepository) collectCounts(ctx context.Context, query string, args []any, role domain.Role, counts map[string]domain.RoleCount) error {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var total int64
		if err := rows.Scan(&userID, &total); err != nil {
			return fmt.Errorf("erro ao deserializar contagem: %w", err)
		}

		count := counts[userID]
		if role == domain.RoleSalesRep {
			count.SalesRep += total
		} else {
			count.Setter += total
		}
		counts[userID] = count
	}

	return rows.Err()
}
