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
	contactsTable = "contacts"
)

//go:generate mockgen -source=contact.go -destination=mocks/contact.go -package=mocks
type ContactRepository interface {
	GetByID(ctx context.Context, accountID string, contactID int64) (*domain.Contact, error)
	RecordAttributionTouch(ctx context.Context, contactID int64, snapshot *domain.AttributionSnapshot) error
	DistinctSnapshotValues(ctx context.Context, accountID string, field string, limit int) ([]string, error)
}

type contactRepository struct {
	conn postgres.Conn
}

func NewContactRepository(conn postgres.Conn) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (r *contactRepository) GetByID(ctx context.Context, accountID string, contactID int64) (*domain.Contact, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"account_id",
			"COALESCE(external_id, '')",
			"COALESCE(name, '')",
			"COALESCE(email, '')",
			"COALESCE(phone, '')",
			"attribution_source",
			"last_attribution_source",
			"crm_created_at",
			"local_date",
		).
		From(contactsTable).
		Where(squirrel.Eq{"account_id": accountID, "id": contactID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	contact := &domain.Contact{}
	var firstTouch, lastTouch []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&contact.ID,
		&contact.AccountID,
		&contact.ExternalID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&firstTouch,
		&lastTouch,
		&contact.CRMCreatedAt,
		&contact.LocalDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if contact.AttributionSource, err = decodeSnapshot(firstTouch); err != nil {
		return nil, fmt.Errorf("erro ao decodificar attribution_source: %w", err)
	}
	if contact.LastAttributionSource, err = decodeSnapshot(lastTouch); err != nil {
		return nil, fmt.Errorf("erro ao decodificar last_attribution_source: %w", err)
	}

	return contact, nil
}

func decodeSnapshot(raw []byte) (*domain.AttributionSnapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	snapshot := &domain.AttributionSnapshot{}
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// RecordAttributionTouch grava o último toque e preenche o primeiro toque se ainda estiver vazio
func (r *contactRepository) RecordAttributionTouch(ctx context.Context, contactID int64, snapshot *domain.AttributionSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot: %w", err)
	}

	query, args, err := squirrel.
		Update(contactsTable).
		Set("attribution_source", squirrel.Expr("COALESCE(attribution_source, ?::jsonb)", string(payload))).
		Set("last_attribution_source", squirrel.Expr("?::jsonb", string(payload))).
		Where(squirrel.Eq{"id": contactID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// DistinctSnapshotValues retorna os valores distintos de um campo nos dois snapshots dos contatos
func (r *contactRepository) DistinctSnapshotValues(ctx context.Context, accountID string, field string, limit int) ([]string, error) {
	if err := checkFilterField(field); err != nil {
		return nil, err
	}

	snapshots := squirrel.
		Select(fmt.Sprintf("attribution_source->>'%s' AS value", field)).
		From(contactsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Suffix(fmt.Sprintf("UNION SELECT last_attribution_source->>'%s' AS value FROM %s WHERE account_id = ?", field, contactsTable), accountID)

	query, args, err := squirrel.
		Select("DISTINCT value").
		FromSelect(snapshots, "snapshot_values").
		Where("value IS NOT NULL AND value <> ''").
		OrderBy("value ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryStrings(ctx, r.conn, query, args)
}

func queryStrings(ctx context.Context, conn postgres.Queryer, query string, args []any) ([]string, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao deserializar valor: %w", err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return values, nil
}
