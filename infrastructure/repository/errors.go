package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNoRowsUpdated = errors.New("no rows updated")
)

// wrapExecError adiciona o código do postgres quando disponível
func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

func checkBucketTable(table domain.BucketTable) error {
	for _, known := range domain.BucketTables {
		if table == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTable, table)
}

func checkFilterField(field string) error {
	for _, known := range domain.FilterFields {
		if field == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
}
