package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB, *sql.Tx e *Connection
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn é o que os repositórios recebem: consultas simples e transações
type Conn interface {
	Queryer
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
