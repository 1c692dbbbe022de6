package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotConfigured = errors.New("database not configured")

// Database is the query surface shared by *pgx.Conn, pgx.Tx and pgxmock.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Conn interface {
	Database
	Close(ctx context.Context) error
}

// Connector hands out a dedicated connection. Callers own it and must close it.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

type connector struct {
	dsn     string
	timeout time.Duration
}

func NewConnector(dsn string, timeout time.Duration) Connector {
	return &connector{dsn: dsn, timeout: timeout}
}

func (c *connector) Connect(ctx context.Context) (Conn, error) {
	if c.dsn == "" {
		return nil, ErrNotConfigured
	}
	cfg, err := pgx.ParseConfig(c.dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}
	if c.timeout > 0 {
		cfg.ConnectTimeout = c.timeout
	}
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type txKey struct{}

type txAware struct {
	db Database
}

// New wraps db so that calls made with a context from TXManager.Begin run on
// that transaction.
func New(db Database) Database {
	return &txAware{db: db}
}

func (d *txAware) pick(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return d.db
}

func (d *txAware) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return d.pick(ctx).Exec(ctx, sql, arguments...)
}

func (d *txAware) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.pick(ctx).Query(ctx, sql, args...)
}

func (d *txAware) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.pick(ctx).QueryRow(ctx, sql, args...)
}

func (d *txAware) Begin(ctx context.Context) (pgx.Tx, error) {
	return d.pick(ctx).Begin(ctx)
}
