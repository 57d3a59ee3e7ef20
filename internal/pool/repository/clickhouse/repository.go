package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, rows int, err error, started time.Time)
	}
	Batch interface {
		Append(v ...any) error
		Send() error
	}
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
)

// nativeConn narrows a clickhouse-go connection to Conn.
type nativeConn struct {
	conn clickhouse.Conn
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (c nativeConn) Close() error {
	return c.conn.Close()
}

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: nativeConn{conn: conn}, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}
