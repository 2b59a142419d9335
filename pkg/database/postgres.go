package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"seat-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIface is the subset of *pgxpool.Pool the repositories depend on.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

var _ PgxIface = (*pgxpool.Pool)(nil)

const (
	defaultPort    = 5432
	minIdleConns   = 2
	connectTimeout = 5 * time.Second
	pingTimeout    = 3 * time.Second
)

// poolConfig fills the connection fields directly so credentials never go
// through DSN quoting.
func poolConfig(cfg utils.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig("sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	port := uint64(defaultPort)
	if cfg.Port != "" {
		port, err = strconv.ParseUint(cfg.Port, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("database port %q: %w", cfg.Port, err)
		}
	}
	if cfg.MaxConns < 1 {
		return nil, fmt.Errorf("database max conns must be positive, got %d", cfg.MaxConns)
	}

	conn := &pc.ConnConfig.Config
	conn.Host = cfg.Host
	conn.Port = uint16(port)
	conn.Database = cfg.Name
	conn.User = cfg.User
	conn.Password = cfg.Password
	conn.ConnectTimeout = connectTimeout
	conn.Fallbacks = nil

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = min(minIdleConns, cfg.MaxConns)
	pc.MaxConnLifetime = 30 * time.Minute
	pc.MaxConnIdleTime = 5 * time.Minute
	pc.HealthCheckPeriod = time.Minute
	return pc, nil
}

// Connect opens the seat store pool and pings it once.
func Connect(ctx context.Context, cfg utils.DatabaseConfig) (PgxIface, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s:%d/%s: %w", pc.ConnConfig.Host, pc.ConnConfig.Port, pc.ConnConfig.Database, err)
	}
	return pool, nil
}
