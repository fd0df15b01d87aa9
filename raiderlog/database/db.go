package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"log/slog"

	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DBConfig selects and configures the backing store. The driver is chosen
// once at startup and injected everywhere; nothing inspects the environment
// after this point.
type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	Path     string
	SSLMode  string
}

// DB wraps a bun.DB over either a PostgreSQL or SQLite backend. The pgx pool
// is only populated for the postgres driver and exists for health probes.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		return newPostgres(ctx, cfg)
	case DriverSQLite:
		return newSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Driver)
	}
}

func newPostgres(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Probe reachability with retries before handing the DSN to the pool,
	// so a cold database container gets a grace period.
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	var conn net.Conn
	var err error
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(buildConnString(cfg))))
	bunDB := bun.NewDB(sqldb, pgdialect.New())
	bunDB.AddQueryHook(queryHook{})

	return &DB{pool: pool, bunDB: bunDB}, nil
}

func newSQLite(ctx context.Context, cfg DBConfig) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = "raiderlog.db"
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent transactions.
	sqldb.SetMaxOpenConns(1)

	if _, err := sqldb.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	bunDB.AddQueryHook(queryHook{})
	return &DB{bunDB: bunDB}, nil
}

func buildConnString(cfg DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode,
	)
}

// BunDB returns the bun.DB instance shared by every repository.
func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Ping verifies connectivity for health checks.
func (db *DB) Ping(ctx context.Context) error {
	if db.pool != nil {
		return db.pool.Ping(ctx)
	}
	return db.bunDB.PingContext(ctx)
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		if err := db.bunDB.Close(); err != nil {
			slog.Error("Failed to close database", slog.Any("error", err))
		}
	}
}
