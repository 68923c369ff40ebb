package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates the process-wide PostgreSQL connection pool and
// verifies connectivity with a ping. The pool is created once at
// startup and closed at shutdown.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// DB is the health-probe view of the database used by handlers.
type DB interface {
	Ping(ctx context.Context) error
	ServerTime(ctx context.Context) (time.Time, error)
}

// PgDB adapts a pgxpool.Pool to the DB interface.
type PgDB struct {
	pool *pgxpool.Pool
}

func NewPgDB(pool *pgxpool.Pool) *PgDB {
	return &PgDB{pool: pool}
}

var _ DB = (*PgDB)(nil)

func (d *PgDB) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

// ServerTime reads the database clock, proving a full query round trip
// rather than just a live socket.
func (d *PgDB) ServerTime(ctx context.Context) (time.Time, error) {
	var t time.Time
	if err := d.pool.QueryRow(ctx, "SELECT NOW()").Scan(&t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}
