package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/lib/pq"
)

// Storage owns the process-wide connection pool. The pool is created
// lazily on first use and reused for the life of the process; the
// driver handles connection-level concurrency.
type Storage struct {
	dsn string

	once sync.Once
	pool *pgxpool.Pool
	err  error
}

func New(dsn string) *Storage {
	return &Storage{dsn: dsn}
}

// Pool returns the shared pool, connecting on first call.
func (s *Storage) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	const op = "storage.postgresql.Pool"

	s.once.Do(func() {
		pool, err := pgxpool.Connect(ctx, s.dsn)
		if err != nil {
			s.err = fmt.Errorf("%s: %w", op, err)
			return
		}
		s.pool = pool
	})

	return s.pool, s.err
}

func (s *Storage) Stop() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate applies all pending migrations from migrationsPath. It runs
// over a separate database/sql connection because the migrate postgres
// driver expects one.
func (s *Storage) Migrate(migrationsPath string) error {
	const op = "storage.postgresql.Migrate"

	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
