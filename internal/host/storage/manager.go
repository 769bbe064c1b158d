// Package storage opens the user database and wires the matching
// repository. The driver is picked from the DSN: "file:" DSNs select the
// embedded SQLite database used by the desktop build, anything else is
// treated as a Postgres DSN.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/avolkovs/vitrina/internal/host/storage/migrations"
	"github.com/avolkovs/vitrina/internal/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Manager struct {
	db    *sql.DB
	users users.Repository
}

func (m *Manager) Conn() *sql.DB {
	return m.db
}

func (m *Manager) Users() users.Repository {
	return m.users
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Open connects to the database named by dsn, runs pending migrations,
// and returns a Manager with the repository for that dialect.
func Open(ctx context.Context, dsn string) (*Manager, error) {
	driver, dialect, dir := driverFor(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	m := &Manager{db: db}
	switch driver {
	case "sqlite":
		m.users = users.NewSQLiteRepository(db)
	default:
		m.users = users.NewPostgresRepository(db)
	}

	return m, nil
}

func driverFor(dsn string) (driver, dialect, dir string) {
	if strings.HasPrefix(dsn, "file:") {
		return "sqlite", "sqlite3", "sqlite"
	}
	return "pgx", "postgres", "postgres"
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}
