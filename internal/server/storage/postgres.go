// Package storage wires the PostgreSQL repositories together and owns the
// database handle and schema migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rbarroso/auth-backend/internal/server/accessrecords"
	"github.com/rbarroso/auth-backend/internal/server/credentials"
	"github.com/rbarroso/auth-backend/internal/server/migrations"
	"github.com/rbarroso/auth-backend/internal/server/sessions"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Credentials() credentials.Repository
	Sessions() sessions.Repository
	AccessRecords() accessrecords.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}

type PostgresRepositoryManager struct {
	db            *sql.DB
	credentials   credentials.Repository
	sessions      sessions.Repository
	accessRecords accessrecords.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Credentials() credentials.Repository {
	return m.credentials
}

func (m *PostgresRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *PostgresRepositoryManager) AccessRecords() accessrecords.Repository {
	return m.accessRecords
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		credentials:   credentials.NewPostgresRepository(db),
		sessions:      sessions.NewPostgresRepository(db),
		accessRecords: accessrecords.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
