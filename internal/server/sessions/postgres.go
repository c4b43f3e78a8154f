package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rbarroso/auth-backend/internal/common"
	"github.com/rbarroso/auth-backend/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, credentialID int64, token string, sourceIP string, validity time.Duration) error {
	query := `
		INSERT INTO sessions (credential_id, token, source_ip, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, query, credentialID, token, sourceIP, time.Now().Add(validity))
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	return nil
}
