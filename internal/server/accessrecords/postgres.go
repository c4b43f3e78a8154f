package accessrecords

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rbarroso/auth-backend/internal/common"
	"github.com/rbarroso/auth-backend/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, credentialID *int64, eventType string, sourceIP string, success bool, message string) error {
	query := `
		INSERT INTO access_records (credential_id, event_type, source_ip, success, message)
		VALUES ($1, $2, $3, $4, $5)
	`

	var id sql.NullInt64
	if credentialID != nil {
		id = sql.NullInt64{Int64: *credentialID, Valid: true}
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, query, id, eventType, sourceIP, success, message)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	return nil
}
