package credentials

import (
	"context"
	"database/sql"
	"errors"
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

// FindByEmail selects only the columns the backing schema is guaranteed to
// have: id, email, password, created_at.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	query := `
		SELECT id, email, password, created_at
		FROM credentials
		WHERE email = $1
	`
	cred := &Credential{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&cred.ID, &cred.Email, &cred.Password, &cred.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStore, err)
	}

	return cred, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cred *Credential) (*Credential, error) {
	query := `
		INSERT INTO credentials (email, password)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, query, cred.Email, cred.Password).
			Scan(&cred.ID, &cred.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStore, err)
	}

	return cred, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, email string, password string) error {
	query := `
		UPDATE credentials
		SET password = $2
		WHERE email = $1
	`
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query, email, password)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return common.ErrorNotFound
		}
		return nil
	})
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM credentials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	return n, nil
}
