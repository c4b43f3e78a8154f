// Package authctl implements the maintenance commands that operate directly
// on the credential store: user provisioning, password resets, and schema
// inspection. These are operator tools, not part of the login flow.
package authctl

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rbarroso/auth-backend/internal/server/auth"
	"github.com/rbarroso/auth-backend/internal/server/credentials"
	"github.com/rbarroso/auth-backend/internal/server/storage"
)

type App struct {
	store storage.RepositoryManager
	out   io.Writer
}

func NewApp(store storage.RepositoryManager, out io.Writer) *App {
	return &App{store: store, out: out}
}

// CreateUser provisions a credential with a bcrypt-hashed password.
func (a *App) CreateUser(ctx context.Context, email, password string) error {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	cred, err := a.store.Credentials().Create(ctx, &credentials.Credential{
		Email:    email,
		Password: digest,
	})
	if err != nil {
		return fmt.Errorf("error creating credential: %w", err)
	}

	fmt.Fprintf(a.out, "created credential id=%d email=%s\n", cred.ID, cred.Email)
	return nil
}

// ResetPassword replaces a credential's stored password with a fresh bcrypt
// digest. This also migrates legacy cleartext credentials to the hashed
// format.
func (a *App) ResetPassword(ctx context.Context, email, password string) error {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := a.store.Credentials().UpdatePassword(ctx, email, digest); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	fmt.Fprintf(a.out, "password updated for %s\n", email)
	return nil
}

// InspectSchema prints the columns of every table in the public schema, for
// diagnosing schema drift between environments.
func (a *App) InspectSchema(ctx context.Context) error {
	query := `
		SELECT table_name, column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position
	`
	rows, err := a.store.Conn().QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error querying schema: %w", err)
	}
	defer rows.Close()

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tCOLUMN\tTYPE\tNULLABLE")

	for rows.Next() {
		var table, column, dataType, nullable string
		if err := rows.Scan(&table, &column, &dataType, &nullable); err != nil {
			return fmt.Errorf("error scanning schema row: %w", err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", table, column, dataType, nullable)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading schema rows: %w", err)
	}

	return w.Flush()
}
