// Package credentials provides the PostgreSQL-backed credential store
// adapter used by the login flow and the provisioning CLI.
package credentials

import "context"

type Repository interface {
	// FindByEmail returns the credential for email, or common.ErrorNotFound.
	// The comparison is byte-exact: emails differing only in case are
	// distinct credentials.
	FindByEmail(ctx context.Context, email string) (*Credential, error)

	// Create inserts a new credential and returns it with the assigned id.
	Create(ctx context.Context, cred *Credential) (*Credential, error)

	// UpdatePassword replaces the stored password representation for email.
	UpdatePassword(ctx context.Context, email string, password string) error

	// Count returns the number of credential rows. Used by the DB health check.
	Count(ctx context.Context) (int64, error)
}
