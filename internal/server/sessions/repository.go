// Package sessions provides a PostgreSQL-backed repository for session
// records written after a successful login. Sessions are a write-only audit
// artifact: nothing in the login flow reads them back.
package sessions

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a session row for credentialID with an expiry time of
	// now+validity.
	Create(ctx context.Context, credentialID int64, token string, sourceIP string, validity time.Duration) error
}
