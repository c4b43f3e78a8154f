// Package accessrecords provides an append-only audit log of login
// attempts. Every attempt writes exactly one record, successful or not;
// records are never updated or deleted.
package accessrecords

import "context"

type Repository interface {
	// Create appends one audit record. credentialID is nil when the
	// attempted email did not resolve to any credential.
	Create(ctx context.Context, credentialID *int64, eventType string, sourceIP string, success bool, message string) error
}
