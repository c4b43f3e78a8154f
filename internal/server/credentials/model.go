package credentials

import "time"

// Credential is a stored identity record. The password field holds either a
// bcrypt digest or, transitionally, a legacy cleartext value; callers must
// not assume one or the other. Credentials are read-only from the login
// flow's perspective; only the provisioning CLI creates or updates them.
type Credential struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
