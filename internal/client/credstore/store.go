// Package credstore persists the client's session credentials: the access
// token and the serialized user profile. It is a plain string key/value
// capability so the session manager never depends on a concrete medium;
// tests and ephemeral mode use the in-memory implementation, the CLI uses
// the SQLite-backed one.
package credstore

import "context"

// Well-known keys.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Store is the credential persistence capability. Get returns "" with a nil
// error when the key is absent. Implementations must treat failures as
// non-fatal from the caller's perspective; callers log and carry on with
// in-memory state as the source of truth.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
