// Package snapshot implements the local key-value snapshot the session store
// persists through. There are single-client backends (File, the HTTP cookie
// snapshot) and multi-client tables keyed by client ID (Memory, Postgres, Spanner).
package snapshot

import (
	"context"

	"github.com/cccteam/rolegate/snapshot/internal/postgres"
	"github.com/cccteam/rolegate/snapshot/internal/spanner"
	"github.com/gofrs/uuid"
)

// KV is the snapshot of a single client.
type KV interface {
	// Get returns the stored values for keys. Absent keys are omitted from the result.
	Get(ctx context.Context, keys ...Key) (Values, error)
	// Put stores every value in a single write. Either all values are stored or none are.
	Put(ctx context.Context, values Values) error
	// Remove deletes keys. Removing an absent key is not an error.
	Remove(ctx context.Context, keys ...Key) error
}

var (
	_ Table = (*Memory)(nil)
	_ Table = (*Postgres)(nil)
	_ Table = (*Spanner)(nil)
)

// Table holds the snapshots of many clients, keyed by client ID.
type Table interface {
	Get(ctx context.Context, clientID uuid.UUID, keys ...Key) (Values, error)
	Put(ctx context.Context, clientID uuid.UUID, values Values) error
	Remove(ctx context.Context, clientID uuid.UUID, keys ...Key) error
}

var (
	_ db = (*spanner.SnapshotDriver)(nil)
	_ db = (*postgres.SnapshotDriver)(nil)
)

// db defines an interface for database operations related to snapshot storage.
type db interface {
	// Entries returns the stored entries of the client for the given keys.
	Entries(ctx context.Context, clientID uuid.UUID, keys ...string) (map[string]string, error)
	// UpsertEntries inserts or replaces all entries in a single write.
	UpsertEntries(ctx context.Context, clientID uuid.UUID, entries map[string]string) error
	// DeleteEntries deletes the client's entries for the given keys.
	DeleteEntries(ctx context.Context, clientID uuid.UUID, keys ...string) error
}
