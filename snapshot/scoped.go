package snapshot

import (
	"context"

	"github.com/gofrs/uuid"
)

// Scoped returns the KV of one client in table.
func Scoped(table Table, clientID uuid.UUID) KV {
	return &scoped{table: table, clientID: clientID}
}

type scoped struct {
	table    Table
	clientID uuid.UUID
}

func (s *scoped) Get(ctx context.Context, keys ...Key) (Values, error) {
	return s.table.Get(ctx, s.clientID, keys...)
}

func (s *scoped) Put(ctx context.Context, values Values) error {
	return s.table.Put(ctx, s.clientID, values)
}

func (s *scoped) Remove(ctx context.Context, keys ...Key) error {
	return s.table.Remove(ctx, s.clientID, keys...)
}
