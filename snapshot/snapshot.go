package snapshot

import (
	"context"

	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/snapshot"

// dbTable adapts a database driver to the Table interface
type dbTable struct {
	db db
}

// Get returns the stored values for keys
func (t *dbTable) Get(ctx context.Context, clientID uuid.UUID, keys ...Key) (Values, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "snapshot.Get()")
	defer span.End()

	if len(keys) == 0 {
		return Values{}, nil
	}

	entries, err := t.db.Entries(ctx, clientID, toStrings(keys)...)
	if err != nil {
		return nil, errors.Wrap(err, "db.Entries()")
	}

	return fromEntries(entries), nil
}

// Put stores values for the client in a single write
func (t *dbTable) Put(ctx context.Context, clientID uuid.UUID, values Values) error {
	ctx, span := otel.Tracer(name).Start(ctx, "snapshot.Put()")
	defer span.End()

	if len(values) == 0 {
		return nil
	}

	if err := t.db.UpsertEntries(ctx, clientID, toEntries(values)); err != nil {
		return errors.Wrap(err, "db.UpsertEntries()")
	}

	return nil
}

// Remove deletes keys for the client
func (t *dbTable) Remove(ctx context.Context, clientID uuid.UUID, keys ...Key) error {
	ctx, span := otel.Tracer(name).Start(ctx, "snapshot.Remove()")
	defer span.End()

	if len(keys) == 0 {
		return nil
	}

	if err := t.db.DeleteEntries(ctx, clientID, toStrings(keys)...); err != nil {
		return errors.Wrap(err, "db.DeleteEntries()")
	}

	return nil
}
