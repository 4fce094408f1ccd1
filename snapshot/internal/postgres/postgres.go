// Package postgres implements the snapshot storage driver for PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cccteam/rolegate/snapshot/internal/dbtype"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/snapshot/internal/postgres"

// SnapshotDriver represents the snapshot storage implementation for PostgreSQL.
type SnapshotDriver struct {
	conn Queryer
}

// NewSnapshotDriver creates a new SnapshotDriver
func NewSnapshotDriver(conn Queryer) *SnapshotDriver {
	return &SnapshotDriver{
		conn: conn,
	}
}

// Entries returns the stored entries of the client for the given keys
func (d *SnapshotDriver) Entries(ctx context.Context, clientID uuid.UUID, keys ...string) (map[string]string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.Entries()")
	defer span.End()

	query := `
		SELECT
			"ClientId", "Key", "Value", "UpdatedAt"
		FROM "Snapshots"
		WHERE "ClientId" = $1 AND "Key" = ANY($2)
	`

	var rows []*dbtype.Entry
	if err := pgxscan.Select(ctx, d.conn, &rows, query, clientID.String(), keys); err != nil {
		return nil, errors.Wrapf(err, "failed to scan snapshot rows for client %s", clientID)
	}

	entries := make(map[string]string, len(rows))
	for _, r := range rows {
		entries[r.Key] = r.Value
	}

	return entries, nil
}

// UpsertEntries inserts or replaces all entries with one statement
func (d *SnapshotDriver) UpsertEntries(ctx context.Context, clientID uuid.UUID, entries map[string]string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.UpsertEntries()")
	defer span.End()

	query, args := upsertQuery(clientID, time.Now(), entries)
	if _, err := d.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "failed to upsert into table Snapshots for client %s", clientID)
	}

	return nil
}

// DeleteEntries deletes the client's entries for the given keys
func (d *SnapshotDriver) DeleteEntries(ctx context.Context, clientID uuid.UUID, keys ...string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.DeleteEntries()")
	defer span.End()

	query := `
		DELETE FROM "Snapshots"
		WHERE "ClientId" = $1 AND "Key" = ANY($2)`

	if _, err := d.conn.Exec(ctx, query, clientID.String(), keys); err != nil {
		return errors.Wrapf(err, "failed to delete from table Snapshots for client %s", clientID)
	}

	return nil
}

// upsertQuery builds a multi-row upsert. Keys are sorted so the statement is stable.
func upsertQuery(clientID uuid.UUID, updatedAt time.Time, entries map[string]string) (string, []any) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := []any{clientID.String(), updatedAt}
	rows := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, k, entries[k])
		rows = append(rows, fmt.Sprintf("($1, $%d, $%d, $2)", len(args)-1, len(args)))
	}

	query := `
		INSERT INTO "Snapshots"
			("ClientId", "Key", "Value", "UpdatedAt")
		VALUES
			` + strings.Join(rows, ",\n\t\t\t") + `
		ON CONFLICT ("ClientId", "Key") DO UPDATE
		SET "Value" = EXCLUDED."Value", "UpdatedAt" = EXCLUDED."UpdatedAt"`

	return query, args
}
