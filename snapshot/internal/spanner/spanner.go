// Package spanner provides the snapshot storage driver for Spanner.
package spanner

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/cccteam/rolegate/snapshot/internal/dbtype"
	"github.com/cccteam/spxscan"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc/codes"
)

const name = "github.com/cccteam/rolegate/snapshot/internal/spanner"

// SnapshotDriver represents the snapshot storage implementation for Spanner.
type SnapshotDriver struct {
	spanner   *spanner.Client
	tableName string
}

// NewSnapshotDriver creates a new SnapshotDriver
func NewSnapshotDriver(client *spanner.Client) *SnapshotDriver {
	return &SnapshotDriver{
		spanner:   client,
		tableName: "Snapshots",
	}
}

// SetTableName sets the name of the snapshot table.
func (s *SnapshotDriver) SetTableName(name string) {
	s.tableName = name
}

// Entries returns the stored entries of the client for the given keys
func (s *SnapshotDriver) Entries(ctx context.Context, clientID uuid.UUID, keys ...string) (map[string]string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.Entries()")
	defer span.End()

	stmt := spanner.NewStatement(fmt.Sprintf(`
		SELECT
			ClientId,
			Key,
			Value,
			UpdatedAt
		FROM %s
		WHERE ClientId = @clientId AND Key IN UNNEST(@keys)
	`, s.tableName))
	stmt.Params["clientId"] = clientID.String()
	stmt.Params["keys"] = keys

	var rows []*dbtype.Entry
	if err := spxscan.Select(ctx, s.spanner.Single(), &rows, stmt); err != nil {
		return nil, errors.Wrapf(err, "failed to scan snapshot rows for client %q", clientID)
	}

	entries := make(map[string]string, len(rows))
	for _, r := range rows {
		entries[r.Key] = r.Value
	}

	return entries, nil
}

// UpsertEntries inserts or replaces all entries in a single Apply
func (s *SnapshotDriver) UpsertEntries(ctx context.Context, clientID uuid.UUID, entries map[string]string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.UpsertEntries()")
	defer span.End()

	now := time.Now()
	mutations := make([]*spanner.Mutation, 0, len(entries))
	for k, v := range entries {
		m, err := spanner.InsertOrUpdateStruct(s.tableName, &dbtype.Entry{
			ClientID:  clientID.String(),
			Key:       k,
			Value:     v,
			UpdatedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "spanner.InsertOrUpdateStruct()")
		}
		mutations = append(mutations, m)
	}

	if _, err := s.spanner.Apply(ctx, mutations); err != nil {
		return errors.Wrap(err, "spanner.Client.Apply()")
	}

	return nil
}

// DeleteEntries deletes the client's entries for the given keys
func (s *SnapshotDriver) DeleteEntries(ctx context.Context, clientID uuid.UUID, keys ...string) error {
	ctx, span := otel.Tracer(name).Start(ctx, "SnapshotDriver.DeleteEntries()")
	defer span.End()

	mutations := make([]*spanner.Mutation, 0, len(keys))
	for _, k := range keys {
		mutations = append(mutations, spanner.Delete(s.tableName, spanner.Key{clientID.String(), k}))
	}

	if _, err := s.spanner.Apply(ctx, mutations); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil
		}

		return errors.Wrap(err, "spanner.Client.Apply()")
	}

	return nil
}
