package snapshot

import (
	"github.com/cccteam/rolegate/snapshot/internal/postgres"
)

// Postgres is the snapshot Table stored in PostgreSQL.
type Postgres struct {
	dbTable
}

// NewPostgres creates a new Postgres snapshot table.
func NewPostgres(pg postgres.Queryer) *Postgres {
	return &Postgres{
		dbTable: dbTable{
			db: postgres.NewSnapshotDriver(pg),
		},
	}
}
