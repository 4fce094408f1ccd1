package snapshot

import (
	cloudspanner "cloud.google.com/go/spanner"
	"github.com/cccteam/rolegate/snapshot/internal/spanner"
)

// Spanner is the snapshot Table stored in Cloud Spanner.
type Spanner struct {
	dbTable
	driver *spanner.SnapshotDriver
}

// NewSpanner creates a new Spanner snapshot table.
func NewSpanner(client *cloudspanner.Client) *Spanner {
	driver := spanner.NewSnapshotDriver(client)

	return &Spanner{
		dbTable: dbTable{db: driver},
		driver:  driver,
	}
}

// SetTableName sets the name of the snapshot table. (default: Snapshots)
func (s *Spanner) SetTableName(name string) {
	s.driver.SetTableName(name)
}
