// Package dbtype contains types used by the database driver packages for snapshot storage.
package dbtype

import "time"

// Entry defines the structure of one snapshot key in the database.
type Entry struct {
	ClientID  string    `spanner:"ClientId"  db:"ClientId"`
	Key       string    `spanner:"Key"       db:"Key"`
	Value     string    `spanner:"Value"     db:"Value"`
	UpdatedAt time.Time `spanner:"UpdatedAt" db:"UpdatedAt"`
}
