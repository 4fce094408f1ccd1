// Package mock is used to generate mock files for testing.
package mock

//go:generate mockgen -source ../snapshot/snapshot_iface.go -destination mock_snapshot/mock_snapshot_iface.go -exclude_interfaces db
//go:generate mockgen -package snapshot -source ../snapshot/snapshot_iface.go -destination ../snapshot/mock_db_test.go -exclude_interfaces KV,Table
//go:generate mockgen -source ../login/login_iface.go -destination mock_login/mock_login_iface.go
//go:generate mockgen -source ../internal/cookie/cookie_iface.go -destination mock_cookie/mock_cookie_iface.go
