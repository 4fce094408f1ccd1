package login

import (
	"context"

	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessionstore"
)

var (
	_ Committer    = &sessionstore.Store{}
	_ TokenIssuer  = PlaceholderIssuer{}
	_ TokenIssuer  = UUIDIssuer{}
	_ CodeVerifier = MockCodes{}
)

// Committer stores a successful login.
type Committer interface {
	Commit(ctx context.Context, role roles.Role, token string) error
}

// TokenIssuer mints the opaque token bound to a new session.
type TokenIssuer interface {
	Issue(ctx context.Context, role roles.Role) (string, error)
}

// CodeVerifier delivers and checks one-time codes.
type CodeVerifier interface {
	Send(ctx context.Context, destination string) error
	Verify(ctx context.Context, destination, code string) (bool, error)
}
