package guard

import (
	"context"

	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/cccteam/rolegate/sessionstore"
)

var _ Observable = &sessionstore.Store{}

// SessionSource returns the live session of a client.
type SessionSource interface {
	Current(ctx context.Context) sessioninfo.Session
}

// Observable is a SessionSource that announces every change.
type Observable interface {
	SessionSource
	Subscribe(fn func(sessioninfo.Session)) (unsubscribe func())
}
