package sessioninfo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

const (
	// CtxSession is the key used to store the Session in the context.
	CtxSession ctxKey = "session"
	// CtxClientID is the key used to store the client ID in the context.
	CtxClientID ctxKey = "clientID"
)

// NewCtx returns a copy of ctx carrying the session.
func NewCtx(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxSession, s)
}

// FromRequest returns the session from the request context.
func FromRequest(r *http.Request) Session {
	return FromCtx(r.Context())
}

// FromCtx returns the session from the context.
func FromCtx(ctx context.Context) Session {
	s, ok := ctx.Value(CtxSession).(Session)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxSession))
	}

	return s
}

// NewClientIDCtx returns a copy of ctx carrying the client ID.
func NewClientIDCtx(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, CtxClientID, id)
}

// ClientIDFromRequest returns the client ID from the request context.
func ClientIDFromRequest(r *http.Request) uuid.UUID {
	return ClientIDFromCtx(r.Context())
}

// ClientIDFromCtx returns the client ID from the context.
func ClientIDFromCtx(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(CtxClientID).(uuid.UUID)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxClientID))
	}

	return id
}
