// Package rolegate serves a role-gated dashboard over HTTP. Each client's
// session lives in a key-value snapshot, and every dashboard route is guarded
// by the role it belongs to.
package rolegate

import (
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/cccteam/rolegate/dashboard"
	"github.com/cccteam/rolegate/guard"
	"github.com/cccteam/rolegate/internal/cookie"
	"github.com/cccteam/rolegate/login"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/cccteam/rolegate/sessionstore"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
)

const name = "github.com/cccteam/rolegate"

// Gate holds the HTTP handlers and middleware of the dashboard.
type Gate struct {
	cookie   cookie.CookieManager
	handle   LogHandler
	guard    *guard.Guard
	table    snapshot.Table
	issuer   login.TokenIssuer
	verifier login.CodeVerifier
	data     *dashboard.Data
	panels   *dashboard.Handlers
}

// New returns a Gate whose cookies are keyed by the base64 master cookieKey.
//
// By default the session snapshot is kept in an encrypted cookie on the client.
// Use WithSnapshotTable to keep it server side, keyed by the client ID cookie.
func New(cookieKey string, options ...Option) (*Gate, error) {
	g := &Gate{
		handle:   httpio.Log,
		guard:    guard.New(),
		issuer:   login.PlaceholderIssuer{},
		verifier: login.MockCodes{},
	}

	var cookieOpts []cookie.CookieOption
	for _, opt := range options {
		switch o := opt.(type) {
		case CookieOption:
			cookieOpts = append(cookieOpts, cookie.CookieOption(o))
		case GateOption:
			o(g)
		}
	}

	cookieClient, err := cookie.NewCookieClient(cookieKey, cookieOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "cookie.NewCookieClient()")
	}
	g.cookie = cookieClient

	if g.data == nil {
		g.data = dashboard.NewData()
	}
	g.panels = dashboard.NewHandlers(g.data, g.Handle)

	return g, nil
}

// Handle wraps handler with the configured LogHandler.
func (g *Gate) Handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return g.handle(handler)
}

// store returns the session store of the client making r. StartSession must
// have run before so the client ID is in the request context.
func (g *Gate) store(w http.ResponseWriter, r *http.Request) *sessionstore.Store {
	if g.table != nil {
		return sessionstore.New(snapshot.Scoped(g.table, sessioninfo.ClientIDFromRequest(r)))
	}

	return sessionstore.New(g.cookie.SnapshotKV(w, r))
}

func (g *Gate) flowOptions(from string) []login.FlowOption {
	return []login.FlowOption{
		login.WithIssuer(g.issuer),
		login.WithCodeVerifier(g.verifier),
		login.WithReturnTo(from),
	}
}
