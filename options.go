package rolegate

import (
	"github.com/cccteam/rolegate/dashboard"
	"github.com/cccteam/rolegate/guard"
	"github.com/cccteam/rolegate/internal/cookie"
	"github.com/cccteam/rolegate/login"
	"github.com/cccteam/rolegate/snapshot"
)

// Option configures a Gate. It is either a CookieOption or a GateOption.
type Option interface {
	isOption()
}

// CookieOption defines a function signature for setting cookie client options.
type CookieOption func(*cookie.CookieClient)

func (CookieOption) isOption() {}

// WithCookieName sets the cookie name for the client cookie. (default: client)
func WithCookieName(name string) CookieOption {
	return CookieOption(cookie.WithCookieName(name))
}

// WithCookieDomain sets the domain of the client, snapshot, one-time code and XSRF cookies.
func WithCookieDomain(domain string) CookieOption {
	return CookieOption(cookie.WithCookieDomain(domain))
}

// GateOption defines a function signature for setting Gate options.
type GateOption func(*Gate)

func (GateOption) isOption() {}

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) GateOption {
	return GateOption(func(g *Gate) {
		g.handle = l
	})
}

// WithSnapshotTable keeps session snapshots in table, one per client ID,
// instead of in a cookie.
func WithSnapshotTable(table snapshot.Table) GateOption {
	return GateOption(func(g *Gate) {
		g.table = table
	})
}

// WithTokenIssuer sets the issuer of session tokens. (default: login.PlaceholderIssuer)
func WithTokenIssuer(issuer login.TokenIssuer) GateOption {
	return GateOption(func(g *Gate) {
		g.issuer = issuer
	})
}

// WithCodeVerifier sets the one-time code verifier of the member login. (default: login.MockCodes)
func WithCodeVerifier(verifier login.CodeVerifier) GateOption {
	return GateOption(func(g *Gate) {
		g.verifier = verifier
	})
}

// WithGuard replaces the guard deciding where denied navigations are sent.
func WithGuard(gd *guard.Guard) GateOption {
	return GateOption(func(g *Gate) {
		g.guard = gd
	})
}

// WithDashboardData sets the data shown on the dashboards. (default: dashboard.NewData())
func WithDashboardData(d *dashboard.Data) GateOption {
	return GateOption(func(g *Gate) {
		g.data = d
	})
}
