// Package guard enforces role access on protected views and reports where a
// denied navigation must be sent instead.
package guard

import (
	"context"
	"net/url"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/access"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/routes"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/guard"

// Outcome is the result of guarding one navigation.
type Outcome struct {
	Decision access.Decision

	// Redirect is the login location to send a denied navigation to. It is
	// empty when the navigation is allowed.
	Redirect string
}

// Option configures a Guard.
type Option func(*Guard)

// WithLoginRedirect replaces the function building the login location for a
// denied navigation. from is the location that was requested.
func WithLoginRedirect(fn func(role roles.Role, from string) string) Option {
	return func(g *Guard) {
		g.loginRedirect = fn
	}
}

// Guard evaluates navigations against the current session.
type Guard struct {
	loginRedirect func(role roles.Role, from string) string
}

// New returns a Guard. By default a denied navigation is sent to the role's
// login path with the requested location in the from parameter.
func New(opts ...Option) *Guard {
	g := &Guard{
		loginRedirect: func(role roles.Role, from string) string {
			return role.LoginRedirect(from)
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Evaluate authorizes requested for role against the session store holds right
// now. The session is read on every call.
func (g *Guard) Evaluate(ctx context.Context, store SessionSource, role roles.Role, requested string) Outcome {
	ctx, span := otel.Tracer(name).Start(ctx, "Guard.Evaluate()")
	defer span.End()

	return g.decide(ctx, store.Current(ctx), role, requested)
}

// Watch evaluates immediately and again every time store changes, calling fn
// with each Outcome. Watching ends when stop is called or ctx is done.
func (g *Guard) Watch(ctx context.Context, store Observable, role roles.Role, requested string, fn func(Outcome)) (stop func()) {
	unsubscribe := store.Subscribe(func(sess sessioninfo.Session) {
		fn(g.decide(ctx, sess, role, requested))
	})
	stopAfter := context.AfterFunc(ctx, unsubscribe)

	fn(g.Evaluate(ctx, store, role, requested))

	return func() {
		stopAfter()
		unsubscribe()
	}
}

// Navigate resolves location through the route table. Public routes are always
// allowed and protected routes are evaluated against store. A location outside
// the table is a not found error.
func (g *Guard) Navigate(ctx context.Context, store SessionSource, location string) (Outcome, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Guard.Navigate()")
	defer span.End()

	u, err := url.Parse(location)
	if err != nil {
		return Outcome{}, httpio.NewBadRequestMessageWithError(errors.Wrap(err, "url.Parse()"), "invalid location")
	}

	route, ok := routes.Match(u.Path)
	if !ok {
		return Outcome{}, httpio.NewNotFoundMessagef("no page at %q", u.Path)
	}

	if route.Kind == routes.Public {
		return Outcome{Decision: access.Allow}, nil
	}

	return g.Evaluate(ctx, store, route.Role, location), nil
}

func (g *Guard) decide(ctx context.Context, sess sessioninfo.Session, role roles.Role, requested string) Outcome {
	decision := access.Check(access.Request{
		RequiredRole:  role,
		Session:       sess,
		RequestedPath: requested,
	})
	if decision == access.Allow {
		return Outcome{Decision: access.Allow}
	}

	if sess.Authenticated() {
		logger.FromCtx(ctx).Infof("role %q denied access to %s", sess.Role, requested)
	}

	return Outcome{Decision: access.Deny, Redirect: g.loginRedirect(role, requested)}
}
