package rolegate

import (
	"net/http"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/access"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
	"go.opentelemetry.io/otel"
)

// Require guards a protected view of role. A request whose session does not
// hold role is redirected with 303 See Other to role's login page, carrying
// the requested location in the from parameter, and the view is never served.
// An allowed request gets the session in its context.
// StartSession handler must be called before calling Require
func (g *Gate) Require(role roles.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return g.handle(func(w http.ResponseWriter, r *http.Request) error {
			ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Require()")
			defer span.End()

			store := g.store(w, r)
			outcome := g.guard.Evaluate(ctx, store, role, r.URL.RequestURI())
			if outcome.Decision == access.Deny {
				http.Redirect(w, r, outcome.Redirect, http.StatusSeeOther)

				return nil
			}

			ctx = sessioninfo.NewCtx(ctx, store.Current(ctx))

			l := logger.FromCtx(ctx).AddRequestAttribute("role", role).
				WithAttributes().AddAttribute("role", role).Logger()

			next.ServeHTTP(w, r.WithContext(logger.NewCtx(ctx, l)))

			return nil
		})
	}
}
