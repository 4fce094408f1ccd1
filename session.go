package rolegate

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
)

// StartSession identifies the client by restoring its client ID from the
// client cookie, or if that fails, issuing a new one. The client ID is then
// inserted into the context.
func (g *Gate) StartSession(next http.Handler) http.Handler {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.StartSession()")
		defer span.End()

		ctx, err := g.startSession(ctx, w, r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		next.ServeHTTP(w, r.WithContext(ctx))

		return nil
	})
}

func (g *Gate) startSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (context.Context, error) {
	cval, found := g.cookie.ReadClientCookie(r)

	clientID, valid := types.ValidClientID(cval[types.SCClientID])
	if !found || !valid {
		var err error
		clientID, err = uuid.NewV4()
		if err != nil {
			return ctx, errors.Wrap(err, "uuid.NewV4()")
		}
		cval, err = g.cookie.NewClientCookie(w, true, clientID)
		if err != nil {
			return ctx, errors.Wrap(err, "cookie.CookieManager.NewClientCookie()")
		}
	}

	if cval[types.SCSameSiteStrict] != strconv.FormatBool(true) {
		if err := g.cookie.WriteClientCookie(w, true, cval); err != nil {
			return ctx, errors.Wrap(err, "cookie.CookieManager.WriteClientCookie()")
		}
	}

	ctx = sessioninfo.NewClientIDCtx(ctx, clientID)

	l := logger.FromCtx(ctx).AddRequestAttribute("client ID", clientID).
		WithAttributes().AddAttribute("client ID", clientID).Logger()

	return logger.NewCtx(ctx, l), nil
}

// Authenticated is the handler that reports if the client holds a session and for which role
func (g *Gate) Authenticated() http.HandlerFunc {
	type response struct {
		Authenticated bool       `json:"authenticated"`
		Role          roles.Role `json:"role,omitempty"`
	}

	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Authenticated()")
		defer span.End()

		sess := g.store(w, r).Current(ctx)
		if !sess.Authenticated() {
			return httpio.NewEncoder(w).Ok(response{})
		}

		return httpio.NewEncoder(w).Ok(response{Authenticated: true, Role: sess.Role})
	})
}

// Logout clears the session and any pending one-time code login
func (g *Gate) Logout() http.HandlerFunc {
	type response struct {
		Redirect string `json:"redirect"`
	}

	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Logout()")
		defer span.End()

		if err := g.store(w, r).Clear(ctx); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "sessionstore.Store.Clear()"))
		}
		g.cookie.DeleteOTPCookie(w)

		return httpio.NewEncoder(w).Ok(response{Redirect: "/"})
	})
}
