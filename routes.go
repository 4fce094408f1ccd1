package rolegate

import (
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/cccteam/rolegate/access"
	"github.com/cccteam/rolegate/roles"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

// Routes returns the router serving the landing page, the login pages and
// the role dashboards.
func (g *Gate) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(g.StartSession, g.SetXSRFToken, g.ValidateXSRFToken)
	r.NotFound(g.Navigate())

	r.Get("/", g.Landing())
	r.Get("/session", g.Authenticated())
	r.Post("/logout", g.Logout())

	r.Route("/login", func(r chi.Router) {
		r.Route("/member/otp", func(r chi.Router) {
			r.Post("/send", g.SendCode())
			r.Post("/verify", g.VerifyCode())
			r.Post("/back", g.BackToSendCode())
		})
		r.Get("/{role}", g.LoginForm())
		r.Post("/{role}", g.Login())
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Route("/"+string(roles.Admin), func(r chi.Router) {
			r.Use(g.Require(roles.Admin))
			r.Get("/", g.panels.Panel(roles.Admin))
			r.Post("/users/{id}/delete", g.panels.DeleteUser())
			r.Post("/merchants/{id}/delete", g.panels.DeleteMerchant())
		})
		r.Route("/"+string(roles.Merchant), func(r chi.Router) {
			r.Use(g.Require(roles.Merchant))
			r.Get("/", g.panels.Panel(roles.Merchant))
			r.Post("/purchases/{id}/approve", g.panels.ApprovePurchase())
			r.Post("/purchases/{id}/reject", g.panels.RejectPurchase())
			r.Post("/purchases/decide", g.panels.DecidePurchases())
			r.Post("/contribution-rate", g.panels.SetContributionRate())
			r.Post("/notifications/{id}/read", g.panels.MarkNotificationRead())
			r.Post("/notifications/read", g.panels.MarkAllNotificationsRead())
		})
		r.Route("/"+string(roles.Member), func(r chi.Router) {
			r.Use(g.Require(roles.Member))
			r.Get("/", g.panels.Panel(roles.Member))
		})
	})

	return r
}

// Navigate handles every location no route serves. A protected location the
// session may not see is redirected to the login page like Require does, and
// everything else is not found.
func (g *Gate) Navigate() http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Navigate()")
		defer span.End()

		outcome, err := g.guard.Navigate(ctx, g.store(w, r), r.URL.RequestURI())
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}
		if outcome.Decision == access.Deny {
			http.Redirect(w, r, outcome.Redirect, http.StatusSeeOther)

			return nil
		}

		return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewNotFoundMessagef("no page at %q", r.URL.Path))
	})
}
