package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cccteam/httpio"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/dashboard"

// LogHandler adapts a handler returning an error into an http.HandlerFunc.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// Handlers serves the dashboard panels. Every handler expects the session in
// the request context, so it must be mounted behind an access check for its role.
type Handlers struct {
	data   *Data
	handle LogHandler
}

func NewHandlers(data *Data, handle LogHandler) *Handlers {
	return &Handlers{data: data, handle: handle}
}

// Panel returns the overview handler of role's dashboard.
func (h *Handlers) Panel(role roles.Role) http.HandlerFunc {
	switch role {
	case roles.Admin:
		return h.Admin()
	case roles.Merchant:
		return h.Merchant()
	case roles.Member:
		return h.Member()
	}

	panic("dashboard: unknown role " + string(role))
}

type header struct {
	Title   string     `json:"title"`
	Welcome string     `json:"welcome"`
	Role    roles.Role `json:"role"`
}

func newHeader(r *http.Request) header {
	sess := sessioninfo.FromRequest(r)

	return header{
		Title:   sess.Role.Title() + " Dashboard",
		Welcome: "Welcome back, " + sess.Role.String() + "!",
		Role:    sess.Role,
	}
}

func (h *Handlers) Admin() http.HandlerFunc {
	type response struct {
		header
		Users     []User     `json:"users"`
		Merchants []Merchant `json:"merchants"`
	}

	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "Handlers.Admin()")
		defer span.End()

		return httpio.NewEncoder(w).Ok(response{
			header:    newHeader(r),
			Users:     h.data.Users(),
			Merchants: h.data.Merchants(),
		})
	})
}

func (h *Handlers) DeleteUser() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handlers.DeleteUser()")
		defer span.End()

		id, err := idParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := h.data.DeleteUser(id); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(h.data.Users())
	})
}

func (h *Handlers) DeleteMerchant() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handlers.DeleteMerchant()")
		defer span.End()

		id, err := idParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := h.data.DeleteMerchant(id); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(h.data.Merchants())
	})
}

func (h *Handlers) Merchant() http.HandlerFunc {
	type response struct {
		header
		Purchases        []Purchase     `json:"purchases"`
		ContributionRate float64        `json:"contributionRate"`
		Notifications    []Notification `json:"notifications"`
	}

	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "Handlers.Merchant()")
		defer span.End()

		return httpio.NewEncoder(w).Ok(response{
			header:           newHeader(r),
			Purchases:        h.data.Purchases(),
			ContributionRate: h.data.ContributionRate(),
			Notifications:    h.data.Notifications(),
		})
	})
}

func (h *Handlers) ApprovePurchase() http.HandlerFunc {
	return h.decidePurchase("Handlers.ApprovePurchase()", h.data.ApprovePurchase)
}

func (h *Handlers) RejectPurchase() http.HandlerFunc {
	return h.decidePurchase("Handlers.RejectPurchase()", h.data.RejectPurchase)
}

func (h *Handlers) decidePurchase(spanName string, decide func(id int) (Purchase, error)) http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), spanName)
		defer span.End()

		id, err := idParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		p, err := decide(id)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(p)
	})
}

// DecidePurchases approves or rejects the selected purchases in one step.
// The body is {"status": "Approved"|"Rejected", "ids": [...]}.
func (h *Handlers) DecidePurchases() http.HandlerFunc {
	type request struct {
		Status PurchaseStatus `json:"status"`
		IDs    []int          `json:"ids"`
	}

	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handlers.DecidePurchases()")
		defer span.End()

		payload := &request{}
		if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		decided, err := h.data.DecidePurchases(payload.Status, payload.IDs...)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(decided)
	})
}

func (h *Handlers) MarkNotificationRead() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handlers.MarkNotificationRead()")
		defer span.End()

		id, err := idParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		if err := h.data.MarkNotificationRead(id); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(h.data.Notifications())
	})
}

func (h *Handlers) MarkAllNotificationsRead() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "Handlers.MarkAllNotificationsRead()")
		defer span.End()

		h.data.MarkAllNotificationsRead()

		return httpio.NewEncoder(w).Ok(h.data.Notifications())
	})
}

func (h *Handlers) SetContributionRate() http.HandlerFunc {
	type request struct {
		Rate *float64 `json:"rate"`
	}
	type response struct {
		ContributionRate float64 `json:"contributionRate"`
	}

	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handlers.SetContributionRate()")
		defer span.End()

		payload := &request{}
		if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}
		if payload.Rate == nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "rate is required")
		}

		if err := h.data.SetContributionRate(*payload.Rate); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(response{ContributionRate: h.data.ContributionRate()})
	})
}

func (h *Handlers) Member() http.HandlerFunc {
	type response struct {
		header
		Points Points `json:"points"`
	}

	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "Handlers.Member()")
		defer span.End()

		return httpio.NewEncoder(w).Ok(response{
			header: newHeader(r),
			Points: h.data.Points(),
		})
	})
}

func idParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httpio.NewBadRequestMessageWithError(errors.Wrap(err, "strconv.Atoi()"), "invalid id")
	}

	return id, nil
}
