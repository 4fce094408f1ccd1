package rolegate

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/login"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessionstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

type roleLink struct {
	Role          roles.Role `json:"role"`
	Title         string     `json:"title"`
	LoginPath     string     `json:"loginPath"`
	DashboardPath string     `json:"dashboardPath"`
}

func newRoleLink(r roles.Role) roleLink {
	return roleLink{
		Role:          r,
		Title:         r.Title(),
		LoginPath:     r.LoginPath(),
		DashboardPath: r.DashboardPath(),
	}
}

// Landing lists every role with its login and dashboard entry points. A
// client holding a session also gets the login links of the other roles.
func (g *Gate) Landing() http.HandlerFunc {
	type response struct {
		Roles         []roleLink `json:"roles"`
		Authenticated bool       `json:"authenticated"`
		Role          roles.Role `json:"role,omitempty"`
		OtherLogins   []roleLink `json:"otherLogins,omitempty"`
	}

	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Landing()")
		defer span.End()

		res := response{}
		for _, role := range roles.All() {
			res.Roles = append(res.Roles, newRoleLink(role))
		}

		sess := g.store(w, r).Current(ctx)
		if sess.Authenticated() {
			res.Authenticated = true
			res.Role = sess.Role
			for _, role := range roles.Others(sess.Role) {
				res.OtherLogins = append(res.OtherLogins, newRoleLink(role))
			}
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

// LoginForm describes the login form of the role in the path.
func (g *Gate) LoginForm() http.HandlerFunc {
	type response struct {
		Role     roles.Role    `json:"role"`
		Title    string        `json:"title"`
		Fields   []login.Field `json:"fields"`
		OTP      bool          `json:"otp"`
		ReturnTo string        `json:"returnTo,omitempty"`
	}

	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.LoginForm()")
		defer span.End()

		role, err := roleParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(response{
			Role:     role,
			Title:    role.Title() + " Login",
			Fields:   login.Fields(role),
			OTP:      role == roles.Member,
			ReturnTo: r.URL.Query().Get("from"),
		})
	})
}

// Login runs the password login of the role in the path. The response is the
// resulting flow state. Field errors are part of a successful response.
func (g *Gate) Login() http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Login()")
		defer span.End()

		role, err := roleParam(r)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		form := login.NewForm(role)
		if err := json.NewDecoder(r.Body).Decode(form); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		flow := login.New(role, g.store(w, r), g.flowOptions(r.URL.Query().Get("from"))...)
		res, err := flow.Submit(ctx, form)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "login.Flow.Submit()"))
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

// SendCode starts or restarts the member one-time code login.
func (g *Gate) SendCode() http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.SendCode()")
		defer span.End()

		form := login.SendCodeForm{}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		otp := g.restoreOTP(ctx, w, r, g.store(w, r))
		res, err := otp.SendCode(ctx, form)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, otpError(err, "login.OTPFlow.SendCode()"))
		}

		if err := g.saveOTP(w, otp); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

// VerifyCode completes the member one-time code login.
func (g *Gate) VerifyCode() http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.VerifyCode()")
		defer span.End()

		form := login.VerifyCodeForm{}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		otp := g.restoreOTP(ctx, w, r, g.store(w, r))
		res, err := otp.Verify(ctx, form)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, otpError(err, "login.OTPFlow.Verify()"))
		}

		if err := g.saveOTP(w, otp); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

// BackToSendCode abandons a pending one-time code.
func (g *Gate) BackToSendCode() http.HandlerFunc {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.BackToSendCode()")
		defer span.End()

		otp := g.restoreOTP(ctx, w, r, g.store(w, r))
		res, err := otp.Back()
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, otpError(err, "login.OTPFlow.Back()"))
		}

		if err := g.saveOTP(w, otp); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(res)
	})
}

func (g *Gate) restoreOTP(ctx context.Context, w http.ResponseWriter, r *http.Request, store *sessionstore.Store) *login.OTPFlow {
	otp := login.NewOTP(store, g.flowOptions("")...)

	cval, found := g.cookie.ReadOTPCookie(r)
	if !found {
		return otp
	}

	state, ok := login.ParseOTPState(cval[types.OTPState])
	if !ok {
		logger.FromCtx(ctx).Infof("discarding one-time code login in unknown state %q", cval[types.OTPState])
		g.cookie.DeleteOTPCookie(w)

		return otp
	}
	if err := otp.Restore(state, cval[types.OTPDestination]); err != nil {
		logger.FromCtx(ctx).Infof("discarding one-time code login: %s", err)
		g.cookie.DeleteOTPCookie(w)
	}

	return otp
}

func (g *Gate) saveOTP(w http.ResponseWriter, otp *login.OTPFlow) error {
	if otp.State() != login.CodeSent {
		g.cookie.DeleteOTPCookie(w)

		return nil
	}

	if err := g.cookie.WriteOTPCookie(w, map[types.OTPKey]string{
		types.OTPState:       otp.State().String(),
		types.OTPDestination: otp.Destination(),
	}); err != nil {
		return errors.Wrap(err, "cookie.CookieManager.WriteOTPCookie()")
	}

	return nil
}

func otpError(err error, op string) error {
	if errors.Is(err, login.ErrTransition) {
		return httpio.NewBadRequestMessageWithError(err, "no code pending")
	}

	return errors.Wrap(err, op)
}

func roleParam(r *http.Request) (roles.Role, error) {
	raw := chi.URLParam(r, "role")
	role, ok := roles.Parse(raw)
	if !ok {
		return "", httpio.NewNotFoundMessagef("no login for role %q", raw)
	}

	return role, nil
}
