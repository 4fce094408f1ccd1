// Package login runs the per-role login forms and commits the resulting
// session.
package login

import (
	"context"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/roles"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/rolegate/login"

// ErrTransition is returned when an event is not valid in the current state.
var ErrTransition = errors.New("transition not allowed in current state")

// State is the state of a login Flow.
type State int

const (
	Idle State = iota
	Submitting
	Success
	FieldError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case FieldError:
		return "field_error"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is what a Flow reports after an event.
type Result struct {
	State       State       `json:"state"`
	FieldErrors FieldErrors `json:"fieldErrors,omitempty"`
	Redirect    string      `json:"redirect,omitempty"`
	ReturnTo    string      `json:"returnTo,omitempty"`
}

// FlowOption configures a Flow or an OTPFlow.
type FlowOption func(*flowConfig)

type flowConfig struct {
	issuer   TokenIssuer
	verifier CodeVerifier
	returnTo string
}

// WithIssuer replaces the PlaceholderIssuer.
func WithIssuer(issuer TokenIssuer) FlowOption {
	return func(c *flowConfig) {
		c.issuer = issuer
	}
}

// WithCodeVerifier replaces MockCodes for the one-time code login.
func WithCodeVerifier(verifier CodeVerifier) FlowOption {
	return func(c *flowConfig) {
		c.verifier = verifier
	}
}

// WithReturnTo records the location the client was redirected from.
func WithReturnTo(from string) FlowOption {
	return func(c *flowConfig) {
		c.returnTo = from
	}
}

func newFlowConfig(opts []FlowOption) flowConfig {
	c := flowConfig{
		issuer:   PlaceholderIssuer{},
		verifier: MockCodes{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Flow is the password login state machine of one role.
type Flow struct {
	flowConfig

	role        roles.Role
	store       Committer
	state       State
	fieldErrors FieldErrors
	redirect    string
}

// New returns an Idle Flow for role committing into store.
func New(role roles.Role, store Committer, opts ...FlowOption) *Flow {
	return &Flow{
		flowConfig: newFlowConfig(opts),
		role:       role,
		store:      store,
	}
}

// Role is the role the flow logs in as.
func (f *Flow) Role() roles.Role {
	return f.role
}

// State is the current state.
func (f *Flow) State() State {
	return f.state
}

// Result reports the current state.
func (f *Flow) Result() Result {
	return Result{
		State:       f.state,
		FieldErrors: f.fieldErrors,
		Redirect:    f.redirect,
		ReturnTo:    f.returnTo,
	}
}

// Submit validates form and, when every field passes, issues a token and
// commits the session. The flow never remains in Submitting once Submit returns.
//
// Field errors are reported in the Result, not as an error, and leave the
// session untouched. An error is returned only when the token cannot be issued
// or the session cannot be committed, in which case the flow is Idle again.
func (f *Flow) Submit(ctx context.Context, form Form) (res Result, err error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Flow.Submit()")
	defer span.End()

	if f.state == Submitting {
		return f.Result(), errors.Wrap(ErrTransition, "submit while submitting")
	}
	if form.Role() != f.role {
		return f.Result(), errors.Newf("%s form submitted to %s login", form.Role(), f.role)
	}

	f.state = Submitting
	f.fieldErrors = nil
	f.redirect = ""
	defer func() {
		if f.state == Submitting {
			f.state = Idle
		}
		res = f.Result()
	}()

	fieldErrors, err := check(form)
	if err != nil {
		return f.Result(), errors.Wrap(err, "check()")
	}
	if len(fieldErrors) > 0 {
		f.state = FieldError
		f.fieldErrors = fieldErrors

		return f.Result(), nil
	}

	token, err := f.issuer.Issue(ctx, f.role)
	if err != nil {
		return f.Result(), errors.Wrap(err, "TokenIssuer.Issue()")
	}

	if err := f.store.Commit(ctx, f.role, token); err != nil {
		return f.Result(), errors.Wrap(err, "Committer.Commit()")
	}

	logger.FromCtx(ctx).Infof("%s login succeeded", f.role)

	f.state = Success
	f.redirect = f.role.DashboardPath()

	return f.Result(), nil
}

// EditField clears the error on field. Editing any field moves a FieldError
// flow back to Idle.
func (f *Flow) EditField(field string) {
	if f.state != FieldError {
		return
	}

	delete(f.fieldErrors, field)
	f.state = Idle
}

// FieldErrors returns the errors of the last submission.
func (f *Flow) FieldErrors() FieldErrors {
	return f.fieldErrors
}
