package login

import (
	"context"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/roles"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// OTPState is the state of the member one-time code login.
type OTPState int

const (
	OTPIdle OTPState = iota
	CodeSent
	Verifying
	OTPSuccess
)

func (s OTPState) String() string {
	switch s {
	case OTPIdle:
		return "idle"
	case CodeSent:
		return "code_sent"
	case Verifying:
		return "verifying"
	case OTPSuccess:
		return "success"
	default:
		return "unknown"
	}
}

func (s OTPState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseOTPState is the inverse of OTPState.String.
func ParseOTPState(s string) (OTPState, bool) {
	switch s {
	case "idle":
		return OTPIdle, true
	case "code_sent":
		return CodeSent, true
	case "verifying":
		return Verifying, true
	case "success":
		return OTPSuccess, true
	}

	return OTPIdle, false
}

// OTPResult is what an OTPFlow reports after an event.
type OTPResult struct {
	State       OTPState    `json:"state"`
	Destination string      `json:"destination,omitempty"`
	FieldErrors FieldErrors `json:"fieldErrors,omitempty"`
	Redirect    string      `json:"redirect,omitempty"`
}

// OTPFlow is the member login by one-time code. It is independent of the
// member password Flow and can be re-entered with Back.
type OTPFlow struct {
	flowConfig

	store       Committer
	state       OTPState
	destination string
	fieldErrors FieldErrors
	redirect    string
}

// NewOTP returns an idle OTPFlow committing member sessions into store.
func NewOTP(store Committer, opts ...FlowOption) *OTPFlow {
	return &OTPFlow{
		flowConfig: newFlowConfig(opts),
		store:      store,
	}
}

// Restore puts the flow back into a state saved between requests. Only the
// resting states OTPIdle and CodeSent can be restored, and CodeSent needs the
// destination the code was sent to.
func (o *OTPFlow) Restore(state OTPState, destination string) error {
	switch state {
	case OTPIdle:
		o.state, o.destination = OTPIdle, ""
	case CodeSent:
		if destination == "" {
			return errors.New("code sent without destination")
		}
		o.state, o.destination = CodeSent, destination
	default:
		return errors.Wrapf(ErrTransition, "cannot restore %s", state)
	}
	o.fieldErrors, o.redirect = nil, ""

	return nil
}

// State is the current state.
func (o *OTPFlow) State() OTPState {
	return o.state
}

// Destination is where the pending code was sent.
func (o *OTPFlow) Destination() string {
	return o.destination
}

// Result reports the current state.
func (o *OTPFlow) Result() OTPResult {
	return OTPResult{
		State:       o.state,
		Destination: o.destination,
		FieldErrors: o.fieldErrors,
		Redirect:    o.redirect,
	}
}

// SendCode validates the destination and sends a code to it. Sending again
// while a code is pending replaces the destination.
func (o *OTPFlow) SendCode(ctx context.Context, form SendCodeForm) (OTPResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "OTPFlow.SendCode()")
	defer span.End()

	if o.state != OTPIdle && o.state != CodeSent {
		return o.Result(), errors.Wrapf(ErrTransition, "send code in %s", o.state)
	}

	fieldErrors, err := check(&form)
	if err != nil {
		return o.Result(), errors.Wrap(err, "check()")
	}
	o.fieldErrors = fieldErrors
	if len(fieldErrors) > 0 {
		return o.Result(), nil
	}

	if err := o.verifier.Send(ctx, form.EmailOrPhone); err != nil {
		return o.Result(), errors.Wrap(err, "CodeVerifier.Send()")
	}

	o.state = CodeSent
	o.destination = form.EmailOrPhone

	return o.Result(), nil
}

// Verify checks the code sent to the destination and commits a member session
// when it is accepted. A rejected code leaves the flow in CodeSent with an
// error on the code field.
func (o *OTPFlow) Verify(ctx context.Context, form VerifyCodeForm) (res OTPResult, err error) {
	ctx, span := otel.Tracer(name).Start(ctx, "OTPFlow.Verify()")
	defer span.End()

	if o.state != CodeSent {
		return o.Result(), errors.Wrapf(ErrTransition, "verify in %s", o.state)
	}

	fieldErrors, err := check(&form)
	if err != nil {
		return o.Result(), errors.Wrap(err, "check()")
	}
	o.fieldErrors = fieldErrors
	if len(fieldErrors) > 0 {
		return o.Result(), nil
	}

	o.state = Verifying
	defer func() {
		if o.state == Verifying {
			o.state = CodeSent
		}
		res = o.Result()
	}()

	ok, err := o.verifier.Verify(ctx, o.destination, form.Code)
	if err != nil {
		return o.Result(), errors.Wrap(err, "CodeVerifier.Verify()")
	}
	if !ok {
		o.fieldErrors = FieldErrors{"code": "Invalid code"}

		return o.Result(), nil
	}

	token, err := o.issuer.Issue(ctx, roles.Member)
	if err != nil {
		return o.Result(), errors.Wrap(err, "TokenIssuer.Issue()")
	}

	if err := o.store.Commit(ctx, roles.Member, token); err != nil {
		return o.Result(), errors.Wrap(err, "Committer.Commit()")
	}

	logger.FromCtx(ctx).Infof("%s code login succeeded", roles.Member)

	o.state = OTPSuccess
	o.redirect = roles.Member.DashboardPath()

	return o.Result(), nil
}

// Back abandons the pending code and returns to OTPIdle.
func (o *OTPFlow) Back() (OTPResult, error) {
	if o.state != CodeSent {
		return o.Result(), errors.Wrapf(ErrTransition, "back in %s", o.state)
	}

	o.state = OTPIdle
	o.destination = ""
	o.fieldErrors = nil

	return o.Result(), nil
}
