package login

import (
	"context"
	"testing"

	"github.com/cccteam/rolegate/mock/mock_login"
	"github.com/cccteam/rolegate/roles"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestOTPFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := mock_login.NewMockCommitter(gomock.NewController(t))
	store.EXPECT().Commit(gomock.Any(), roles.Member, "member-token").Return(nil)

	o := NewOTP(store)

	got, err := o.SendCode(ctx, SendCodeForm{EmailOrPhone: "me@example.com"})
	if err != nil {
		t.Fatalf("OTPFlow.SendCode() error = %v", err)
	}
	if diff := cmp.Diff(OTPResult{State: CodeSent, Destination: "me@example.com"}, got); diff != "" {
		t.Errorf("OTPFlow.SendCode() mismatch (-want +got):\n%s", diff)
	}

	got, err = o.Verify(ctx, VerifyCodeForm{Code: "000000"})
	if err != nil {
		t.Fatalf("OTPFlow.Verify() error = %v", err)
	}
	want := OTPResult{State: OTPSuccess, Destination: "me@example.com", Redirect: "/dashboard/member"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OTPFlow.Verify() mismatch (-want +got):\n%s", diff)
	}

	if _, err := o.Back(); !errors.Is(err, ErrTransition) {
		t.Errorf("OTPFlow.Back() after success error = %v, want ErrTransition", err)
	}
}

func TestOTPFlow_Back(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	o := NewOTP(mock_login.NewMockCommitter(gomock.NewController(t)))

	if _, err := o.Back(); !errors.Is(err, ErrTransition) {
		t.Fatalf("OTPFlow.Back() from idle error = %v, want ErrTransition", err)
	}
	if _, err := o.Verify(ctx, VerifyCodeForm{Code: "1"}); !errors.Is(err, ErrTransition) {
		t.Fatalf("OTPFlow.Verify() from idle error = %v, want ErrTransition", err)
	}

	for range 2 {
		if _, err := o.SendCode(ctx, SendCodeForm{EmailOrPhone: "5551234"}); err != nil {
			t.Fatalf("OTPFlow.SendCode() error = %v", err)
		}
		got, err := o.Back()
		if err != nil {
			t.Fatalf("OTPFlow.Back() error = %v", err)
		}
		if diff := cmp.Diff(OTPResult{State: OTPIdle}, got); diff != "" {
			t.Errorf("OTPFlow.Back() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestOTPFlow_FieldErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	o := NewOTP(mock_login.NewMockCommitter(gomock.NewController(t)))

	got, err := o.SendCode(ctx, SendCodeForm{EmailOrPhone: "ab"})
	if err != nil {
		t.Fatalf("OTPFlow.SendCode() error = %v", err)
	}
	want := OTPResult{State: OTPIdle, FieldErrors: FieldErrors{"emailOrPhone": "Must contain at least 3 character(s)"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OTPFlow.SendCode() mismatch (-want +got):\n%s", diff)
	}

	if _, err := o.SendCode(ctx, SendCodeForm{EmailOrPhone: "abc"}); err != nil {
		t.Fatalf("OTPFlow.SendCode() error = %v", err)
	}
	got, err = o.Verify(ctx, VerifyCodeForm{Code: "1234567"})
	if err != nil {
		t.Fatalf("OTPFlow.Verify() error = %v", err)
	}
	want = OTPResult{State: CodeSent, Destination: "abc", FieldErrors: FieldErrors{"code": "Must contain at most 6 character(s)"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OTPFlow.Verify() mismatch (-want +got):\n%s", diff)
	}
}

func TestOTPFlow_Verifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	verifier := mock_login.NewMockCodeVerifier(ctrl)
	store := mock_login.NewMockCommitter(ctrl)
	gomock.InOrder(
		verifier.EXPECT().Send(gomock.Any(), "555-0100").Return(nil),
		verifier.EXPECT().Verify(gomock.Any(), "555-0100", "111111").Return(false, nil),
		verifier.EXPECT().Verify(gomock.Any(), "555-0100", "222222").Return(false, errors.New("sms gateway down")),
		verifier.EXPECT().Verify(gomock.Any(), "555-0100", "333333").Return(true, nil),
		store.EXPECT().Commit(gomock.Any(), roles.Member, "member-token").Return(errors.New("disk full")),
	)

	o := NewOTP(store, WithCodeVerifier(verifier))
	if _, err := o.SendCode(ctx, SendCodeForm{EmailOrPhone: "555-0100"}); err != nil {
		t.Fatalf("OTPFlow.SendCode() error = %v", err)
	}

	got, err := o.Verify(ctx, VerifyCodeForm{Code: "111111"})
	if err != nil {
		t.Fatalf("OTPFlow.Verify() error = %v", err)
	}
	want := OTPResult{State: CodeSent, Destination: "555-0100", FieldErrors: FieldErrors{"code": "Invalid code"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OTPFlow.Verify() mismatch (-want +got):\n%s", diff)
	}

	for _, code := range []string{"222222", "333333"} {
		got, err := o.Verify(ctx, VerifyCodeForm{Code: code})
		if err == nil {
			t.Fatalf("OTPFlow.Verify(%q) error = nil, want error", code)
		}
		if got.State != CodeSent {
			t.Errorf("OTPFlow.Verify(%q) state = %v, want %v", code, got.State, CodeSent)
		}
	}
}

func TestOTPFlow_Restore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		state       OTPState
		destination string
		want        OTPResult
		wantErr     bool
	}{
		{name: "idle", state: OTPIdle, destination: "ignored", want: OTPResult{State: OTPIdle}},
		{name: "code sent", state: CodeSent, destination: "me@example.com", want: OTPResult{State: CodeSent, Destination: "me@example.com"}},
		{name: "code sent without destination", state: CodeSent, wantErr: true},
		{name: "verifying", state: Verifying, destination: "x", wantErr: true},
		{name: "success", state: OTPSuccess, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := NewOTP(mock_login.NewMockCommitter(gomock.NewController(t)))
			if err := o.Restore(tt.state, tt.destination); (err != nil) != tt.wantErr {
				t.Fatalf("OTPFlow.Restore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, o.Result()); diff != "" {
				t.Errorf("OTPFlow.Result() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOTPState(t *testing.T) {
	t.Parallel()

	for _, s := range []OTPState{OTPIdle, CodeSent, Verifying, OTPSuccess} {
		got, ok := ParseOTPState(s.String())
		if !ok || got != s {
			t.Errorf("ParseOTPState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseOTPState("bogus"); ok {
		t.Errorf("ParseOTPState(bogus) ok = true")
	}
}
