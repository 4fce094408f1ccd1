package roles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   Role
		wantOK bool
	}{
		{name: "admin", in: "admin", want: Admin, wantOK: true},
		{name: "merchant", in: "merchant", want: Merchant, wantOK: true},
		{name: "member", in: "member", want: Member, wantOK: true},
		{name: "case sensitive", in: "Admin", wantOK: false},
		{name: "outside enumeration", in: "superadmin", wantOK: false},
		{name: "empty", in: "", wantOK: false},
		{name: "padded", in: " member", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Parse() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
			if Role(tt.in).Valid() != tt.wantOK {
				t.Errorf("Valid() = %v, want %v", Role(tt.in).Valid(), tt.wantOK)
			}
		})
	}
}

func TestRole_Paths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role          Role
		wantLogin     string
		wantDashboard string
		wantTitle     string
	}{
		{role: Admin, wantLogin: "/login/admin", wantDashboard: "/dashboard/admin", wantTitle: "Admin"},
		{role: Merchant, wantLogin: "/login/merchant", wantDashboard: "/dashboard/merchant", wantTitle: "Merchant"},
		{role: Member, wantLogin: "/login/member", wantDashboard: "/dashboard/member", wantTitle: "Member"},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.role.LoginPath(); got != tt.wantLogin {
				t.Errorf("LoginPath() = %q, want %q", got, tt.wantLogin)
			}
			if got := tt.role.DashboardPath(); got != tt.wantDashboard {
				t.Errorf("DashboardPath() = %q, want %q", got, tt.wantDashboard)
			}
			if got := tt.role.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestRole_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("LoginPath() did not panic for unknown role")
		}
	}()

	_ = Role("superadmin").LoginPath()
}

func TestRole_LoginRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role Role
		from string
		want string
	}{
		{name: "no return context", role: Admin, want: "/login/admin"},
		{name: "with return context", role: Admin, from: "/dashboard/admin", want: "/login/admin?from=%2Fdashboard%2Fadmin"},
		{name: "query is escaped", role: Member, from: "/dashboard/member?tab=points", want: "/login/member?from=%2Fdashboard%2Fmember%3Ftab%3Dpoints"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.role.LoginRedirect(tt.from); got != tt.want {
				t.Errorf("LoginRedirect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOthers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role Role
		want []Role
	}{
		{name: "admin", role: Admin, want: []Role{Merchant, Member}},
		{name: "merchant", role: Merchant, want: []Role{Admin, Member}},
		{name: "member", role: Member, want: []Role{Admin, Merchant}},
		{name: "no role", role: "", want: []Role{Admin, Merchant, Member}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Others(tt.role)); diff != "" {
				t.Errorf("Others() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
