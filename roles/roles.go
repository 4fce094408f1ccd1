// Package roles defines the closed set of dashboard roles and the paths bound to each.
package roles

import (
	"fmt"
	"net/url"
)

// Role is the single flat role a session is granted. Roles do not inherit from each other.
type Role string

const (
	// Admin manages members and merchants.
	Admin Role = "admin"

	// Merchant approves purchases and sets the contribution rate for its store.
	Merchant Role = "merchant"

	// Member collects and redeems points.
	Member Role = "member"
)

// All returns every role in declaration order.
func All() []Role {
	return []Role{Admin, Merchant, Member}
}

// Others returns every role except r, in declaration order.
func Others(r Role) []Role {
	others := make([]Role, 0, len(All()))
	for _, role := range All() {
		if role != r {
			others = append(others, role)
		}
	}

	return others
}

// Parse returns the Role matching s exactly. Matching is case-sensitive.
func Parse(s string) (Role, bool) {
	switch Role(s) {
	case Admin, Merchant, Member:
		return Role(s), true
	}

	return "", false
}

// Valid reports if r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := Parse(string(r))

	return ok
}

func (r Role) String() string {
	return string(r)
}

// Title is the display name of the role.
func (r Role) Title() string {
	switch r {
	case Admin:
		return "Admin"
	case Merchant:
		return "Merchant"
	case Member:
		return "Member"
	}

	panic(fmt.Sprintf("roles: unknown role %q", string(r)))
}

// LoginPath is the public login entry point for the role.
func (r Role) LoginPath() string {
	switch r {
	case Admin, Merchant, Member:
		return "/login/" + string(r)
	}

	panic(fmt.Sprintf("roles: unknown role %q", string(r)))
}

// DashboardPath is the root of the role's protected route subtree.
func (r Role) DashboardPath() string {
	switch r {
	case Admin, Merchant, Member:
		return "/dashboard/" + string(r)
	}

	panic(fmt.Sprintf("roles: unknown role %q", string(r)))
}

// LoginRedirect is the login entry point carrying from as the return context.
func (r Role) LoginRedirect(from string) string {
	if from == "" {
		return r.LoginPath()
	}

	return r.LoginPath() + "?" + url.Values{"from": []string{from}}.Encode()
}
