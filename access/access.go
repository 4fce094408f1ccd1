// Package access decides whether a session may open a view restricted to a role.
package access

import (
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
)

// Decision is the result of an authorization check.
type Decision int

const (
	// Deny is the zero Decision so an unset result never grants access.
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Request is a single authorization query.
type Request struct {
	RequiredRole  roles.Role
	Session       sessioninfo.Session
	RequestedPath string
}

// Authorize allows the session only when it is authenticated and its role is
// exactly the required role. There is no hierarchy between roles.
func Authorize(sess sessioninfo.Session, required roles.Role) Decision {
	if sess.Token == "" || sess.Role != required {
		return Deny
	}

	return Allow
}

// Check is Authorize applied to a Request.
func Check(req Request) Decision {
	return Authorize(req.Session, req.RequiredRole)
}
