// sessioninfo package handles session information.
package sessioninfo

import (
	"github.com/cccteam/rolegate/roles"
)

// Session is the authentication state of one client. The zero value is "no session".
//
// Token is set if and only if Role is set.
type Session struct {
	Token string     `json:"token,omitempty"`
	Role  roles.Role `json:"role,omitempty"`
}

// Authenticated reports if the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Complete reports if the session satisfies the token/role pairing invariant
// with a role from the enumeration.
func (s Session) Complete() bool {
	return s.Token != "" && s.Role.Valid()
}
