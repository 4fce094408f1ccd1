package login

import (
	"context"

	"github.com/cccteam/rolegate/roles"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
)

// PlaceholderIssuer issues the fixed token "<role>-token". It stands in for a
// real identity provider.
type PlaceholderIssuer struct{}

func (PlaceholderIssuer) Issue(_ context.Context, role roles.Role) (string, error) {
	return role.String() + "-token", nil
}

// UUIDIssuer issues a random token per login.
type UUIDIssuer struct{}

func (UUIDIssuer) Issue(_ context.Context, role roles.Role) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "uuid.NewV4()")
	}

	return role.String() + "-" + id.String(), nil
}

// MockCodes accepts any well-formed one-time code and delivers nothing.
type MockCodes struct{}

func (MockCodes) Send(context.Context, string) error { return nil }

func (MockCodes) Verify(context.Context, string, string) (bool, error) { return true, nil }
