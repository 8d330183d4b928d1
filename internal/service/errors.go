package service

import (
	"errors"
	"fmt"

	"github.com/renterra/rental-service/internal/models"
)

// The four user-facing failure classes. Services wrap them with context via
// fmt.Errorf("%w: ...") so handlers can translate with errors.Is while the
// message stays human-readable. Anything else that escapes a service is a
// storage failure and surfaces as a 500.
var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalid           = errors.New("invalid")
	ErrNotFound          = errors.New("not found")
)

// requireRole gates an operation on the caller's role. The role attribute
// comes from the identity provider and is trusted as-is.
func requireRole(caller *models.User, role models.Role) error {
	if caller == nil || caller.Role != role {
		return fmt.Errorf("%w: this action is for %ss only", ErrForbidden, role)
	}
	return nil
}
