package auth

import (
	"github.com/google/uuid"

	apperrors "inkwell/internal/errors"
)

// RequireOwner authorizes a mutation by comparing the authenticated identity
// to the resource's owner. There is no role hierarchy and no admin override:
// the comparison is the entire authorization rule.
func RequireOwner(identity, owner uuid.UUID) error {
	if identity != owner {
		return apperrors.ErrForbidden
	}
	return nil
}
