package services

import (
	"fmt"

	"aideal-backend/internal/models"
)

// Authorization checks live here so every endpoint applies the same rules
// instead of re-deriving them per handler. The role on the identity always
// comes from the current database row, never from a cached claim.

// RequireAdmin allows only callers whose stored role is admin.
func RequireAdmin(identity *models.User) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.Role != models.RoleAdmin {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return nil
}

// RequireOwner allows only the user who owns the resource. Callers must
// check resource existence first so a missing resource surfaces as 404,
// not 403.
func RequireOwner(identity *models.User, ownerID uint) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if identity.ID != ownerID {
		return fmt.Errorf("%w: resource belongs to another user", ErrForbidden)
	}
	return nil
}
