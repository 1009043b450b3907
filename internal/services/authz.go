package services

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/pkg/apperrors"
)

// denyToError maps a policy-table denial onto the externally-visible error
// taxonomy. The guard itself stays free of transport concerns; this is the
// single place where DenyReason meets HTTP semantics.
func denyToError(d auth.Decision) error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case auth.DenyUnauthenticated:
		return apperrors.ErrUnauthenticated
	case auth.DenyWrongRole:
		return apperrors.ErrWrongRole
	case auth.DenyNotOwner:
		return apperrors.ErrNotOwner
	case auth.DenyProfileRequired:
		return apperrors.ErrEmployerProfileRequired
	case auth.DenyJobInactive:
		return apperrors.ErrJobNotActive
	case auth.DenyDuplicateApplication:
		return apperrors.ErrApplicationAlreadyExists
	default:
		return apperrors.ErrWrongRole
	}
}
