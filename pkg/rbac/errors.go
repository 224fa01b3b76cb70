package rbac

import "errors"

// Domain errors for RBAC operations.
var (
	// ErrRoleExists is returned when creating a role whose name is taken.
	ErrRoleExists = errors.New("rbac.role_exists")

	// ErrRoleNotFound is returned when a role does not exist.
	ErrRoleNotFound = errors.New("rbac.role_not_found")

	// ErrAssignmentNotFound is returned when revoking a user with no assignment.
	ErrAssignmentNotFound = errors.New("rbac.assignment_not_found")

	// ErrInvalidSudoAccess is returned for an unknown sudo access level.
	ErrInvalidSudoAccess = errors.New("rbac.invalid_sudo_access")
)
