package sudo

import "errors"

// Domain errors for sudo policy operations.
var (
	// ErrPolicyNotFound is returned when no policy exists for a role.
	ErrPolicyNotFound = errors.New("sudo.policy_not_found")
)
