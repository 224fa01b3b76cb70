package permission

import "errors"

// Domain errors for permission parsing.
var (
	// ErrInvalidFormat is returned when a permission string is not made of
	// exactly 2 or 3 non-empty colon-separated segments.
	ErrInvalidFormat = errors.New("permission.invalid_format")
)
