// Package permission provides the scope:resource:action permission model
// used by the workstation authorization core.
//
// A permission is an immutable triple of scope, resource and action. Each
// segment may be the full-segment wildcard "*" when the permission is
// granted, which matches any value of that segment in a required permission.
//
// Matching is directional: wildcards are only honored on the granted side.
// A required segment of "*" is treated as the literal string "*" and only
// matches a granted segment that is literally "*".
//
// Basic usage:
//
//	granted, err := permission.Parse("app:*:deploy")
//	if err != nil {
//	    // Handle malformed permission string
//	}
//
//	required := permission.MustParse("app:myapp:deploy")
//	if granted.Matches(required) {
//	    // Allowed
//	}
package permission
