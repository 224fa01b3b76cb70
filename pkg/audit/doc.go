// Package audit provides an append-only audit trail for authorization
// decisions and privilege changes.
//
// Events are written as one JSON object per line to a local log file that is
// only ever appended to, never rewritten. The trail is shared by the RBAC
// manager and the sudo policy manager: role creation, role assignment,
// policy application and revocation all leave an event.
//
// Audit writes must never fail the operation that triggered them. The
// Logger implementation logs storage failures through slog and swallows
// them, so a full disk cannot block a role assignment.
//
// Basic usage:
//
//	storage, err := audit.NewFileStorage("/var/log/workstation/audit.log")
//	if err != nil {
//	    // Handle error
//	}
//	trail := audit.NewLogger(storage)
//
//	trail.Log(ctx, "assign_role",
//	    audit.WithUser("alice"),
//	    audit.WithMetadata("role", "developer"),
//	)
package audit
