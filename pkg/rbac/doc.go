// Package rbac implements role-based access control for the workstation
// tool: a role catalogue with inheritance, user-to-role assignments and the
// mapping from roles to OS privilege primitives (system groups, sudo
// access).
//
// Roles bundle permissions (see pkg/permission) and may inherit from other
// roles. Resolution is cycle-safe: a role that inherits from itself,
// directly or transitively, still resolves to a finite permission set.
//
// The Manager persists the role catalogue as a human-editable YAML document
// and assignments as JSON, rewriting both after every mutation. Mutating
// operations fail loudly (duplicate role, unknown role); authorization
// queries fail closed — CheckPermission returns false on any ambiguity
// (missing user, expired assignment, deleted role, malformed permission)
// and never returns an error. That split is a security property, not a
// style choice.
//
// The Manager is not internally synchronized. It targets a single
// administrative process per invocation; embedders with concurrent callers
// must serialize mutating calls themselves.
//
// Basic usage:
//
//	mgr, err := rbac.NewManager(rbac.Config{
//	    RolesPath:       "/etc/workstation/roles.yaml",
//	    AssignmentsPath: "/etc/workstation/assignments.json",
//	})
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := mgr.AssignRole(ctx, "alice", "developer", "root", nil, "onboarding"); err != nil {
//	    // Handle unknown role
//	}
//
//	if mgr.CheckPermission(ctx, "alice", "app:demo:deploy") {
//	    // Allowed
//	}
package rbac
