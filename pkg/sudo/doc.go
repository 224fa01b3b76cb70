// Package sudo implements command-level sudo authorization: ordered,
// glob-matched rule lists per role, rendered into per-user sudoers
// artifacts.
//
// A Policy is a first-match rule list with a default allow/deny posture.
// Rule order is load-bearing: a specific rule must precede a broader
// catch-all to win. Rules may additionally restrict the hours and weekdays
// a command is allowed, and declare whether a password or MFA is expected.
//
// The PolicyManager holds the built-in policy catalogue keyed by role name,
// renders and validates sudoers files, and answers "would this command be
// allowed" queries by resolving the caller's current role through the RBAC
// manager. Queries fail closed: no assignment, an expired assignment or a
// missing policy all deny with a reason, never an error.
//
// Basic usage:
//
//	pm := sudo.NewPolicyManager(sudo.Config{SudoersDir: "/etc/sudoers.d"}, rbacMgr)
//
//	ok, err := pm.ApplyPolicyForUser(ctx, "alice", "developer")
//	if err != nil {
//	    // The system refused the write
//	}
//	if !ok {
//	    // The rendered policy failed the sudoers syntax check
//	}
//
//	decision := pm.TestCommand(ctx, "alice", "systemctl restart myapp")
//	if decision.Allowed {
//	    // ...
//	}
package sudo
