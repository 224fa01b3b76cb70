// Package system wraps the OS-level collaborators the authorization core
// depends on: group membership, sudoers syntax validation and restricted
// file writes.
//
// Every collaborator is an interface with an exec-backed implementation and
// a no-op variant, so the core can run unprivileged (tests, dry runs,
// sandboxed environments) without touching the host.
//
// The visudo validator takes a context; embedders are expected to attach a
// timeout so a hung checker cannot block the caller indefinitely.
package system
