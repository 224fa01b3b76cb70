package rbac

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"
)

// SudoAccess is the level of privilege escalation a role grants.
type SudoAccess string

const (
	// SudoNone grants no sudo access.
	SudoNone SudoAccess = "none"
	// SudoLimited grants sudo for the role's SudoCommands only.
	SudoLimited SudoAccess = "limited"
	// SudoFull grants unrestricted sudo.
	SudoFull SudoAccess = "full"
)

// Validate checks that the value is one of the known levels.
func (a SudoAccess) Validate() error {
	switch a {
	case SudoNone, SudoLimited, SudoFull:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSudoAccess, string(a))
}

// Role is a named permission bundle with OS privilege hints and optional
// inheritance.
type Role struct {
	Name         string
	Description  string
	Permissions  []permission.Permission
	SudoAccess   SudoAccess
	SudoCommands []string
	SystemGroups []string
	InheritsFrom []string
	Custom       bool
	CreatedAt    time.Time
	CreatedBy    string
}

// AllPermissions resolves the role's effective permissions: its own plus
// those of every ancestor reachable through InheritsFrom.
//
// Parents missing from the registry are logged as a warning and skipped.
// Re-entering an already-visited role contributes nothing, so cyclic
// inheritance graphs resolve to a finite set. Duplicates are collapsed by
// canonical "scope:resource:action" rendering, first occurrence winning.
func AllPermissions(role Role, registry map[string]Role) []permission.Permission {
	return resolvePermissions(role, registry, make(map[string]bool), slog.Default())
}

// HasPermission reports whether any of the role's resolved permissions
// covers required.
func HasPermission(role Role, required permission.Permission, registry map[string]Role) bool {
	for _, granted := range AllPermissions(role, registry) {
		if granted.Matches(required) {
			return true
		}
	}
	return false
}

func resolvePermissions(role Role, registry map[string]Role, seen map[string]bool, log *slog.Logger) []permission.Permission {
	if seen[role.Name] {
		return nil
	}
	seen[role.Name] = true

	resolved := make([]permission.Permission, 0, len(role.Permissions))
	have := make(map[string]bool, len(role.Permissions))

	add := func(perms []permission.Permission) {
		for _, p := range perms {
			key := p.String()
			if have[key] {
				continue
			}
			have[key] = true
			resolved = append(resolved, p)
		}
	}

	add(role.Permissions)
	for _, parentName := range role.InheritsFrom {
		parent, ok := registry[parentName]
		if !ok {
			log.Warn("role inherits from unknown parent, skipping",
				"role", role.Name, "parent", parentName)
			continue
		}
		add(resolvePermissions(parent, registry, seen, log))
	}
	return resolved
}
