package system

import "os"

// File permissions for state the core writes. Sudoers artifacts must not be
// readable beyond root or sudo refuses to load them.
const (
	// SudoersFilePerm applies to per-user files under /etc/sudoers.d.
	SudoersFilePerm = os.FileMode(0o440)

	// StateFilePerm applies to the roles catalogue and assignment map.
	StateFilePerm = os.FileMode(0o600)

	// StateDirPerm applies to directories holding core state.
	StateDirPerm = os.FileMode(0o750)
)
