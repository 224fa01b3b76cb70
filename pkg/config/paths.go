package config

// Paths holds the locations of the authorization core's persisted state.
//
// Defaults target a Debian system managed by the workstation tool. Embedders
// running unprivileged (tests, dry runs) should point these at a scratch
// directory instead.
type Paths struct {
	// RolesFile is the YAML role catalogue.
	RolesFile string `env:"WORKSTATION_ROLES_FILE" envDefault:"/etc/workstation/roles.yaml"`

	// AssignmentsFile is the JSON user-to-role assignment map.
	AssignmentsFile string `env:"WORKSTATION_ASSIGNMENTS_FILE" envDefault:"/etc/workstation/assignments.json"`

	// AuditLog is the append-only JSON-lines audit trail.
	AuditLog string `env:"WORKSTATION_AUDIT_LOG" envDefault:"/var/log/workstation/audit.log"`

	// SudoersDir is where per-user sudoers artifacts are written.
	SudoersDir string `env:"WORKSTATION_SUDOERS_DIR" envDefault:"/etc/sudoers.d"`
}
