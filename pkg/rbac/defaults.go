package rbac

import "github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"

// DefaultRoles returns the built-in role catalogue shipped with the tool.
//
// viewer < developer < devops form an inheritance chain; admin stands alone
// with a full wildcard grant. Custom roles layer on top via the catalogue
// file.
func DefaultRoles() map[string]Role {
	return map[string]Role{
		"viewer": {
			Name:        "viewer",
			Description: "Read-only access to application state and logs",
			Permissions: []permission.Permission{
				permission.MustParse("app:*:read"),
				permission.MustParse("logs:*:read"),
				permission.MustParse("system:status:read"),
			},
			SudoAccess: SudoNone,
		},
		"developer": {
			Name:        "developer",
			Description: "Deploy and operate applications",
			Permissions: []permission.Permission{
				permission.MustParse("app:*:deploy"),
				permission.MustParse("app:*:restart"),
				permission.MustParse("docker:*:read"),
			},
			SudoAccess: SudoLimited,
			SudoCommands: []string{
				"systemctl restart myapp",
				"systemctl status *",
				"docker logs *",
				"docker ps",
			},
			SystemGroups: []string{"docker"},
			InheritsFrom: []string{"viewer"},
		},
		"devops": {
			Name:        "devops",
			Description: "Operate services and system infrastructure",
			Permissions: []permission.Permission{
				permission.MustParse("system:services:manage"),
				permission.MustParse("system:packages:install"),
				permission.MustParse("docker:*:*"),
			},
			SudoAccess: SudoLimited,
			SudoCommands: []string{
				"systemctl * *",
				"apt-get *",
				"docker *",
			},
			SystemGroups: []string{"docker", "adm"},
			InheritsFrom: []string{"developer"},
		},
		"admin": {
			Name:        "admin",
			Description: "Full administrative access",
			Permissions: []permission.Permission{
				permission.MustParse("*:*:*"),
			},
			SudoAccess:   SudoFull,
			SystemGroups: []string{"sudo", "adm"},
		},
	}
}
