package rbac

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/system"
)

// RoleSource loads and persists the role catalogue.
type RoleSource interface {
	Load() (map[string]Role, error)
	Save(roles map[string]Role) error
}

// AssignmentStore loads and persists user-to-role assignments.
type AssignmentStore interface {
	Load() (map[string]RoleAssignment, error)
	Save(assignments map[string]RoleAssignment) error
}

// roleDoc is the on-disk YAML shape of one catalogue entry.
type roleDoc struct {
	Description  string   `yaml:"description"`
	Permissions  []string `yaml:"permissions"`
	SudoAccess   string   `yaml:"sudo_access"`
	SudoCommands []string `yaml:"sudo_commands,omitempty"`
	SystemGroups []string `yaml:"system_groups,omitempty"`
	InheritsFrom []string `yaml:"inherits_from,omitempty"`
	Custom       bool     `yaml:"custom"`
}

// FileRoleSource persists the catalogue as a human-editable YAML document
// mapping role names to role definitions. Built-in default roles are merged
// in at load so a fresh system starts usable.
type FileRoleSource struct {
	path string
}

// NewFileRoleSource creates a role source backed by the YAML file at path.
func NewFileRoleSource(path string) *FileRoleSource {
	return &FileRoleSource{path: path}
}

// Load reads the catalogue. A missing file yields the built-in defaults;
// otherwise defaults fill in any role the document does not define.
func (s *FileRoleSource) Load() (map[string]Role, error) {
	roles := DefaultRoles()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return roles, nil
		}
		return nil, err
	}

	var docs map[string]roleDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing role catalogue %s: %w", s.path, err)
	}

	for name, doc := range docs {
		role, err := docToRole(name, doc)
		if err != nil {
			return nil, fmt.Errorf("role %q in %s: %w", name, s.path, err)
		}
		roles[name] = role
	}
	return roles, nil
}

// Save rewrites the catalogue with every known role, sorted by name for
// stable diffs.
func (s *FileRoleSource) Save(roles map[string]Role) error {
	docs := make(map[string]roleDoc, len(roles))
	for name, role := range roles {
		docs[name] = roleToDoc(role)
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return err
	}
	return writeStateFile(s.path, data)
}

func docToRole(name string, doc roleDoc) (Role, error) {
	access := SudoAccess(doc.SudoAccess)
	if doc.SudoAccess == "" {
		access = SudoNone
	}
	if err := access.Validate(); err != nil {
		return Role{}, err
	}

	perms := make([]permission.Permission, 0, len(doc.Permissions))
	for _, raw := range doc.Permissions {
		p, err := permission.Parse(raw)
		if err != nil {
			return Role{}, err
		}
		perms = append(perms, p)
	}

	return Role{
		Name:         name,
		Description:  doc.Description,
		Permissions:  perms,
		SudoAccess:   access,
		SudoCommands: doc.SudoCommands,
		SystemGroups: doc.SystemGroups,
		InheritsFrom: doc.InheritsFrom,
		Custom:       doc.Custom,
	}, nil
}

func roleToDoc(role Role) roleDoc {
	perms := make([]string, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		perms = append(perms, p.String())
	}
	sort.Strings(perms)

	return roleDoc{
		Description:  role.Description,
		Permissions:  perms,
		SudoAccess:   string(role.SudoAccess),
		SudoCommands: role.SudoCommands,
		SystemGroups: role.SystemGroups,
		InheritsFrom: role.InheritsFrom,
		Custom:       role.Custom,
	}
}

// FileAssignmentStore persists assignments as a JSON document mapping
// usernames to their current assignment.
type FileAssignmentStore struct {
	path string
}

// NewFileAssignmentStore creates an assignment store backed by the JSON
// file at path.
func NewFileAssignmentStore(path string) *FileAssignmentStore {
	return &FileAssignmentStore{path: path}
}

// Load reads the assignment map. A missing file yields an empty map.
func (s *FileAssignmentStore) Load() (map[string]RoleAssignment, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]RoleAssignment), nil
		}
		return nil, err
	}

	var assignments map[string]RoleAssignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("parsing assignments %s: %w", s.path, err)
	}
	if assignments == nil {
		assignments = make(map[string]RoleAssignment)
	}
	return assignments, nil
}

// Save rewrites the assignment map.
func (s *FileAssignmentStore) Save(assignments map[string]RoleAssignment) error {
	data, err := json.MarshalIndent(assignments, "", "  ")
	if err != nil {
		return err
	}
	return writeStateFile(s.path, data)
}

func writeStateFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, system.StateDirPerm); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, system.StateFilePerm)
}
