package rbac

// inMemRoleSource is a RoleSource for tests and embedders that manage the
// catalogue themselves. Load returns a copy so callers cannot mutate the
// seed; Save replaces it.
type inMemRoleSource struct {
	roles map[string]Role
}

// NewInMemRoleSource creates an in-memory role source seeded with roles.
func NewInMemRoleSource(roles map[string]Role) RoleSource {
	return &inMemRoleSource{roles: copyRoles(roles)}
}

func (s *inMemRoleSource) Load() (map[string]Role, error) {
	return copyRoles(s.roles), nil
}

func (s *inMemRoleSource) Save(roles map[string]Role) error {
	s.roles = copyRoles(roles)
	return nil
}

// inMemAssignmentStore is the AssignmentStore counterpart.
type inMemAssignmentStore struct {
	assignments map[string]RoleAssignment
}

// NewInMemAssignmentStore creates an empty in-memory assignment store.
func NewInMemAssignmentStore() AssignmentStore {
	return &inMemAssignmentStore{assignments: make(map[string]RoleAssignment)}
}

func (s *inMemAssignmentStore) Load() (map[string]RoleAssignment, error) {
	out := make(map[string]RoleAssignment, len(s.assignments))
	for k, v := range s.assignments {
		out[k] = v
	}
	return out, nil
}

func (s *inMemAssignmentStore) Save(assignments map[string]RoleAssignment) error {
	out := make(map[string]RoleAssignment, len(assignments))
	for k, v := range assignments {
		out[k] = v
	}
	s.assignments = out
	return nil
}

func copyRoles(roles map[string]Role) map[string]Role {
	out := make(map[string]Role, len(roles))
	for name, role := range roles {
		out[name] = role
	}
	return out
}
