package rbac

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/audit"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/system"
)

// SudoBinder materializes sudo access for a user on the OS. Implemented by
// the sudo policy manager; nil means sudo binding is skipped.
type SudoBinder interface {
	BindUser(ctx context.Context, username, roleName string) error
}

// BinderFunc adapts a function to SudoBinder.
type BinderFunc func(ctx context.Context, username, roleName string) error

func (f BinderFunc) BindUser(ctx context.Context, username, roleName string) error {
	return f(ctx, username, roleName)
}

// Config carries the persistence locations for a Manager.
type Config struct {
	// RolesPath is the YAML role catalogue file.
	RolesPath string
	// AssignmentsPath is the JSON assignment map file.
	AssignmentsPath string
}

// Manager owns the role catalogue and user-to-role assignments.
//
// Not internally synchronized; see the package documentation.
type Manager struct {
	roles       map[string]Role
	assignments map[string]RoleAssignment

	roleSource  RoleSource
	assignStore AssignmentStore

	log    *slog.Logger
	trail  audit.Logger
	groups system.GroupManager
	sudo   SudoBinder
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithAuditLogger sets the audit trail.
func WithAuditLogger(trail audit.Logger) Option {
	return func(m *Manager) {
		if trail != nil {
			m.trail = trail
		}
	}
}

// WithGroupManager sets the OS group mutator used when binding roles.
// Without one, group binding is a logged no-op (dry run).
func WithGroupManager(groups system.GroupManager) Option {
	return func(m *Manager) {
		m.groups = groups
	}
}

// WithSudoBinder sets the collaborator that writes sudo artifacts when an
// assigned role carries sudo access.
func WithSudoBinder(binder SudoBinder) Option {
	return func(m *Manager) {
		m.sudo = binder
	}
}

// WithRoleSource overrides the file-backed role source.
func WithRoleSource(source RoleSource) Option {
	return func(m *Manager) {
		if source != nil {
			m.roleSource = source
		}
	}
}

// WithAssignmentStore overrides the file-backed assignment store.
func WithAssignmentStore(store AssignmentStore) Option {
	return func(m *Manager) {
		if store != nil {
			m.assignStore = store
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager loads the role catalogue and assignment map and returns a
// ready Manager.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	m := &Manager{
		roleSource:  NewFileRoleSource(cfg.RolesPath),
		assignStore: NewFileAssignmentStore(cfg.AssignmentsPath),
		log:         slog.Default(),
		trail:       audit.NewNopLogger(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	roles, err := m.roleSource.Load()
	if err != nil {
		return nil, fmt.Errorf("loading role catalogue: %w", err)
	}
	assignments, err := m.assignStore.Load()
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}

	m.roles = roles
	m.assignments = assignments
	return m, nil
}

// CreateRoleParams are the inputs for CreateCustomRole.
type CreateRoleParams struct {
	Name         string
	Description  string
	Permissions  []string
	SudoAccess   SudoAccess
	SudoCommands []string
	SystemGroups []string
	InheritsFrom []string
	CreatedBy    string
}

// CreateCustomRole adds a custom role to the catalogue and persists it.
// Fails with ErrRoleExists on a name collision; a malformed permission
// string or sudo access level surfaces immediately.
func (m *Manager) CreateCustomRole(ctx context.Context, params CreateRoleParams) (Role, error) {
	if _, exists := m.roles[params.Name]; exists {
		return Role{}, fmt.Errorf("%w: %q", ErrRoleExists, params.Name)
	}
	if err := params.SudoAccess.Validate(); err != nil {
		return Role{}, err
	}

	perms := make([]permission.Permission, 0, len(params.Permissions))
	for _, raw := range params.Permissions {
		p, err := permission.Parse(raw)
		if err != nil {
			return Role{}, err
		}
		perms = append(perms, p)
	}

	role := Role{
		Name:         params.Name,
		Description:  params.Description,
		Permissions:  perms,
		SudoAccess:   params.SudoAccess,
		SudoCommands: params.SudoCommands,
		SystemGroups: params.SystemGroups,
		InheritsFrom: params.InheritsFrom,
		Custom:       true,
		CreatedAt:    m.now(),
		CreatedBy:    params.CreatedBy,
	}
	m.roles[role.Name] = role

	// The in-memory role stands even if persistence fails; a later reload
	// may diverge, which is the documented trade-off.
	if err := m.roleSource.Save(m.roles); err != nil {
		m.log.Error("persisting role catalogue failed", "role", role.Name, "error", err)
	}

	m.trail.Log(ctx, "create_role",
		audit.WithActor(params.CreatedBy),
		audit.WithMetadata("role", role.Name),
		audit.WithMetadata("sudo_access", string(role.SudoAccess)),
	)
	return role, nil
}

// AssignRole binds user to roleName, overwriting any prior assignment.
// Fails with ErrRoleNotFound for an unknown role.
func (m *Manager) AssignRole(ctx context.Context, user, roleName, assignedBy string, expiresAt *time.Time, reason string) error {
	role, ok := m.roles[roleName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRoleNotFound, roleName)
	}

	m.assignments[user] = RoleAssignment{
		User:       user,
		RoleName:   roleName,
		AssignedAt: m.now(),
		AssignedBy: assignedBy,
		ExpiresAt:  expiresAt,
		Reason:     reason,
	}

	if err := m.assignStore.Save(m.assignments); err != nil {
		m.log.Error("persisting assignments failed", "user", user, "error", err)
	}

	m.applyRoleToSystem(ctx, user, role)

	m.trail.Log(ctx, "assign_role",
		audit.WithUser(user),
		audit.WithActor(assignedBy),
		audit.WithMetadata("role", roleName),
		audit.WithMetadata("reason", reason),
	)
	return nil
}

// RevokeRole removes the user's current assignment.
func (m *Manager) RevokeRole(ctx context.Context, user, revokedBy string) error {
	if _, ok := m.assignments[user]; !ok {
		return fmt.Errorf("%w: %q", ErrAssignmentNotFound, user)
	}
	delete(m.assignments, user)

	if err := m.assignStore.Save(m.assignments); err != nil {
		m.log.Error("persisting assignments failed", "user", user, "error", err)
	}

	m.trail.Log(ctx, "revoke_role",
		audit.WithUser(user),
		audit.WithActor(revokedBy),
	)
	return nil
}

// CheckPermission reports whether user currently holds a permission
// covering permString. It never returns an error: a missing assignment, an
// expired assignment, a deleted role or a malformed permission string all
// yield false.
func (m *Manager) CheckPermission(_ context.Context, user, permString string) bool {
	role, ok := m.currentRole(user)
	if !ok {
		return false
	}

	required, err := permission.Parse(permString)
	if err != nil {
		m.log.Debug("permission check with malformed permission", "user", user, "permission", permString)
		return false
	}

	return m.hasPermission(role, required)
}

// UserPermissions returns the user's resolved permission list, or an empty
// slice under the same ambiguity-means-empty rule as CheckPermission.
func (m *Manager) UserPermissions(_ context.Context, user string) []permission.Permission {
	role, ok := m.currentRole(user)
	if !ok {
		return nil
	}
	return resolvePermissions(role, m.roles, make(map[string]bool), m.log)
}

// Role returns the named role from the catalogue.
func (m *Manager) Role(name string) (Role, bool) {
	role, ok := m.roles[name]
	return role, ok
}

// Roles returns a copy of the catalogue.
func (m *Manager) Roles() map[string]Role {
	return copyRoles(m.roles)
}

// Assignment returns the user's current assignment, expired or not.
func (m *Manager) Assignment(user string) (RoleAssignment, bool) {
	a, ok := m.assignments[user]
	return a, ok
}

// Assignments returns a copy of the assignment map.
func (m *Manager) Assignments() map[string]RoleAssignment {
	out := make(map[string]RoleAssignment, len(m.assignments))
	for user, a := range m.assignments {
		out[user] = a
	}
	return out
}

func (m *Manager) currentRole(user string) (Role, bool) {
	assignment, ok := m.assignments[user]
	if !ok {
		return Role{}, false
	}
	if assignment.Expired(m.now()) {
		return Role{}, false
	}
	role, ok := m.roles[assignment.RoleName]
	if !ok {
		return Role{}, false
	}
	return role, true
}

func (m *Manager) hasPermission(role Role, required permission.Permission) bool {
	for _, granted := range resolvePermissions(role, m.roles, make(map[string]bool), m.log) {
		if granted.Matches(required) {
			return true
		}
	}
	return false
}

// applyRoleToSystem binds the role's OS privileges. Failures here never
// fail the assignment; the assignment map is the source of truth and
// binding can be retried.
func (m *Manager) applyRoleToSystem(ctx context.Context, user string, role Role) {
	if m.groups == nil {
		m.log.Info("no group manager configured, skipping group binding",
			"user", user, "role", role.Name)
	} else {
		for _, group := range role.SystemGroups {
			if err := m.groups.EnsureGroup(ctx, group); err != nil {
				m.log.Error("ensuring group failed", "group", group, "error", err)
				continue
			}
			if err := m.groups.AddUserToGroup(ctx, user, group); err != nil {
				m.log.Error("adding user to group failed", "user", user, "group", group, "error", err)
			}
		}
	}

	if role.SudoAccess != SudoNone && m.sudo != nil {
		if err := m.sudo.BindUser(ctx, user, role.Name); err != nil {
			m.log.Error("binding sudo access failed", "user", user, "role", role.Name, "error", err)
		}
	}
}
