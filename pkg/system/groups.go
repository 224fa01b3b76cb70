package system

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// GroupManager mutates OS group membership.
type GroupManager interface {
	// EnsureGroup creates the group if it does not exist.
	EnsureGroup(ctx context.Context, name string) error

	// AddUserToGroup adds user to group as a supplementary group.
	AddUserToGroup(ctx context.Context, user, group string) error
}

// ExecGroupManager shells out to the standard Debian user tooling.
type ExecGroupManager struct {
	log *slog.Logger
}

// NewExecGroupManager creates a GroupManager backed by groupadd/usermod.
func NewExecGroupManager(log *slog.Logger) *ExecGroupManager {
	if log == nil {
		log = slog.Default()
	}
	return &ExecGroupManager{log: log}
}

// EnsureGroup creates the group via groupadd -f, which succeeds when the
// group already exists.
func (m *ExecGroupManager) EnsureGroup(ctx context.Context, name string) error {
	out, err := exec.CommandContext(ctx, "groupadd", "-f", name).CombinedOutput()
	if err != nil {
		return fmt.Errorf("groupadd %s: %w: %s", name, err, out)
	}
	return nil
}

// AddUserToGroup appends the group to the user's supplementary groups.
func (m *ExecGroupManager) AddUserToGroup(ctx context.Context, user, group string) error {
	out, err := exec.CommandContext(ctx, "usermod", "-aG", group, user).CombinedOutput()
	if err != nil {
		return fmt.Errorf("usermod -aG %s %s: %w: %s", group, user, err, out)
	}
	m.log.Debug("added user to group", "user", user, "group", group)
	return nil
}

// NopGroupManager logs requested mutations and succeeds without touching
// the host. Used unprivileged and in dry runs.
type NopGroupManager struct {
	log *slog.Logger
}

// NewNopGroupManager creates a GroupManager that only logs.
func NewNopGroupManager(log *slog.Logger) *NopGroupManager {
	if log == nil {
		log = slog.Default()
	}
	return &NopGroupManager{log: log}
}

func (m *NopGroupManager) EnsureGroup(_ context.Context, name string) error {
	m.log.Info("dry-run: would ensure group", "group", name)
	return nil
}

func (m *NopGroupManager) AddUserToGroup(_ context.Context, user, group string) error {
	m.log.Info("dry-run: would add user to group", "user", user, "group", group)
	return nil
}
