package sudo

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/audit"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/rbac"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/system"
)

// AssignmentResolver is the narrow view of the RBAC manager the policy
// manager needs: the current role assignment per user.
type AssignmentResolver interface {
	Assignment(user string) (rbac.RoleAssignment, bool)
}

// Config carries the artifact location for a PolicyManager.
type Config struct {
	// SudoersDir is where per-user sudoers files are written,
	// normally /etc/sudoers.d.
	SudoersDir string
}

// CommandDecision is the outcome of TestCommand.
type CommandDecision struct {
	Allowed          bool
	PasswordRequired bool
	MFARequired      MFARequirement
	MatchedRule      string
	Reason           string
}

// PolicyManager owns the policy catalogue and the per-user sudoers
// artifacts derived from it.
//
// Not internally synchronized; embedders with concurrent callers must
// serialize ApplyPolicyForUser and RevokeSudoAccess.
type PolicyManager struct {
	policies map[string]Policy
	dir      string
	rbac     AssignmentResolver

	log       *slog.Logger
	trail     audit.Logger
	validator system.SudoersValidator
	files     system.FileWriter
	now       func() time.Time
}

// Option configures a PolicyManager.
type Option func(*PolicyManager)

// WithLogger sets the slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *PolicyManager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithAuditLogger sets the audit trail.
func WithAuditLogger(trail audit.Logger) Option {
	return func(m *PolicyManager) {
		if trail != nil {
			m.trail = trail
		}
	}
}

// WithValidator sets the sudoers syntax checker.
func WithValidator(v system.SudoersValidator) Option {
	return func(m *PolicyManager) {
		if v != nil {
			m.validator = v
		}
	}
}

// WithFileWriter sets the filesystem primitive used for artifacts.
func WithFileWriter(w system.FileWriter) Option {
	return func(m *PolicyManager) {
		if w != nil {
			m.files = w
		}
	}
}

// WithPolicies overrides the built-in policy catalogue.
func WithPolicies(policies map[string]Policy) Option {
	return func(m *PolicyManager) {
		if policies != nil {
			m.policies = policies
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *PolicyManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewPolicyManager creates a PolicyManager over the built-in catalogue.
// resolver may be nil, in which case TestCommand denies everything.
func NewPolicyManager(cfg Config, resolver AssignmentResolver, opts ...Option) *PolicyManager {
	m := &PolicyManager{
		policies:  BuiltinPolicies(),
		dir:       cfg.SudoersDir,
		rbac:      resolver,
		log:       slog.Default(),
		trail:     audit.NewNopLogger(),
		validator: system.NewVisudoValidator(nil),
		files:     system.OSFileWriter{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Policy returns the catalogue policy for a role, or ErrPolicyNotFound.
func (m *PolicyManager) Policy(role string) (Policy, error) {
	p, ok := m.policies[role]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrPolicyNotFound, role)
	}
	return p, nil
}

// ApplyPolicyForUser renders, validates and writes the sudoers artifact
// for the (user, role) pair.
//
// The two failure modes are distinguishable: a policy that fails the
// sudoers syntax check returns (false, nil) with a logged diagnostic and
// nothing written; a filesystem refusal returns an error.
func (m *PolicyManager) ApplyPolicyForUser(ctx context.Context, username, role string) (bool, error) {
	policy, ok := m.policies[role]
	if !ok {
		m.log.Warn("no sudo policy for role, applying deny-all", "role", role, "user", username)
		policy = Policy{Name: role, DefaultDeny: true}
	}

	content := []byte(RenderPolicy(username, policy, m.now()))
	path := m.artifactPath(username)

	// Validate against a staging copy. sudo ignores files with a dot in
	// the name, so the staging file is inert even inside /etc/sudoers.d.
	staging := path + ".tmp"
	if err := m.files.WriteFile(staging, content, system.SudoersFilePerm); err != nil {
		return false, fmt.Errorf("writing staging sudoers file: %w", err)
	}
	if err := m.validator.Validate(ctx, staging); err != nil {
		m.log.Error("sudoers validation failed, not applying policy",
			"user", username, "role", role, "error", err)
		if rmErr := m.files.Remove(staging); rmErr != nil {
			m.log.Warn("removing staging sudoers file failed", "path", staging, "error", rmErr)
		}
		m.trail.Log(ctx, "apply_policy",
			audit.WithUser(username),
			audit.WithError(err),
			audit.WithMetadata("policy", policy.Name),
		)
		return false, nil
	}
	if err := m.files.Remove(staging); err != nil {
		m.log.Warn("removing staging sudoers file failed", "path", staging, "error", err)
	}

	if err := m.files.WriteFile(path, content, system.SudoersFilePerm); err != nil {
		return false, fmt.Errorf("writing sudoers file %s: %w", path, err)
	}

	m.trail.Log(ctx, "apply_policy",
		audit.WithUser(username),
		audit.WithMetadata("policy", policy.Name),
		audit.WithMetadata("rules", len(policy.Rules)),
	)
	return true, nil
}

// TestCommand reports whether the user could run the command under their
// current role's policy. It fails closed: any ambiguity denies with a
// reason rather than an error.
func (m *PolicyManager) TestCommand(_ context.Context, username, command string) CommandDecision {
	if m.rbac == nil {
		return CommandDecision{Reason: "rbac manager unavailable"}
	}

	assignment, ok := m.rbac.Assignment(username)
	if !ok {
		return CommandDecision{Reason: fmt.Sprintf("no role assignment for user %q", username)}
	}
	if assignment.Expired(m.now()) {
		return CommandDecision{Reason: fmt.Sprintf("role assignment for user %q has expired", username)}
	}

	policy, ok := m.policies[assignment.RoleName]
	if !ok {
		return CommandDecision{Reason: fmt.Sprintf("no sudo policy for role %q", assignment.RoleName)}
	}

	rule, matched := policy.FindMatchingRule(command)
	if !matched {
		if policy.DefaultDeny {
			return CommandDecision{Reason: "no rule matched and policy denies by default"}
		}
		return CommandDecision{
			Allowed: true,
			Reason:  "no rule matched and policy allows by default",
		}
	}

	if !rule.AllowedNow(m.now()) {
		return CommandDecision{
			PasswordRequired: rule.PasswordRequired,
			MFARequired:      rule.MFARequired,
			MatchedRule:      rule.CommandPattern,
			Reason:           "matched rule is outside its allowed time window",
		}
	}

	return CommandDecision{
		Allowed:          true,
		PasswordRequired: rule.PasswordRequired,
		MFARequired:      rule.MFARequired,
		MatchedRule:      rule.CommandPattern,
		Reason:           fmt.Sprintf("matched rule %q", rule.CommandPattern),
	}
}

// RevokeSudoAccess deletes the user's sudoers artifact. Returns false with
// no error when there was nothing to remove.
func (m *PolicyManager) RevokeSudoAccess(ctx context.Context, username string) (bool, error) {
	path := m.artifactPath(username)
	if !m.files.Exists(path) {
		return false, nil
	}
	if err := m.files.Remove(path); err != nil {
		return false, fmt.Errorf("removing sudoers file %s: %w", path, err)
	}

	m.trail.Log(ctx, "revoke_access", audit.WithUser(username))
	return true, nil
}

// BindUser implements rbac.SudoBinder so role assignment can trigger
// policy application.
func (m *PolicyManager) BindUser(ctx context.Context, username, roleName string) error {
	ok, err := m.ApplyPolicyForUser(ctx, username, roleName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sudo policy for role %q failed validation", roleName)
	}
	return nil
}

func (m *PolicyManager) artifactPath(username string) string {
	return filepath.Join(m.dir, username)
}
