package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// SudoersValidator checks a rendered sudoers file for syntax errors.
type SudoersValidator interface {
	// Validate returns nil when the file at path is syntactically valid.
	// An unavailable checker is treated as a pass, not a failure.
	Validate(ctx context.Context, path string) error
}

// VisudoValidator runs `visudo -cf` against the candidate file.
type VisudoValidator struct {
	log *slog.Logger
}

// NewVisudoValidator creates a validator backed by the visudo binary.
func NewVisudoValidator(log *slog.Logger) *VisudoValidator {
	if log == nil {
		log = slog.Default()
	}
	return &VisudoValidator{log: log}
}

// Validate runs the syntax check. A missing visudo binary (sandboxed or
// minimal environments) is logged and treated as a pass; an actual syntax
// rejection is returned with visudo's diagnostic.
func (v *VisudoValidator) Validate(ctx context.Context, path string) error {
	out, err := exec.CommandContext(ctx, "visudo", "-cf", path).CombinedOutput()
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		v.log.Warn("visudo unavailable, skipping sudoers validation", "path", path)
		return nil
	}
	return fmt.Errorf("visudo rejected %s: %w: %s", path, err, out)
}

// NopSudoersValidator accepts every file. Used in tests and dry runs.
type NopSudoersValidator struct{}

func (NopSudoersValidator) Validate(context.Context, string) error { return nil }
