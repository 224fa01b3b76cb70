package sudo

import (
	"fmt"
	"strings"
	"time"
)

const managedByMarker = "Managed by debian-vps-workstation - do not edit by hand"

// RenderPolicy produces the sudoers file body for one user under one
// policy: a header block, a passwordless section and a password-required
// section. Each entry is preceded by the rule's description as a comment.
func RenderPolicy(username string, policy Policy, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sudo policy: %s\n", policy.Name)
	fmt.Fprintf(&b, "# Generated: %s\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "# %s\n", managedByMarker)

	var passwordless, passworded []CommandRule
	for _, rule := range policy.Rules {
		if rule.PasswordRequired {
			passworded = append(passworded, rule)
		} else {
			passwordless = append(passwordless, rule)
		}
	}

	if len(passwordless) > 0 {
		b.WriteString("\n# Passwordless commands\n")
		for _, rule := range passwordless {
			if rule.Description != "" {
				fmt.Fprintf(&b, "# %s\n", rule.Description)
			}
			fmt.Fprintf(&b, "%s ALL=(ALL) NOPASSWD: %s\n", username, rule.CommandPattern)
		}
	}

	if len(passworded) > 0 {
		b.WriteString("\n# Password-required commands\n")
		for _, rule := range passworded {
			if rule.Description != "" {
				fmt.Fprintf(&b, "# %s\n", rule.Description)
			}
			fmt.Fprintf(&b, "%s ALL=(ALL) %s\n", username, rule.CommandPattern)
		}
	}

	return b.String()
}
