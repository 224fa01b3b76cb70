package sudo

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

// MFARequirement is the multi-factor expectation attached to a rule.
type MFARequirement string

const (
	MFANone     MFARequirement = "none"
	MFAOptional MFARequirement = "optional"
	MFARequired MFARequirement = "required"
)

// CommandRule authorizes one command pattern. Patterns are globs where "*"
// matches any run of characters; everything else is literal.
type CommandRule struct {
	CommandPattern   string
	PasswordRequired bool
	MFARequired      MFARequirement
	Description      string
	RiskLevel        string

	// AllowedHours and AllowedDays restrict when the command may run.
	// Empty means unrestricted.
	AllowedHours []int
	AllowedDays  []time.Weekday

	// MaxExecutionsPerDay and RequiresReason are declared policy metadata.
	// Matching does not enforce them; enforcement would require execution
	// tracking, which is session territory outside this core.
	MaxExecutionsPerDay int
	RequiresReason      bool
}

// MatchesCommand reports whether the rule's pattern accepts the entire
// command string. A pattern that fails to compile never matches.
func (r CommandRule) MatchesCommand(command string) bool {
	re, err := compilePattern(r.CommandPattern)
	if err != nil {
		return false
	}
	return re.MatchString(command)
}

// AllowedNow reports whether the rule's time window, if any, covers now.
func (r CommandRule) AllowedNow(now time.Time) bool {
	if len(r.AllowedHours) > 0 && !slices.Contains(r.AllowedHours, now.Hour()) {
		return false
	}
	if len(r.AllowedDays) > 0 && !slices.Contains(r.AllowedDays, now.Weekday()) {
		return false
	}
	return true
}

// compilePattern turns a glob into an anchored regexp: literal text is
// escaped, "*" becomes ".*".
func compilePattern(pattern string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*`, `.*`)
	return regexp.Compile("^" + escaped + "$")
}
