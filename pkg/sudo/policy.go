package sudo

import "time"

// Policy is an ordered, first-match command authorization list with a
// default posture for commands no rule covers.
type Policy struct {
	Name        string
	Rules       []CommandRule
	DefaultDeny bool
}

// FindMatchingRule returns the first rule, in declaration order, whose
// pattern accepts the command.
func (p Policy) FindMatchingRule(command string) (CommandRule, bool) {
	for _, rule := range p.Rules {
		if rule.MatchesCommand(command) {
			return rule, true
		}
	}
	return CommandRule{}, false
}

// IsCommandAllowed reports whether the command is authorized at the given
// time: the matched rule's time window when a rule matches, otherwise the
// policy's default posture.
func (p Policy) IsCommandAllowed(command string, now time.Time) bool {
	if rule, ok := p.FindMatchingRule(command); ok {
		return rule.AllowedNow(now)
	}
	return !p.DefaultDeny
}
