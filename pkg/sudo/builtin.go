package sudo

// BuiltinPolicies returns the policy catalogue keyed by role name.
//
// The devops policy extends developer's rule list with broader,
// password-required rules. Order is preserved so the specific developer
// rules still win first.
func BuiltinPolicies() map[string]Policy {
	developer := developerRules()

	devops := make([]CommandRule, 0, len(developer)+4)
	devops = append(devops, developer...)
	devops = append(devops,
		CommandRule{
			CommandPattern:   "systemctl * *",
			PasswordRequired: true,
			MFARequired:      MFANone,
			Description:      "Manage any systemd unit",
			RiskLevel:        "medium",
		},
		CommandRule{
			CommandPattern:   "apt-get *",
			PasswordRequired: true,
			MFARequired:      MFAOptional,
			Description:      "Manage system packages",
			RiskLevel:        "medium",
		},
		CommandRule{
			CommandPattern:   "docker *",
			PasswordRequired: true,
			MFARequired:      MFANone,
			Description:      "Full docker control",
			RiskLevel:        "medium",
		},
		CommandRule{
			// Maintenance window only.
			CommandPattern:   "reboot",
			PasswordRequired: true,
			MFARequired:      MFARequired,
			Description:      "Reboot the host",
			RiskLevel:        "high",
			AllowedHours:     []int{2, 3, 4},
			RequiresReason:   true,
		},
	)

	return map[string]Policy{
		"developer": {
			Name:        "developer",
			Rules:       developer,
			DefaultDeny: true,
		},
		"devops": {
			Name:        "devops",
			Rules:       devops,
			DefaultDeny: true,
		},
		"admin": {
			Name: "admin",
			Rules: []CommandRule{
				{
					CommandPattern:   "*",
					PasswordRequired: true,
					MFARequired:      MFANone,
					Description:      "Full administrative access",
					RiskLevel:        "high",
				},
			},
			DefaultDeny: false,
		},
		"viewer": {
			Name:        "viewer",
			DefaultDeny: true,
		},
	}
}

func developerRules() []CommandRule {
	return []CommandRule{
		{
			CommandPattern: "systemctl restart myapp",
			MFARequired:    MFANone,
			Description:    "Restart the application service",
			RiskLevel:      "low",
		},
		{
			CommandPattern: "systemctl status *",
			MFARequired:    MFANone,
			Description:    "Inspect service status",
			RiskLevel:      "low",
		},
		{
			CommandPattern: "docker logs *",
			MFARequired:    MFANone,
			Description:    "Read container logs",
			RiskLevel:      "low",
		},
		{
			CommandPattern: "docker ps",
			MFARequired:    MFANone,
			Description:    "List running containers",
			RiskLevel:      "low",
		},
		{
			CommandPattern: "journalctl *",
			MFARequired:    MFANone,
			Description:    "Read the system journal",
			RiskLevel:      "low",
		},
	}
}
