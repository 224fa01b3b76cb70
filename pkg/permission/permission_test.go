package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected permission.Permission
		wantErr  bool
	}{
		{
			name:     "three segments",
			input:    "app:myapp:deploy",
			expected: permission.Permission{Scope: "app", Resource: "myapp", Action: "deploy"},
		},
		{
			name:     "two segments defaults action to wildcard",
			input:    "app:myapp",
			expected: permission.Permission{Scope: "app", Resource: "myapp", Action: "*"},
		},
		{
			name:     "wildcard segments",
			input:    "app:*:deploy",
			expected: permission.Permission{Scope: "app", Resource: "*", Action: "deploy"},
		},
		{
			name:    "single segment",
			input:   "app",
			wantErr: true,
		},
		{
			name:    "four segments",
			input:   "app:myapp:deploy:now",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty middle segment",
			input:   "app::deploy",
			wantErr: true,
		},
		{
			name:    "trailing colon",
			input:   "app:myapp:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := permission.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, permission.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"app:myapp:deploy",
		"db:prod:write",
		"app:*:deploy",
		"*:*:*",
		"system:packages:install",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			p, err := permission.Parse(input)
			require.NoError(t, err)

			rendered := p.String()
			reparsed, err := permission.Parse(rendered)
			require.NoError(t, err)

			assert.Equal(t, p, reparsed)
			assert.Equal(t, rendered, reparsed.String())
		})
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		granted  string
		required string
		expected bool
	}{
		{
			name:     "exact match",
			granted:  "app:myapp:deploy",
			required: "app:myapp:deploy",
			expected: true,
		},
		{
			name:     "resource wildcard matches",
			granted:  "app:*:deploy",
			required: "app:myapp:deploy",
			expected: true,
		},
		{
			name:     "resource wildcard does not cross scope",
			granted:  "app:*:deploy",
			required: "db:myapp:deploy",
			expected: false,
		},
		{
			name:     "full wildcard matches anything",
			granted:  "*:*:*",
			required: "db:prod:write",
			expected: true,
		},
		{
			name:     "action mismatch",
			granted:  "app:myapp:read",
			required: "app:myapp:deploy",
			expected: false,
		},
		{
			name:     "case sensitive",
			granted:  "app:MyApp:deploy",
			required: "app:myapp:deploy",
			expected: false,
		},
		{
			name:     "required wildcard is literal against literal grant",
			granted:  "app:myapp:deploy",
			required: "app:*:deploy",
			expected: false,
		},
		{
			name:     "required wildcard matches granted wildcard",
			granted:  "app:*:deploy",
			required: "app:*:deploy",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			granted := permission.MustParse(tt.granted)
			required := permission.MustParse(tt.required)
			assert.Equal(t, tt.expected, granted.Matches(required))
		})
	}
}

func TestMatchesString(t *testing.T) {
	t.Parallel()

	granted := permission.MustParse("app:*:deploy")

	assert.True(t, granted.MatchesString("app:myapp:deploy"))
	assert.False(t, granted.MatchesString("db:prod:write"))
	assert.False(t, granted.MatchesString("not-a-permission"))
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		permission.MustParse("broken")
	})
}
