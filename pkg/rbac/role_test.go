package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/permission"
	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/rbac"
)

func perms(strs ...string) []permission.Permission {
	out := make([]permission.Permission, 0, len(strs))
	for _, s := range strs {
		out = append(out, permission.MustParse(s))
	}
	return out
}

func renderAll(resolved []permission.Permission) []string {
	out := make([]string, 0, len(resolved))
	for _, p := range resolved {
		out = append(out, p.String())
	}
	return out
}

func TestAllPermissionsInheritance(t *testing.T) {
	t.Parallel()

	registry := map[string]rbac.Role{
		"viewer": {
			Name:        "viewer",
			Permissions: perms("app:*:read"),
		},
		"developer": {
			Name:         "developer",
			Permissions:  perms("app:*:deploy"),
			InheritsFrom: []string{"viewer"},
		},
		"devops": {
			Name:         "devops",
			Permissions:  perms("system:services:manage"),
			InheritsFrom: []string{"developer"},
		},
	}

	resolved := rbac.AllPermissions(registry["devops"], registry)
	assert.ElementsMatch(t,
		[]string{"system:services:manage", "app:*:deploy", "app:*:read"},
		renderAll(resolved),
	)
}

func TestAllPermissionsCycleSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		registry map[string]rbac.Role
		start    string
		expected []string
	}{
		{
			name: "direct self inheritance",
			registry: map[string]rbac.Role{
				"loop": {
					Name:         "loop",
					Permissions:  perms("app:foo:read"),
					InheritsFrom: []string{"loop"},
				},
			},
			start:    "loop",
			expected: []string{"app:foo:read"},
		},
		{
			name: "transitive cycle",
			registry: map[string]rbac.Role{
				"a": {Name: "a", Permissions: perms("app:a:read"), InheritsFrom: []string{"b"}},
				"b": {Name: "b", Permissions: perms("app:b:read"), InheritsFrom: []string{"c"}},
				"c": {Name: "c", Permissions: perms("app:c:read"), InheritsFrom: []string{"a"}},
			},
			start:    "a",
			expected: []string{"app:a:read", "app:b:read", "app:c:read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resolved := rbac.AllPermissions(tt.registry[tt.start], tt.registry)
			assert.ElementsMatch(t, tt.expected, renderAll(resolved))
		})
	}
}

func TestAllPermissionsDeduplicatesAcrossParents(t *testing.T) {
	t.Parallel()

	registry := map[string]rbac.Role{
		"left":  {Name: "left", Permissions: perms("app:foo:read", "app:foo:write")},
		"right": {Name: "right", Permissions: perms("app:foo:read")},
		"child": {Name: "child", InheritsFrom: []string{"left", "right"}},
	}

	resolved := renderAll(rbac.AllPermissions(registry["child"], registry))

	count := 0
	for _, p := range resolved {
		if p == "app:foo:read" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate grants must collapse to one occurrence")
	assert.Len(t, resolved, 2)
}

func TestAllPermissionsSkipsUnknownParent(t *testing.T) {
	t.Parallel()

	registry := map[string]rbac.Role{
		"child": {
			Name:         "child",
			Permissions:  perms("app:foo:read"),
			InheritsFrom: []string{"ghost"},
		},
	}

	resolved := rbac.AllPermissions(registry["child"], registry)
	assert.Equal(t, []string{"app:foo:read"}, renderAll(resolved))
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	registry := map[string]rbac.Role{
		"developer": {Name: "developer", Permissions: perms("app:*:deploy")},
	}

	require.True(t, rbac.HasPermission(registry["developer"], permission.MustParse("app:myapp:deploy"), registry))
	require.False(t, rbac.HasPermission(registry["developer"], permission.MustParse("db:prod:write"), registry))
}

func TestSudoAccessValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, rbac.SudoNone.Validate())
	assert.NoError(t, rbac.SudoLimited.Validate())
	assert.NoError(t, rbac.SudoFull.Validate())
	assert.ErrorIs(t, rbac.SudoAccess("root").Validate(), rbac.ErrInvalidSudoAccess)
}
