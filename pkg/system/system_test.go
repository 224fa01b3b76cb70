package system_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/system"
)

func TestOSFileWriterWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sudoers.d", "alice")
	var w system.OSFileWriter

	require.NoError(t, w.WriteFile(path, []byte("alice ALL=(ALL) NOPASSWD: /bin/true\n"), system.SudoersFilePerm))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, system.SudoersFilePerm, info.Mode().Perm())
	assert.True(t, w.Exists(path))
}

func TestOSFileWriterForcesMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	var w system.OSFileWriter
	require.NoError(t, w.WriteFile(path, []byte("{}"), system.StateFilePerm))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, system.StateFilePerm, info.Mode().Perm())
}

func TestOSFileWriterRemove(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact")
	var w system.OSFileWriter
	require.NoError(t, w.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, w.Remove(path))
	assert.False(t, w.Exists(path))
	assert.Error(t, w.Remove(path))
}

func TestNopGroupManager(t *testing.T) {
	t.Parallel()

	m := system.NewNopGroupManager(slog.New(slog.DiscardHandler))
	ctx := context.Background()

	assert.NoError(t, m.EnsureGroup(ctx, "docker"))
	assert.NoError(t, m.AddUserToGroup(ctx, "alice", "docker"))
}

func TestNopSudoersValidator(t *testing.T) {
	t.Parallel()

	var v system.NopSudoersValidator
	assert.NoError(t, v.Validate(context.Background(), "/nonexistent"))
}
