package audit_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunaamelia/debian-vps-workstation-sub000/pkg/audit"
)

func TestFileStorageAppendsJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit", "audit.log")
	storage, err := audit.NewFileStorage(path)
	require.NoError(t, err)

	trail := audit.NewLogger(storage)
	ctx := context.Background()

	trail.Log(ctx, "assign_role",
		audit.WithUser("alice"),
		audit.WithActor("root"),
		audit.WithMetadata("role", "developer"),
	)
	trail.Log(ctx, "revoke_access",
		audit.WithUser("alice"),
		audit.WithResult(audit.ResultFailure),
	)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []audit.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event audit.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, events, 2)
	assert.Equal(t, "assign_role", events[0].Action)
	assert.Equal(t, "alice", events[0].User)
	assert.Equal(t, "root", events[0].Actor)
	assert.Equal(t, audit.ResultSuccess, events[0].Result)
	assert.Equal(t, "developer", events[0].Metadata["role"])
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())

	assert.Equal(t, "revoke_access", events[1].Action)
	assert.Equal(t, audit.ResultFailure, events[1].Result)
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

func TestFileStorageOnlyAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit.log")
	storage, err := audit.NewFileStorage(path)
	require.NoError(t, err)

	trail := audit.NewLogger(storage)
	trail.Log(context.Background(), "create_role")

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	trail.Log(context.Background(), "assign_role")

	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second[:len(first)]), "existing lines must be untouched")
	assert.Greater(t, len(second), len(first))
}

type failingStorage struct{}

func (failingStorage) Store(context.Context, audit.Event) error {
	return errors.New("disk full")
}

func TestLoggerSwallowsStorageFailure(t *testing.T) {
	t.Parallel()

	trail := audit.NewLogger(failingStorage{},
		audit.WithSlog(slog.New(slog.DiscardHandler)),
	)

	assert.NotPanics(t, func() {
		trail.Log(context.Background(), "assign_role", audit.WithUser("alice"))
	})
}

type captureStorage struct {
	events []audit.Event
}

func (c *captureStorage) Store(_ context.Context, event audit.Event) error {
	c.events = append(c.events, event)
	return nil
}

func TestLoggerRejectsActionlessEvent(t *testing.T) {
	t.Parallel()

	storage := &captureStorage{}
	trail := audit.NewLogger(storage, audit.WithSlog(slog.New(slog.DiscardHandler)))

	trail.Log(context.Background(), "")
	assert.Empty(t, storage.events)
}

func TestLoggerWithClock(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	storage := &captureStorage{}
	trail := audit.NewLogger(storage, audit.WithClock(func() time.Time { return fixed }))

	trail.Log(context.Background(), "apply_policy")

	require.Len(t, storage.events, 1)
	assert.Equal(t, fixed, storage.events[0].Timestamp)
}

func TestWithErrorSetsResult(t *testing.T) {
	t.Parallel()

	storage := &captureStorage{}
	trail := audit.NewLogger(storage)

	trail.Log(context.Background(), "apply_policy", audit.WithError(errors.New("visudo rejected file")))

	require.Len(t, storage.events, 1)
	assert.Equal(t, audit.ResultError, storage.events[0].Result)
	assert.Equal(t, "visudo rejected file", storage.events[0].Error)
}
