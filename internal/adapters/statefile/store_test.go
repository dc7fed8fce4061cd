package statefile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cereja/internal/domain"
)

func testOperation(repoPath string) *domain.Operation {
	op := domain.NewOperation("11111111-2222-3333-4444-555555555555", repoPath, time.Now().UTC())
	op.Phase = domain.PhasePicking
	op.SourceBranch = "develop"
	op.TargetBranch = "release/2025.11"
	op.ReleaseName = "2025.11.1"
	op.Items = []domain.Item{
		{PullRequestID: 11, Title: "First", MergeCommit: "abc", Status: domain.ItemApplied},
		{PullRequestID: 12, Title: "Second", MergeCommit: "def", Status: domain.ItemPending},
	}
	op.CurrentIndex = 1
	return op
}

func TestKey_IsStableAndPathIndependent(t *testing.T) {
	assert.Equal(t, Key("/home/dev/repo"), Key("/home/dev/repo"))
	assert.Equal(t, Key("/home/dev/repo"), Key("/home/dev//repo/"))
	assert.NotEqual(t, Key("/home/dev/repo"), Key("/home/dev/other"))
	assert.Len(t, Key("/home/dev/repo"), 12)
}

func TestPaths_LockSitsNextToRecord(t *testing.T) {
	record := RecordPath("/state/operations", "/home/dev/repo")
	lock := LockPath("/state/operations", "/home/dev/repo")

	assert.Equal(t, "/state/operations", filepath.Dir(record))
	assert.Equal(t, "/state/operations", filepath.Dir(lock))
	assert.Equal(t, ".json", filepath.Ext(record))
	assert.Equal(t, ".lock", filepath.Ext(lock))
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "operations"))
	op := testOperation("/home/dev/payments")

	require.NoError(t, store.Save(context.Background(), op))

	loaded, err := store.Load(context.Background(), "/home/dev/payments")
	require.NoError(t, err)
	assert.Equal(t, op.OperationID, loaded.OperationID)
	assert.Equal(t, op.Items, loaded.Items)
	assert.Equal(t, op.CurrentIndex, loaded.CurrentIndex)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "operations")
	store := NewStore(dir)

	require.NoError(t, store.Save(context.Background(), testOperation("/home/dev/payments")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}

func TestStore_LoadMissingRecord(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background(), "/home/dev/never-started")

	assert.ErrorIs(t, err, domain.ErrNoOperation)
}

func TestStore_LoadCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	path := store.RecordPath("/home/dev/payments")
	require.NoError(t, os.WriteFile(path, []byte("{\"schema_version\": 1, truncated"), 0644))

	_, err := store.Load(context.Background(), "/home/dev/payments")

	assert.ErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestStore_LoadUnsupportedSchema(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	path := store.RecordPath("/home/dev/payments")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": 7}`), 0644))

	_, err := store.Load(context.Background(), "/home/dev/payments")

	assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)
	assert.NotErrorIs(t, err, domain.ErrCorruptRecord)
}

func TestStore_LoadRejectsInvariantViolations(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	op := testOperation("/home/dev/payments")
	require.NoError(t, store.Save(context.Background(), op))

	// Corrupt the cursor directly on disk, as a buggy writer would
	path := store.RecordPath("/home/dev/payments")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupted := strings.Replace(string(data), `"current_index": 1`, `"current_index": 9`, 1)
	require.NotEqual(t, string(data), corrupted)
	require.NoError(t, os.WriteFile(path, []byte(corrupted), 0644))

	_, err = store.Load(context.Background(), "/home/dev/payments")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorruptRecord)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "current_index", verr.Field)
}

func TestStore_SaveRefusesInvalidRecord(t *testing.T) {
	store := NewStore(t.TempDir())
	op := testOperation("/home/dev/payments")
	require.NoError(t, store.Save(context.Background(), op))

	bad := op.Clone()
	bad.CurrentIndex = -2
	err := store.Save(context.Background(), bad)
	require.Error(t, err)

	// The previous record must still load unharmed
	loaded, err := store.Load(context.Background(), "/home/dev/payments")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.CurrentIndex)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	op := testOperation("/home/dev/payments")
	require.NoError(t, store.Save(context.Background(), op))

	require.NoError(t, store.Delete(context.Background(), "/home/dev/payments"))
	require.NoError(t, store.Delete(context.Background(), "/home/dev/payments"))

	_, err := store.Load(context.Background(), "/home/dev/payments")
	assert.ErrorIs(t, err, domain.ErrNoOperation)
}

func TestStore_ListSkipsUnreadableRecords(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(context.Background(), testOperation("/home/dev/payments")))
	require.NoError(t, store.Save(context.Background(), testOperation("/home/dev/billing")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pick-ffffffffffff.json"), []byte("junk"), 0644))

	ops, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, ops, 2)
}
