// filepath: internal/repository/audit_repo_test.go
package repository

import (
	"path/filepath"
	"testing"
	"time"

	"contactgate/internal/models"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestInsertAndGetAuditEvents(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, action := range []string{"contact.create", "contact.update", "contact.delete"} {
		err := repo.InsertAuditEvent(models.AuditEvent{
			ID:        ulid.Make().String(),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Action:    action,
			Actor:     "abcd1234abcd1234",
			Resource:  "Contact:alice@x",
			Details:   `{"status":"success"}`,
		})
		require.NoError(t, err)
	}

	events, err := repo.GetAuditEvents(10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first
	assert.Equal(t, "contact.delete", events[0].Action)
	assert.Equal(t, "contact.create", events[2].Action)
	assert.Equal(t, base.Add(2*time.Minute), events[0].Timestamp)
	assert.Equal(t, "Contact:alice@x", events[0].Resource)
}

func TestGetAuditEvents_Limit(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		err := repo.InsertAuditEvent(models.AuditEvent{
			ID:        ulid.Make().String(),
			Timestamp: time.Now().UTC(),
			Action:    "contact.list",
			Actor:     "actor",
			Resource:  "Contact:*",
			Details:   "{}",
		})
		require.NoError(t, err)
	}

	events, err := repo.GetAuditEvents(2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestGetAuditEvents_Empty(t *testing.T) {
	repo := newTestRepo(t)

	events, err := repo.GetAuditEvents(10)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestDeleteAuditEventsBefore(t *testing.T) {
	repo := newTestRepo(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := repo.InsertAuditEvent(models.AuditEvent{
			ID:        ulid.Make().String(),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Action:    "contact.update",
			Actor:     "actor",
			Resource:  "Contact:alice@x",
			Details:   "{}",
		})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteAuditEventsBefore(base.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	events, err := repo.GetAuditEvents(10)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Nothing older than the cutoff remains.
	for _, event := range events {
		assert.False(t, event.Timestamp.Before(base.Add(2*time.Hour)))
	}
}

func TestMigrateUp_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	// NewRepository already migrated; a second run must be a no-op.
	assert.NoError(t, repo.MigrateUp())
}
