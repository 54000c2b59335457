// filepath: internal/repository/audit_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"contactgate/internal/db/migrations"
	"contactgate/internal/logging"
	"contactgate/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepository stores audit events in a local SQLite file.
type SQLiteRepository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens (and if necessary creates) the audit database and
// brings the schema up to date.
func NewRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	repo := &SQLiteRepository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := repo.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// MigrateUp applies all pending embedded migrations.
func (s *SQLiteRepository) MigrateUp() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to migrate audit database: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteRepository) Close() error {
	return s.DB.Close()
}

// InsertAuditEvent stores a single audit event.
func (s *SQLiteRepository) InsertAuditEvent(event models.AuditEvent) error {
	query := s.Builder.
		Insert("audit_events").
		Columns("id", "timestamp", "action", "actor", "resource", "details").
		Values(event.ID, event.Timestamp.UTC().Format(time.RFC3339Nano), event.Action, event.Actor, event.Resource, event.Details)

	if _, err := query.RunWith(s.DB).Exec(); err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// DeleteAuditEventsBefore removes all events older than the cutoff and
// returns how many were deleted.
func (s *SQLiteRepository) DeleteAuditEventsBefore(cutoff time.Time) (int64, error) {
	query := s.Builder.
		Delete("audit_events").
		Where(squirrel.Lt{"timestamp": cutoff.UTC().Format(time.RFC3339Nano)})

	res, err := query.RunWith(s.DB).Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit events: %w", err)
	}
	return res.RowsAffected()
}

// GetAuditEvents returns the most recent events, newest first.
func (s *SQLiteRepository) GetAuditEvents(limit int) ([]models.AuditEvent, error) {
	query := s.Builder.
		Select("id", "timestamp", "action", "actor", "resource", "details").
		From("audit_events").
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(limit))

	rows, err := query.RunWith(s.DB).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	events := []models.AuditEvent{}
	for rows.Next() {
		var event models.AuditEvent
		var ts string
		if err := rows.Scan(&event.ID, &ts, &event.Action, &event.Actor, &event.Resource, &event.Details); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		event.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			logging.Log.Warnf("GetAuditEvents: Unparseable timestamp '%s' on event %s", ts, event.ID)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
