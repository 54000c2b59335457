// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"time"

	"contactgate/internal/logging"
)

const (
	// CheckInterval is the time between retention sweeps.
	CheckInterval = 1 * time.Hour
)

// AuditStore defines the storage methods required by the housekeeping
// service. This decouples the retention logic from the concrete
// repository implementation.
type AuditStore interface {
	DeleteAuditEventsBefore(cutoff time.Time) (int64, error)
}

// Service provides the background worker that prunes audit events older
// than the configured retention window.
type Service struct {
	store     AuditStore
	retention time.Duration
	timer     *time.Timer
	stopCh    chan struct{}
}

// NewService creates a new housekeeping service instance. A zero retention
// disables pruning entirely.
func NewService(store AuditStore, retention time.Duration) *Service {
	return &Service{
		store:     store,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	if s.retention <= 0 {
		logging.Log.Debug("Audit retention disabled, housekeeping service not started.")
		return
	}

	logging.Log.Info("Starting background housekeeping service.")
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		for {
			select {
			case <-s.timer.C:
				s.RunPrune()
				s.timer.Reset(CheckInterval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service.
func (s *Service) Stop() {
	if s.retention <= 0 {
		return
	}
	logging.Log.Info("Stopping background housekeeping service.")
	close(s.stopCh)
}

// RunPrune deletes all audit events older than the retention window.
func (s *Service) RunPrune() {
	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.store.DeleteAuditEventsBefore(cutoff)
	if err != nil {
		logging.Log.Errorf("Housekeeping run failed: %v", err)
		return
	}
	if deleted > 0 {
		logging.Log.Infof("Housekeeping pruned %d audit events older than %v.", deleted, s.retention)
	}
}
