package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	toastEvictionJob *ToastEvictionJob
	sessionExpiryJob *SessionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	toasts ToastEvictor,
	sessions SessionExpirer,
	onSessionExpired func(),
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		toastEvictionJob: NewToastEvictionJob(toasts, logger),
		sessionExpiryJob: NewSessionExpiryJob(sessions, onSessionExpired, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.toastEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start toast eviction job: %w", err)
	}

	if err := jm.sessionExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.toastEvictionJob.Stop()
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionExpiryJob.Stop()
	jm.toastEvictionJob.Stop()
}
