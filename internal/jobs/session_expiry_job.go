package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SessionExpirySchedule checks the token every ten seconds.
const SessionExpirySchedule = "*/10 * * * * *"

// SessionExpirer invalidates a session whose token has expired.
type SessionExpirer interface {
	ExpireIfNeeded(ctx context.Context) (bool, error)
}

// SessionExpiryJob logs the user out once the token's exp claim has passed.
type SessionExpiryJob struct {
	sessions  SessionExpirer
	onExpired func()
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSessionExpiryJob creates the job. onExpired, when set, runs after every
// invalidation, e.g. to close open workflows.
func NewSessionExpiryJob(sessions SessionExpirer, onExpired func(), logger *slog.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		sessions:  sessions,
		onExpired: onExpired,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "session_expiry_job"),
	}
}

// Run performs one check and reports whether the session was invalidated.
func (j *SessionExpiryJob) Run(ctx context.Context) bool {
	expired, err := j.sessions.ExpireIfNeeded(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
	}
	if !expired {
		return false
	}

	j.logger.InfoContext(ctx, "Session expired")
	if j.onExpired != nil {
		j.onExpired()
	}
	return true
}

// Start schedules the job.
func (j *SessionExpiryJob) Start() error {
	_, err := j.cron.AddFunc(SessionExpirySchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started (running every 10 seconds)")
	return nil
}

// Stop stops the job. A check in progress is allowed to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
