package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ToastEvictionSchedule runs the eviction every second.
const ToastEvictionSchedule = "* * * * * *"

// ToastEvictor drops expired notifications.
type ToastEvictor interface {
	Evict() int
}

// ToastEvictionJob removes expired toasts from the notification queue.
type ToastEvictionJob struct {
	queue  ToastEvictor
	cron   *cron.Cron
	logger *slog.Logger
}

func NewToastEvictionJob(queue ToastEvictor, logger *slog.Logger) *ToastEvictionJob {
	return &ToastEvictionJob{
		queue:  queue,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "toast_eviction_job"),
	}
}

// Run performs one eviction pass and returns how many toasts were dropped.
func (j *ToastEvictionJob) Run(ctx context.Context) int {
	n := j.queue.Evict()
	if n > 0 {
		j.logger.DebugContext(ctx, "Evicted expired toasts", "count", n)
	}
	return n
}

// Start schedules the job.
func (j *ToastEvictionJob) Start() error {
	_, err := j.cron.AddFunc(ToastEvictionSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Toast eviction job started (running every second)")
	return nil
}

// Stop stops the job. A pass in progress is allowed to finish.
func (j *ToastEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Toast eviction job stopped")
}
