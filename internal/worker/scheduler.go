package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron specs. Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	log     *zap.Logger
}

func NewScheduler(timeout time.Duration, log *zap.Logger) *Scheduler {
	log = log.With(zap.String("worker", "scheduler"))
	logger := cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: timeout,
		log:     log,
	}
}

// Add registers job under name on spec, e.g. "@daily" or "0 3 * * *".
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := time.Now()
		if err := job(ctx); err != nil {
			s.log.Error("Scheduled job failed",
				zap.String("job", name),
				zap.Duration("elapsed", time.Since(started)),
				zap.Error(err),
			)
			return
		}
		s.log.Info("Scheduled job finished",
			zap.String("job", name),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
	if err != nil {
		return fmt.Errorf("schedule %s on %q: %w", name, spec, err)
	}

	s.log.Info("Job scheduled", zap.String("job", name), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("Scheduler stop timed out with jobs still running")
	}
}
