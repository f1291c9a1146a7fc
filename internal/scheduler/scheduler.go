// Package scheduler periodically queues one automatic reconciliation job for every
// connected (team, provider) pair.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/internal/jobqueue"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
)

// DefaultTeamSpacing staggers the jobs of one tick so teams do not start at once.
const DefaultTeamSpacing = time.Second

type JobScheduler interface {
	Schedule(ctx context.Context, job jobqueue.Job, opts jobqueue.ScheduleOptions) error
}

type Config struct {
	// Interval between ticks; zero or less disables the scheduler.
	Interval    time.Duration
	TeamSpacing time.Duration
}

type Scheduler struct {
	connections domain.CredentialRepository
	jobs        JobScheduler
	logger      *logger.Logger
	interval    time.Duration
	spacing     time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func New(connections domain.CredentialRepository, jobs JobScheduler, log *logger.Logger, cfg Config) *Scheduler {
	if cfg.TeamSpacing < 0 {
		cfg.TeamSpacing = 0
	}
	return &Scheduler{
		connections: connections,
		jobs:        jobs,
		logger:      log,
		interval:    cfg.Interval,
		spacing:     cfg.TeamSpacing,
	}
}

// Start launches the ticker loop. The first tick fires one interval after Start.
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info(ctx, "Sync scheduler disabled")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info(ctx, "Sync scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug(ctx, "Sync scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error(ctx, "Scheduled sync failed", "error", err)
			}
		}
	}
}

// RunOnce queues an automatic reconciliation for every connection and returns how many
// jobs were accepted. A job that cannot be queued is logged and skipped.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	connections, err := s.connections.ListConnections(ctx)
	if err != nil {
		return 0, fmt.Errorf("list connections: %w", err)
	}

	queued := 0
	for i, conn := range connections {
		job := jobqueue.Job{
			Name:  domain.JobSyncTransactions,
			Queue: domain.QueueAccounting,
			Payload: domain.ReconcileRequest{
				TeamID:   conn.TeamID,
				Provider: conn.Provider,
				SyncType: domain.SyncTypeAuto,
			},
		}
		opts := jobqueue.ScheduleOptions{Delay: time.Duration(i) * s.spacing}

		if err := s.jobs.Schedule(ctx, job, opts); err != nil {
			s.logger.Warn(logger.WithTeamID(ctx, conn.TeamID), "Failed to queue scheduled sync",
				"provider", conn.Provider,
				"error", err,
			)
			continue
		}
		queued++
	}

	s.logger.Info(ctx, "Scheduled syncs queued",
		"connections", len(connections),
		"queued", queued,
	)

	return queued, nil
}
