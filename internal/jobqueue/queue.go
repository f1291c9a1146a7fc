package jobqueue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/accounting-sync/internal/domain"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/grachmannico95/accounting-sync/pkg/retry"
)

var ErrQueueClosed = errors.New("job queue is shut down")

type Queue interface {
	// Schedule is fire-and-forget: it returns once the job is accepted, not when it runs.
	Schedule(ctx context.Context, job Job, opts ScheduleOptions) error
	Subscribe(name string, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type queue struct {
	channels      map[string]chan Job
	consumers     map[string][]Consumer
	timers        map[string]*time.Timer
	mu            sync.RWMutex
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxRetries    int
	retryBase     time.Duration
	started       bool
	closed        bool
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
	// RetryBaseDelay is the first wait of a whole-job retry; it doubles per attempt.
	RetryBaseDelay time.Duration
}

func New(log *logger.Logger, cfg *Config) Queue {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer: 1000,
			MaxRetries:    5,
		}
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}

	return &queue{
		channels:      make(map[string]chan Job),
		consumers:     make(map[string][]Consumer),
		timers:        make(map[string]*time.Timer),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxRetries:    cfg.MaxRetries,
		retryBase:     cfg.RetryBaseDelay,
	}
}

func (q *queue) Subscribe(name string, consumer Consumer) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.channels[name]; !exists {
		q.channels[name] = make(chan Job, q.channelBuffer)
	}

	q.consumers[name] = append(q.consumers[name], consumer)

	return nil
}

func (q *queue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started {
		return nil
	}

	q.ctx, q.cancel = context.WithCancel(ctx)

	for name, consumers := range q.consumers {
		ch := q.channels[name]

		for _, consumer := range consumers {
			workerCount := consumer.GetWorkerCount()
			q.logger.Info(q.ctx, "Starting workers",
				"job", name,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				q.wg.Add(1)
				go q.worker(q.ctx, ch, consumer, i)
			}
		}
	}

	q.started = true
	q.logger.Info(q.ctx, "Job queue started")

	return nil
}

func (q *queue) worker(ctx context.Context, ch <-chan Job, consumer Consumer, workerID int) {
	defer q.wg.Done()

	q.logger.Debug(ctx, "Worker started", "worker_id", workerID)

	for {
		select {
		case <-ctx.Done():
			q.logger.Debug(ctx, "Worker stopping", "worker_id", workerID)
			return
		case job, ok := <-ch:
			if !ok {
				q.logger.Debug(ctx, "Channel closed, worker stopping", "worker_id", workerID)
				return
			}

			q.processJob(ctx, job, consumer, workerID)
		}
	}
}

func (q *queue) processJob(ctx context.Context, job Job, consumer Consumer, workerID int) {
	jobCtx := ctx
	if job.ID != "" {
		jobCtx = logger.WithTraceID(ctx, job.ID)
	}

	q.logger.Debug(jobCtx, "Processing job",
		"job_id", job.ID,
		"job", job.Name,
		"worker_id", workerID,
	)

	// the whole job is retried; consumers are idempotent on the sync record key
	err := retry.Do(jobCtx, func() error {
		return consumer.Consume(jobCtx, job)
	},
		retry.WithMaxAttempts(q.maxRetries),
		retry.WithBaseDelay(q.retryBase),
		retry.WithRetryIf(Retryable),
		retry.WithOnRetry(func(attempt int, err error, delay time.Duration) {
			q.logger.Warn(jobCtx, "Job failed, retrying",
				"job_id", job.ID,
				"job", job.Name,
				"attempt", attempt,
				"delay", delay,
				"error", err,
			)
		}),
	)

	if err != nil {
		q.logger.Error(jobCtx, "Failed to process job",
			"job_id", job.ID,
			"job", job.Name,
			"worker_id", workerID,
			"error", err,
		)
	} else {
		q.logger.Debug(jobCtx, "Job processed successfully",
			"job_id", job.ID,
			"job", job.Name,
			"worker_id", workerID,
		)
	}
}

// Retryable reports whether running the job again can succeed. Configuration problems
// and malformed payloads fail the job at once.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrNoTargetAccount),
		errors.Is(err, domain.ErrUnknownProvider),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}

func (q *queue) Schedule(ctx context.Context, job Job, opts ScheduleOptions) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Queue == "" {
		job.Queue = domain.QueueAccounting
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	if opts.Delay <= 0 {
		return q.enqueue(ctx, job)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.timers[job.ID] = time.AfterFunc(opts.Delay, func() {
		q.mu.Lock()
		delete(q.timers, job.ID)
		q.mu.Unlock()

		if err := q.enqueue(context.Background(), job); err != nil {
			q.logger.Warn(context.Background(), "Delayed job not enqueued",
				"job_id", job.ID,
				"job", job.Name,
				"error", err,
			)
		}
	})

	q.logger.Debug(ctx, "Job scheduled",
		"job_id", job.ID,
		"job", job.Name,
		"delay", opts.Delay,
	)

	return nil
}

func (q *queue) enqueue(ctx context.Context, job Job) error {
	q.mu.RLock()
	ch, exists := q.channels[job.Name]
	closed := q.closed
	q.mu.RUnlock()

	if closed {
		return ErrQueueClosed
	}

	if !exists {
		q.logger.Warn(ctx, "No consumer for job",
			"job", job.Name,
			"job_id", job.ID,
		)
		return nil
	}

	select {
	case ch <- job:
		q.logger.Debug(ctx, "Job enqueued",
			"job", job.Name,
			"job_id", job.ID,
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// the next reconciliation pass recomputes dropped work from the sync records
		q.logger.Warn(ctx, "Job channel full, job dropped",
			"job", job.Name,
			"job_id", job.ID,
		)
		return nil
	}
}

// Pending returns the number of delayed jobs that have not become runnable yet.
func (q *queue) Pending() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.timers)
}

func (q *queue) Shutdown(ctx context.Context) error {
	q.logger.Info(ctx, "Shutting down job queue")

	q.mu.Lock()
	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info(ctx, "Job queue shutdown complete")
		return nil
	case <-ctx.Done():
		q.logger.Warn(ctx, "Job queue shutdown timeout")
		return ctx.Err()
	}
}
