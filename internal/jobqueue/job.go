package jobqueue

import (
	"context"
	"time"
)

type Job struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Queue     string    `json:"queue"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

type ScheduleOptions struct {
	// Delay holds the job back before it becomes runnable; zero runs it as soon as a worker is free.
	Delay time.Duration
}

type Consumer interface {
	Consume(ctx context.Context, job Job) error
	GetWorkerCount() int
}
