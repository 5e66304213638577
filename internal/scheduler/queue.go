package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/edgard/restobot/internal/publisher"
)

// Publisher delivers one news item to its tenant's recipients.
type Publisher interface {
	Publish(ctx context.Context, newsID int64) (*publisher.Report, error)
}

// QueueConfig bounds the publish job pool.
type QueueConfig struct {
	Workers    int
	JobTimeout time.Duration
}

// Queue runs publish jobs in the background. Each Enqueue schedules one
// single-attempt gocron job; the news item and its tenant are loaded when
// the job runs, not when it is enqueued.
type Queue struct {
	scheduler gocron.Scheduler
	publisher Publisher
	timeout   time.Duration
	logger    *slog.Logger
	mu        sync.Mutex
	running   bool
}

// NewQueue creates a stopped queue; jobs enqueued before Start wait for it.
func NewQueue(logger *slog.Logger, cfg QueueConfig, pub Publisher) (*Queue, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "publish_queue")

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(log),
		gocron.WithLimitConcurrentJobs(uint(workers), gocron.LimitModeWait),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Queue{
		scheduler: s,
		publisher: pub,
		timeout:   cfg.JobTimeout,
		logger:    log,
	}, nil
}

// Enqueue schedules news delivery and returns the job id.
func (q *Queue) Enqueue(newsID int64) (string, error) {
	jobID := uuid.NewString()

	_, err := q.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(func(ctx context.Context) {
			q.run(ctx, jobID, newsID)
		}),
		gocron.WithName("publish:"+jobID),
	)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue news %d: %w", newsID, err)
	}

	q.logger.Info("Publish job enqueued", "job_id", jobID, "news_id", newsID)
	return jobID, nil
}

func (q *Queue) run(ctx context.Context, jobID string, newsID int64) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	log := q.logger.With("job_id", jobID, "news_id", newsID)
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Publish job panicked", "panic", r)
		}
	}()

	startTime := time.Now()
	report, err := q.publisher.Publish(ctx, newsID)
	if err != nil {
		log.ErrorContext(ctx, "Publish job failed", "error", err, "duration", time.Since(startTime))
		return
	}

	log.InfoContext(ctx, "Publish job finished",
		"tenant_id", report.TenantID,
		"recipients", report.Recipients,
		"delivered", report.Delivered,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"duration", time.Since(startTime),
	)
}

// Start begins executing queued jobs.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return
	}
	q.scheduler.Start()
	q.running = true
	q.logger.Info("Publish queue started")
}

// Stop waits for running jobs and drops the ones still pending.
func (q *Queue) Stop() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		return nil
	}
	q.running = false

	if err := q.scheduler.Shutdown(); err != nil {
		q.logger.Error("Error during publish queue shutdown", "error", err)
		return fmt.Errorf("failed to stop publish queue: %w", err)
	}
	q.logger.Info("Publish queue stopped")
	return nil
}
