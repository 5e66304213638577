package scheduler

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/restobot/internal/config"
	"github.com/edgard/restobot/internal/logger"
	"github.com/edgard/restobot/internal/publisher"
	"github.com/edgard/restobot/internal/tasks"
)

func TestSchedulerStartRegistersEnabledTasks(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"sql_maintenance": {Enabled: true, Schedule: "0 0 3 * * *"},
		"webhook_audit":   {Enabled: false, Schedule: "0 */30 * * * *"},
		"not_registered":  {Enabled: true, Schedule: "0 * * * * *"},
		"bad_schedule":    {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"sql_maintenance": noop,
		"webhook_audit":   noop,
		"bad_schedule":    noop,
	}

	s, err := NewScheduler(logger.Discard(), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	assert.Equal(t, []string{"sql_maintenance"}, s.Jobs())
	assert.ErrorIs(t, s.Start(), ErrAlreadyRunning)
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	s, err := NewScheduler(logger.Discard(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
}

type fakePublisher struct {
	mu    sync.Mutex
	calls []int64
	done  chan int64
	err   error
}

func (f *fakePublisher) Publish(_ context.Context, newsID int64) (*publisher.Report, error) {
	f.mu.Lock()
	f.calls = append(f.calls, newsID)
	f.mu.Unlock()
	defer func() { f.done <- newsID }()
	if f.err != nil {
		return nil, f.err
	}
	return &publisher.Report{NewsID: newsID, TenantID: 1}, nil
}

func (f *fakePublisher) published() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]int64(nil), f.calls...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func waitFor(t *testing.T, ch <-chan int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func TestQueueRunsEachEnqueuedJobOnce(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{done: make(chan int64, 8)}
	q, err := NewQueue(logger.Discard(), QueueConfig{Workers: 2, JobTimeout: time.Second}, pub)
	require.NoError(t, err)

	q.Start()
	t.Cleanup(func() { _ = q.Stop() })

	for _, id := range []int64{3, 1, 2} {
		jobID, err := q.Enqueue(id)
		require.NoError(t, err)
		assert.NotEmpty(t, jobID)
	}

	waitFor(t, pub.done, 3)
	assert.Equal(t, []int64{1, 2, 3}, pub.published())
}

func TestQueueHoldsJobsUntilStarted(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{done: make(chan int64, 1), err: errors.New("boom")}
	q, err := NewQueue(logger.Discard(), QueueConfig{Workers: 1}, pub)
	require.NoError(t, err)

	_, err = q.Enqueue(42)
	require.NoError(t, err)
	assert.Empty(t, pub.published())

	q.Start()
	t.Cleanup(func() { _ = q.Stop() })

	waitFor(t, pub.done, 1)
	assert.Equal(t, []int64{42}, pub.published())
}
