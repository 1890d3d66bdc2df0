package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_RunsWorkerImmediatelyAndOnTicks(t *testing.T) {
	var runs int64
	m := NewManager()
	m.RegisterWorker(NewWorker("counter", 30*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	}))

	m.Start()
	time.Sleep(110 * time.Millisecond)
	m.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(3))
}

func TestManager_WorkerErrorDoesNotStopTicking(t *testing.T) {
	var runs int64
	m := NewManager()
	m.RegisterWorker(NewWorker("flaky", 30*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return errors.New("boom")
	}))

	m.Start()
	time.Sleep(110 * time.Millisecond)
	m.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(3))
}

func TestManager_StopWaitsForWorkers(t *testing.T) {
	m := NewManager()
	m.RegisterWorker(NewWorker("slow", time.Hour, func(ctx context.Context) error {
		return nil
	}))

	m.Start()

	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
}

func TestManager_RunsMultipleWorkers(t *testing.T) {
	var a, b int64
	m := NewManager()
	m.RegisterWorker(NewWorker("a", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&a, 1)
		return nil
	}))
	m.RegisterWorker(NewWorker("b", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&b, 1)
		return nil
	}))

	m.Start()
	time.Sleep(50 * time.Millisecond)
	m.Stop()

	assert.Equal(t, int64(1), atomic.LoadInt64(&a))
	assert.Equal(t, int64(1), atomic.LoadInt64(&b))
}
