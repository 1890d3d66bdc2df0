package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Worker is a named periodic job.
type Worker interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context) error
}

// Manager runs registered workers on their own tickers.
type Manager struct {
	workers  []Worker
	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		workers:  []Worker{},
		stopChan: make(chan struct{}),
	}
}

// RegisterWorker registers a new worker.
func (m *Manager) RegisterWorker(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	log.Printf("✅ Worker '%s' registered (interval: %v)", w.Name(), w.Interval())
}

// Start launches every registered worker on its own goroutine.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.Printf("🚀 Starting %d worker(s)...", len(m.workers))

	for _, worker := range m.workers {
		m.wg.Add(1)
		go m.runWorker(worker)
	}
}

func (m *Manager) runWorker(w Worker) {
	defer m.wg.Done()

	ticker := time.NewTicker(w.Interval())
	defer ticker.Stop()

	// Run once immediately so a restart does not wait a full interval.
	m.executeWorker(w)

	for {
		select {
		case <-ticker.C:
			m.executeWorker(w)

		case <-m.stopChan:
			log.Printf("🛑 Worker '%s' stopped", w.Name())
			return
		}
	}
}

// executeWorker runs one tick with a timeout and error logging. Runs never
// overlap for the same worker: the next tick waits for this one to return.
func (m *Manager) executeWorker(w Worker) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	startTime := time.Now()

	if err := w.Run(ctx); err != nil {
		log.Printf("❌ Worker '%s' failed: %v", w.Name(), err)
	} else {
		log.Printf("✅ Worker '%s' finished (took %v)", w.Name(), time.Since(startTime))
	}
}

// Stop stops all workers and waits for in-flight runs to finish.
func (m *Manager) Stop() {
	close(m.stopChan)
	m.wg.Wait()

	log.Println("✅ All workers stopped")
}

// funcWorker adapts a plain function into a Worker.
type funcWorker struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// NewWorker wraps a run function as a Worker with a fixed name and interval.
func NewWorker(name string, interval time.Duration, run func(ctx context.Context) error) Worker {
	return &funcWorker{name: name, interval: interval, run: run}
}

func (w *funcWorker) Name() string                  { return w.name }
func (w *funcWorker) Interval() time.Duration       { return w.interval }
func (w *funcWorker) Run(ctx context.Context) error { return w.run(ctx) }
