package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/markmind/markmind/internal/config"
)

// Orchestrator manages the document import pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	log   *slog.Logger
	cfg   config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewOrchestrator creates the pipeline; call Start to launch workers.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		log:   log,
		cfg:   cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.jobs, o.log, o.cfg.LayoutConfig(), o.cfg.OriginX, o.cfg.OriginY, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. Safe to call once; later
// Submit calls are rejected rather than sent to the closed queue.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)

	// The stopped flag and the send share the mutex so Stop cannot
	// close the queue between the check and the send.
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		job.SetStatus(StatusFailed, "shutdown")
		return fmt.Errorf("pipeline is shutting down")
	}
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}
