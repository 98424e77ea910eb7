package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowTask represents one framebuffer row to render
type RowTask struct {
	Y int
}

// RowResult reports a completed (or cancelled) row
type RowResult struct {
	Y   int
	Err error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of
// workers. The queues are sized to hold every row, so submitting and
// collecting never block each other.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan RowTask, queueSize),
		resultQueue: make(chan RowResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Once the context is cancelled, workers
// drain remaining tasks without rendering and report the context error.
func (wp *WorkerPool) Start(ctx context.Context, render func(RowTask)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				err := ctx.Err()
				if err == nil {
					render(task)
				}
				wp.resultQueue <- RowResult{Y: task.Y, Err: err}
			}
		}()
	}
}

// Submit queues a row task
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Close signals that no more tasks are coming, waits for the workers to
// finish, and closes the result queue.
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed rows. It is closed by Close
// after all workers finish.
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
