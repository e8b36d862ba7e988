package renderer

import (
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	TargetSamples int            // Total samples each pixel should reach
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	render      func(TileTask) RenderStats
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool that renders tiles with the given
// render function
func NewWorkerPool(numWorkers, queueSize int, render func(TileTask) RenderStats) *WorkerPool {
	return &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// Each tile has non-overlapping bounds, so rendering directly
		// into the shared pixel stats array is thread-safe
		stats := wp.render(task)

		wp.resultQueue <- TileResult{
			TileID: task.Tile.ID,
			Stats:  stats,
		}
	}
}
