package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Y      int // Scanline to render
	TaskID int // For deterministic ordering
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	TaskID   int
	Y        int
	WorkerID int
	Pixels   int
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders whole scanlines into the shared framebuffer
type Worker struct {
	ID          int
	scene       *scene.Scene
	integrator  integrator.Integrator
	camera      *Camera
	framebuffer *Framebuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(sc *scene.Scene, integ integrator.Integrator, camera *Camera, fb *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, fb.Height),   // Buffer for every scanline
		resultQueue: make(chan RowResult, fb.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	// Create workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			scene:       sc,
			integrator:  integ,
			camera:      camera,
			framebuffer: fb,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each task owns one scanline, so no two workers write the same slot
		pixels := w.renderRow(task.Y)

		w.resultQueue <- RowResult{
			TaskID:   task.TaskID,
			Y:        task.Y,
			WorkerID: w.ID,
			Pixels:   pixels,
		}
	}
}

// renderRow shades every pixel of scanline y and returns the number written
func (w *Worker) renderRow(y int) int {
	row := w.framebuffer.Row(y)
	for x := range row {
		origin, direction := w.camera.GetRay(x, y)
		row[x] = w.integrator.CastRay(origin, direction, w.scene)
	}
	return len(row)
}
