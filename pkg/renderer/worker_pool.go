package renderer

import (
	"math/rand"
	"sync"
)

// pixelFunc renders one pixel and returns the number of rays it traced
type pixelFunc func(x, y int, random *rand.Rand) int

// WorkerPool runs a fixed number of workers that pull pixels from a shared
// PixelManager until the image is exhausted
type WorkerPool struct {
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker renders the pixels it claims with its own random source
type Worker struct {
	ID     int
	pixels *PixelManager
	render pixelFunc
	random *rand.Rand
	rays   int // Rays traced by this worker, read after Wait
}

// NewWorkerPool creates numWorkers workers. Worker i draws its jitter from a
// source seeded with seed+i.
func NewWorkerPool(numWorkers int, seed int64, pixels *PixelManager, render pixelFunc) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	wp := &WorkerPool{numWorkers: numWorkers}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:     i,
			pixels: pixels,
			render: render,
			random: rand.New(rand.NewSource(seed + int64(i))),
		})
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

// Wait blocks until every worker has finished and returns the total number
// of rays traced
func (wp *WorkerPool) Wait() int {
	wp.wg.Wait()
	rays := 0
	for _, worker := range wp.workers {
		rays += worker.rays
	}
	return rays
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		x, y, ok := w.pixels.Next()
		if !ok {
			return
		}
		w.rays += w.render(x, y, w.random)
		w.pixels.Done()
	}
}
