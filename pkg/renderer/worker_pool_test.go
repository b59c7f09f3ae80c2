package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestWorkerPool_RowsArePartitioned(t *testing.T) {
	width, height := 12, 20
	fb := NewFramebuffer(width, height)
	pool := NewWorkerPool(scene.NewScene(nil, nil), &MockIntegrator{}, NewCamera(width, height), fb, 3)

	if pool.GetNumWorkers() != 3 {
		t.Fatalf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start()
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y, TaskID: y})
	}

	seen := make(map[int]bool)
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Worker pool closed unexpectedly")
		}
		if seen[result.Y] {
			t.Errorf("Row %d rendered twice", result.Y)
		}
		seen[result.Y] = true
		if result.TaskID != result.Y {
			t.Errorf("Expected task %d to render row %d", result.TaskID, result.Y)
		}
		if result.Pixels != width {
			t.Errorf("Expected %d pixels per row, got %d", width, result.Pixels)
		}
	}
	pool.Stop()

	if len(seen) != height {
		t.Errorf("Expected %d distinct rows, got %d", height, len(seen))
	}

	// Stop closes the result queue
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	pool := NewWorkerPool(scene.NewScene(nil, nil), &MockIntegrator{}, NewCamera(1, 1), fb, 0)

	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}

func TestFramebuffer_RowsAreDisjoint(t *testing.T) {
	fb := NewFramebuffer(5, 3)

	if len(fb.Pixels) != 15 {
		t.Fatalf("Expected 15 pixels, got %d", len(fb.Pixels))
	}

	for y := 0; y < fb.Height; y++ {
		row := fb.Row(y)
		if len(row) != fb.Width || cap(row) != fb.Width {
			t.Errorf("Row %d: expected len and cap %d, got %d/%d", y, fb.Width, len(row), cap(row))
		}
		for x := range row {
			row[x].X = float64(y*10 + x)
		}
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.Index(x, y) != x+y*fb.Width {
				t.Errorf("Unexpected index for (%d,%d): %d", x, y, fb.Index(x, y))
			}
			if fb.At(x, y).X != float64(y*10+x) {
				t.Errorf("Pixel (%d,%d) overwritten: %v", x, y, fb.At(x, y))
			}
		}
	}
}
