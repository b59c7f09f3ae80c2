package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	Width      int // Image width
	Height     int // Image height
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns the reference image size
func DefaultConfig() Config {
	return Config{
		Width:      1980,
		Height:     1080,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Validate checks that the configuration describes a non-empty image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("invalid worker count %d", c.NumWorkers)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the Whitted integrator
func NewRaytracer(sc *scene.Scene, config Config, logger core.Logger) *Raytracer {
	return NewRaytracerWithIntegrator(sc, integrator.NewWhittedIntegrator(integrator.DefaultConfig()), config, logger)
}

// NewRaytracerWithIntegrator creates a raytracer that shades with the given integrator
func NewRaytracerWithIntegrator(sc *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:      sc,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// Render shades every pixel in parallel and returns the completed framebuffer.
// The scene must not be modified while Render runs.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	width, height := rt.config.Width, rt.config.Height

	fb := NewFramebuffer(width, height)
	camera := NewCamera(width, height)
	pool := NewWorkerPool(rt.scene, rt.integrator, camera, fb, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d image with %d spheres and %d lights (using %d workers)...\n",
		width, height, rt.scene.GetPrimitiveCount(), len(rt.scene.Lights), pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()

	// Submit all scanlines as tasks
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y, TaskID: y})
	}

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Workers: pool.GetNumWorkers(),
	}

	// Wait for every scanline before handing the framebuffer back
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Rows++
		stats.TotalPixels += result.Pixels
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Image took: %dms to render\n", stats.Duration.Milliseconds())

	return fb, stats
}

// RenderSingleThreaded shades every pixel sequentially on the calling goroutine
func (rt *Raytracer) RenderSingleThreaded() *Framebuffer {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	camera := NewCamera(rt.config.Width, rt.config.Height)

	for y := 0; y < fb.Height; y++ {
		row := fb.Row(y)
		for x := range row {
			origin, direction := camera.GetRay(x, y)
			row[x] = rt.integrator.CastRay(origin, direction, rt.scene)
		}
	}

	return fb
}
