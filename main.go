package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	output string
	config renderer.Config
	help   bool
}

// parseOptions parses command line flags into render options
func parseOptions(args []string, errOut io.Writer) (options, error) {
	defaults := renderer.DefaultConfig()
	opts := options{}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.output, "output", "image.ppm", "Output file (.ppm or .png)")
	fs.IntVar(&opts.config.Width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.config.Height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.config.NumWorkers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.help {
		return opts, nil
	}
	if err := opts.config.Validate(); err != nil {
		return options{}, err
	}
	if opts.output == "" {
		return options{}, fmt.Errorf("output path must not be empty")
	}
	return opts, nil
}

// printHelp writes usage information
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -output string   Output file, .ppm or .png (default \"image.ppm\")")
	fmt.Fprintln(w, "  -width int       Image width in pixels (default 1980)")
	fmt.Fprintln(w, "  -height int      Image height in pixels (default 1080)")
	fmt.Fprintln(w, "  -workers int     Number of parallel workers, 0 = use CPU count")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders four spheres lit by three point lights.")
}

// run renders the reference scene and saves it to opts.output
func run(opts options, logger core.Logger) error {
	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	raytracer := renderer.NewRaytracer(scene.NewReferenceScene(), opts.config, logger)
	fb, stats := raytracer.Render()

	logger.Printf("Rendered %d pixels (%.0f pixels/s, average luminance %.3f)\n",
		stats.TotalPixels, stats.PixelsPerSecond(), renderer.CalculateAverageLuminance(fb))

	if err := imageio.Save(opts.output, fb); err != nil {
		return fmt.Errorf("error saving image: %w", err)
	}

	logger.Printf("Render saved as %s\n", opts.output)
	return nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
