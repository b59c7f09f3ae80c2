package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Number of scanlines completed
	Workers     int           // Number of parallel workers used
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of the clamped framebuffer
func CalculateAverageLuminance(fb *Framebuffer) float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}

	var total float64
	for _, pixel := range fb.Pixels {
		c := pixel.Clamp(0, 1)
		total += 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
	}
	return total / float64(len(fb.Pixels))
}
