package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
}

// merge combines statistics from another (tile-local) stats value
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}

// finalize computes derived statistics after all tiles are rendered
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for variance tracking
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return math.Max(0, meanSq-mean*mean)
}
