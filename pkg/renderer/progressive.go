package renderer

import (
	"fmt"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	InitialSamples int // Samples per pixel for the first preview pass (1 recommended)
	MaxPasses      int // Number of passes; the last pass reaches the full sample count
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		InitialSamples: 1,
		MaxPasses:      7,
	}
}

// PassResult is handed to the pass callback after each completed pass
type PassResult struct {
	PassNumber  int
	TotalPasses int
	Image       *Framebuffer
	Stats       RenderStats
}

// Progressive renders an image in multiple passes with growing per-pixel
// sample targets, reusing the accumulated samples of earlier passes. The
// final pass reaches exactly the configured samples per pixel, so the end
// result matches a single-pass render in distribution.
type Progressive struct {
	renderer *Renderer
	config   ProgressiveConfig
}

// NewProgressive wraps a renderer for progressive rendering
func NewProgressive(renderer *Renderer, config ProgressiveConfig) (*Progressive, error) {
	if config.MaxPasses <= 0 {
		return nil, fmt.Errorf("progressive pass count must be positive, got %d", config.MaxPasses)
	}
	if config.InitialSamples <= 0 {
		return nil, fmt.Errorf("progressive initial samples must be positive, got %d", config.InitialSamples)
	}
	return &Progressive{renderer: renderer, config: config}, nil
}

// getSamplesForPass calculates the target total samples for a given pass
func (p *Progressive) getSamplesForPass(passNumber int) int {
	maxSamples := p.renderer.config.SamplesPerPixel

	// Special case: if only 1 pass, use all samples
	if p.config.MaxPasses == 1 {
		return maxSamples
	}

	// For multiple passes: first pass is a quick preview
	if passNumber == 1 {
		return min(p.config.InitialSamples, maxSamples)
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := maxSamples - p.config.InitialSamples
	remainingPasses := p.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := p.config.InitialSamples + (passNumber-1)*samplesPerPass

	// The final pass uses all remaining samples
	if passNumber == p.config.MaxPasses {
		targetSamples = maxSamples
	}

	return min(max(targetSamples, 1), maxSamples)
}

// Render runs all passes, invoking the callback (if any) after each pass
// with the current image. Returns the final framebuffer and cumulative
// statistics.
func (p *Progressive) Render(callback func(PassResult)) (*Framebuffer, RenderStats, error) {
	r := p.renderer
	pixelStats := newPixelStatsGrid(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize, r.config.Seed)

	pool := NewWorkerPool(r.config.NumWorkers, len(tiles), r.renderTask)
	pool.Start()
	defer pool.Stop()

	total := RenderStats{TotalPixels: r.config.Width * r.config.Height}
	var fb *Framebuffer

	for pass := 1; pass <= p.config.MaxPasses; pass++ {
		targetSamples := p.getSamplesForPass(pass)
		r.logger.Printf("Pass %d/%d: target %d samples per pixel (%d workers)\n",
			pass, p.config.MaxPasses, targetSamples, pool.GetNumWorkers())

		stats, err := r.renderPass(pool, tiles, pixelStats, targetSamples)
		if err != nil {
			return nil, RenderStats{}, err
		}
		total.TotalSamples += stats.TotalSamples
		total.finalize()

		fb = r.assembleImage(pixelStats)
		if callback != nil {
			callback(PassResult{
				PassNumber:  pass,
				TotalPasses: p.config.MaxPasses,
				Image:       fb,
				Stats:       total,
			})
		}
	}

	return fb, total, nil
}
