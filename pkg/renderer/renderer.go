package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"runtime"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Size of each tile (0 = default 64)
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 50,
		MaxDepth:        50,
		TileSize:        64,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
	}
}

// Validate checks the configuration, failing fast before any rendering work
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("tile size must be non-negative, got %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must be non-negative, got %d", c.NumWorkers)
	}
	return nil
}

// Renderer orchestrates per-pixel, per-sample ray generation across a pool
// of tile workers. The world, camera and background are read-only for the
// entire render; the only mutable state is the per-tile region of the
// shared pixel statistics array.
type Renderer struct {
	world      core.Hittable
	camera     *Camera
	background integrator.Background
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer for the given world and camera.
// The configuration is validated up front; rendering never fails later.
func NewRenderer(world core.Hittable, camera *Camera, background integrator.Background, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, fmt.Errorf("world must not be nil")
	}
	if camera == nil {
		return nil, fmt.Errorf("camera must not be nil")
	}
	if config.TileSize == 0 {
		config.TileSize = 64
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		world:      world,
		camera:     camera,
		background: background,
		integrator: integrator.NewPathTracer(),
		config:     config,
		logger:     logger,
	}, nil
}

// Config returns the effective rendering configuration
func (r *Renderer) Config() Config {
	return r.config
}

// Render renders the full image in a single pass and returns the
// gamma-corrected framebuffer along with rendering statistics
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	pixelStats := newPixelStatsGrid(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize, r.config.Seed)

	pool := NewWorkerPool(r.config.NumWorkers, len(tiles), r.renderTask)
	pool.Start()

	stats, err := r.renderPass(pool, tiles, pixelStats, r.config.SamplesPerPixel)
	pool.Stop()
	if err != nil {
		return nil, RenderStats{}, err
	}

	return r.assembleImage(pixelStats), stats, nil
}

// renderPass submits every tile to the pool with the given per-pixel
// sample target and waits for all of them to complete
func (r *Renderer) renderPass(pool *WorkerPool, tiles []*Tile, pixelStats [][]PixelStats, targetSamples int) (RenderStats, error) {
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:          tile,
			TargetSamples: targetSamples,
			PixelStats:    pixelStats,
		})
	}

	stats := RenderStats{}
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		stats.merge(result.Stats)
	}
	stats.finalize()

	return stats, nil
}

// renderTask renders one tile task, bringing every pixel in the tile up to
// the target sample count
func (r *Renderer) renderTask(task TileTask) RenderStats {
	return r.renderBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Random, task.TargetSamples)
}

// renderBounds renders the pixels within bounds using the given random
// stream. Bounds are in image coordinates with y = 0 at the top.
func (r *Renderer) renderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, targetSamples int) RenderStats {
	sampler := core.NewRandomSampler(random)
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			for ps.SampleCount < targetSamples {
				// Convert pixel coordinates to normalized coordinates with
				// jitter; t grows upward while image rows grow downward
				s := (float64(x) + random.Float64()) / float64(r.config.Width)
				t := (float64(r.config.Height-1-y) + random.Float64()) / float64(r.config.Height)

				ray := r.camera.GetRay(s, t, sampler)
				color := r.integrator.RayColor(ray, r.world, r.background, sampler, r.config.MaxDepth)
				ps.AddSample(color)
				stats.TotalSamples++
			}
		}
	}

	return stats
}

// assembleImage averages, gamma-corrects and clamps the accumulated pixel
// statistics into a framebuffer
func (r *Renderer) assembleImage(pixelStats [][]PixelStats) *Framebuffer {
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	for y := 0; y < r.config.Height; y++ {
		for x := 0; x < r.config.Width; x++ {
			// Gamma correction (gamma = 2.0) then clamp to valid range
			c := pixelStats[y][x].Color().GammaCorrect(2.0).Clamp(0.0, 1.0)
			fb.Set(x, y, c)
		}
	}
	return fb
}

// newPixelStatsGrid allocates the shared pixel statistics array in global
// image coordinates
func newPixelStatsGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}
