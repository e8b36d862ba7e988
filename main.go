package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 400, "Image width in pixels")
	samples := flag.Int("spp", 0, "Samples per pixel (0 = scene recommendation)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene recommendation)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base seed for the per-tile random streams")
	passes := flag.Int("passes", 1, "Number of progressive passes (1 = single pass)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres of every material over a ground sphere")
		fmt.Println("  cover   - Randomized many-sphere scene with depth of field")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	if err := run(*sceneType, *width, *samples, *depth, *workers, *seed, *passes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene builds the named scene
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(seed)
	case "default":
		return scene.NewDefaultScene()
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func run(sceneType string, width, samples, depth, workers int, seed int64, passes int) error {
	fmt.Println("Starting Weekend Raytracer...")
	fmt.Printf("Using %s scene...\n", sceneType)

	selectedScene, err := createScene(sceneType, seed)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	// Use scene recommendations unless overridden on the command line
	if samples == 0 {
		samples = selectedScene.Sampling.SamplesPerPixel
	}
	if depth == 0 {
		depth = selectedScene.Sampling.MaxDepth
	}

	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = int(float64(width) / selectedScene.CameraConfig.AspectRatio)
	config.SamplesPerPixel = samples
	config.MaxDepth = depth
	config.NumWorkers = workers
	config.Seed = seed

	camera, err := selectedScene.Camera()
	if err != nil {
		return fmt.Errorf("building camera: %w", err)
	}

	r, err := renderer.NewRenderer(selectedScene.World, camera, selectedScene.Background, config, renderer.NewDefaultLogger())
	if err != nil {
		return fmt.Errorf("configuring renderer: %w", err)
	}

	// Create output directory for this scene type
	outputDir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Render
	startTime := time.Now()
	var fb *renderer.Framebuffer
	var stats renderer.RenderStats

	if passes > 1 {
		progressive, err := renderer.NewProgressive(r, renderer.ProgressiveConfig{
			InitialSamples: 1,
			MaxPasses:      passes,
		})
		if err != nil {
			return fmt.Errorf("configuring progressive renderer: %w", err)
		}
		fb, stats, err = progressive.Render(func(result renderer.PassResult) {
			fmt.Printf("Pass %d/%d complete (%.1f samples per pixel)\n",
				result.PassNumber, result.TotalPasses, result.Stats.AverageSamples)
		})
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	} else {
		fb, stats, err = r.Render()
		if err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples per pixel: %.1f average over %d pixels\n",
		stats.AverageSamples, stats.TotalPixels)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}
