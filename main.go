package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-raymarcher/pkg/config"
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/renderer"
	"github.com/df07/go-raymarcher/pkg/scene"
)

func main() {
	// Parse command line flags
	defaults := config.Default()
	configPath := flag.String("config", "", "JSON file with render settings (flags override it)")
	sceneName := flag.String("scene", defaults.Scene, "Scene to render")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	slices := flag.Int("slices", defaults.Slices, "Number of horizontal slices rendered in parallel (0 = CPU count)")
	maxDistance := flag.Float64("max-distance", defaults.MaxDistance, "Path length budget per ray (0 = scene default)")
	output := flag.String("output", defaults.Output, "Output file (.png, .bmp, .tif or .tiff)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("SDF Raymarcher")
		fmt.Println("Usage: raymarcher [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %-12s - %s\n", name, scene.Describe(name))
		}
		return
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "slices":
			cfg.Slices = *slices
		case "max-distance":
			cfg.MaxDistance = *maxDistance
		case "output":
			cfg.Output = *output
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene looks up a scene by name
func createScene(name string) (*scene.Scene, error) {
	s, err := scene.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, scene.Names())
	}
	return s, nil
}

// run renders the configured scene and writes the image to cfg.Output
func run(ctx context.Context, cfg config.Config, logger core.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d shapes)...\n", selectedScene.Name, selectedScene.World.Len())

	cameraConfig := selectedScene.Camera
	cameraConfig.AspectRatio = float64(cfg.Width) / float64(cfg.Height)
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return fmt.Errorf("creating camera: %w", err)
	}

	maxDistance := cfg.MaxDistance
	if maxDistance == 0 {
		maxDistance = selectedScene.MaxDistance
	}

	sr, err := renderer.NewSliceRenderer(selectedScene.World, camera, selectedScene.Shader, renderer.RenderConfig{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Slices:      cfg.Slices,
		MaxDistance: maxDistance,
	}, logger)
	if err != nil {
		return err
	}

	img, stats, err := sr.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Deepest reflection: %d bounces, average luminance %.3f\n",
		stats.MaxBounces, renderer.AverageLuminance(img.Image()))

	if err := img.Save(cfg.Output); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}
	logger.Printf("Render saved as %s\n", cfg.Output)
	return nil
}
