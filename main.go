package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/integrator"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/renderer"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene        string
	Width        int // 0 keeps the scene's resolution
	Height       int
	Threads      int
	AntiAliasing int
	Aperture     float64 // Negative keeps the scene's aperture
	Shadows      string
	Grid         int // Grid line interval in pixels, 0 for none
	OutputDir    string
	Seed         int64
	DebugPrint   float64 // Seconds between progress lines
	Help         bool
}

// parseFlags reads the options from args (without the program name)
func parseFlags(args []string, output io.Writer) (Config, *flag.FlagSet, error) {
	var cfg Config
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Scene, "scene", "sphere-lights", "Scene ID, see -help for the list")
	fs.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&cfg.Threads, "threads", -1, "0 = sequential, -1 = parallel rows, -2 = CPUs minus two, n = n workers")
	fs.IntVar(&cfg.AntiAliasing, "aa", 0, "Antialiasing grid side per pixel (0 = off)")
	fs.Float64Var(&cfg.Aperture, "aperture", -1, "Depth of field focal distance (0 = off, negative = scene default)")
	fs.StringVar(&cfg.Shadows, "shadows", "none", "Shadow mode: none, hard or soft")
	fs.IntVar(&cfg.Grid, "grid", 0, "Draw grid lines every n pixels (0 = off)")
	fs.StringVar(&cfg.OutputDir, "out", "", "Output directory (default output/<scene>)")
	fs.Int64Var(&cfg.Seed, "seed", renderer.DefaultSeed, "Seed for jittered sampling")
	fs.Float64Var(&cfg.DebugPrint, "debug-print", 1, "Seconds between progress lines (0 = quiet)")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return Config{}, fs, err
	}
	return cfg, fs, nil
}

// createScene loads a built-in scene and prepares it for rendering
func createScene(id string) (scene.Scene, error) {
	s, err := scene.Load(id)
	if err != nil {
		return scene.Scene{}, err
	}
	return s.Preprocess()
}

// createOutputDir returns the directory renders of a scene are saved in
func createOutputDir(sceneID string) string {
	return filepath.Join("output", sceneID)
}

// buildCamera configures a camera for the scene from the options
func buildCamera(cfg Config, s scene.Scene, logger core.Logger) (*renderer.Camera, error) {
	shadows, err := integrator.ParseShadowMode(cfg.Shadows)
	if err != nil {
		return nil, err
	}

	builder := renderer.NewCameraBuilder().
		WithSceneCamera(s.Camera).
		WithRayTracer(integrator.NewSimpleRayTracer(s, integrator.Config{Shadows: shadows})).
		WithAntiAliasing(cfg.AntiAliasing).
		WithMultithreading(cfg.Threads).
		WithDebugPrint(cfg.DebugPrint).
		WithSeed(cfg.Seed).
		WithLogger(logger)
	if cfg.Width > 0 || cfg.Height > 0 {
		width, height := cfg.Width, cfg.Height
		if width <= 0 {
			width = s.Camera.Width
		}
		if height <= 0 {
			height = s.Camera.Height
		}
		builder = builder.WithResolution(width, height)
	}
	if cfg.Aperture >= 0 {
		builder = builder.WithApertureDistance(cfg.Aperture)
	}
	return builder.Build()
}

// run renders the configured scene and returns the path of the saved image
func run(cfg Config, logger core.Logger) (string, renderer.RenderStats, error) {
	s, err := createScene(cfg.Scene)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	camera, err := buildCamera(cfg, s, logger)
	if err != nil {
		return "", renderer.RenderStats{}, fmt.Errorf("configuring camera: %w", err)
	}

	logger.Printf("Rendering %s...\n", s.Name)
	stats := camera.RenderImage()
	if cfg.Grid > 0 {
		camera.PrintGrid(cfg.Grid, core.NewVec3(255, 255, 255))
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = createOutputDir(cfg.Scene)
	}
	camera.Writer().Dir = outputDir
	name := fmt.Sprintf("render_%s", time.Now().Format("20060102_150405"))
	if err := camera.WriteToImage(name); err != nil {
		return "", stats, err
	}
	return camera.Writer().Path(name), stats, nil
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Ray Tracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-18s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func main() {
	cfg, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if cfg.Help {
		printHelp(fs)
		return
	}

	fmt.Println("Starting Ray Tracer...")
	path, stats, err := run(cfg, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Rays per pixel: %.1f on %d workers\n", stats.AverageRays, stats.Workers)
	fmt.Printf("Render saved as %s\n", path)
}
