package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	maxDepth := flag.Int("depth", 3, "Maximum reflection recursion depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	if err := run(*sceneName, *width, *height, *maxDepth, *workers, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height, maxDepth, workers int, output string) error {
	selectedScene, err := scene.ByName(sceneName)
	if err != nil {
		return err
	}

	config := renderer.Config{MaxDepth: maxDepth, NumWorkers: workers}
	camera := renderer.NewCamera(core.NewVec3(0, 0, 0))
	raytracer := renderer.NewRaytracer(selectedScene, camera, width, height, config, nil)

	startTime := time.Now()
	fb, err := raytracer.Render(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	filename := output
	if filename == "" {
		outputDir := filepath.Join("output", sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}
