package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// viewer opens a desktop window showing the rendered scene and
// re-renders at the new resolution whenever the window is resized.

func main() {
	sceneName := flag.String("scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	maxDepth := flag.Int("depth", 3, "Maximum reflection recursion depth")
	flag.Parse()

	sceneObj, err := scene.ByName(*sceneName)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	g := &viewerGame{
		scene:    sceneObj,
		maxDepth: *maxDepth,
	}

	ebiten.SetWindowTitle("Whitted Raytracer (" + *sceneName + ")")
	ebiten.SetWindowSize(800, 450)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

type viewerGame struct {
	scene    *scene.Scene
	maxDepth int

	mu        sync.Mutex
	width     int // current window size
	height    int
	fb        *renderer.Framebuffer // latest completed render
	fbDirty   bool
	rendering bool
	inflightW int
	inflightH int
	cancel    context.CancelFunc

	img *ebiten.Image
}

func (g *viewerGame) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.width <= 0 || g.height <= 0 {
		return nil
	}

	if g.rendering {
		// A stale in-flight render is cancelled; the next Update
		// starts one at the current size.
		if g.inflightW != g.width || g.inflightH != g.height {
			g.cancel()
		}
		return nil
	}

	upToDate := g.fb != nil && g.fb.Width() == g.width && g.fb.Height() == g.height
	if !upToDate {
		g.startRenderLocked()
	}
	return nil
}

// startRenderLocked kicks off a render at the current window size.
// Caller holds g.mu.
func (g *viewerGame) startRenderLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.rendering = true
	g.inflightW, g.inflightH = g.width, g.height

	width, height := g.width, g.height
	go func() {
		defer cancel()
		config := renderer.Config{MaxDepth: g.maxDepth}
		camera := renderer.NewCamera(core.NewVec3(0, 0, 0))
		rt := renderer.NewRaytracer(g.scene, camera, width, height, config, nil)

		fb, err := rt.Render(ctx)

		g.mu.Lock()
		defer g.mu.Unlock()
		g.rendering = false
		if err != nil {
			// Cancelled by a resize; anything else is unexpected.
			if ctx.Err() == nil {
				log.Printf("Render failed: %v", err)
			}
			return
		}
		g.fb = fb
		g.fbDirty = true
	}()
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fb == nil {
		return
	}

	if g.fbDirty {
		if g.img == nil || g.img.Bounds().Dx() != g.fb.Width() || g.img.Bounds().Dy() != g.fb.Height() {
			if g.img != nil {
				g.img.Deallocate()
			}
			g.img = ebiten.NewImage(g.fb.Width(), g.fb.Height())
		}
		g.img.WritePixels(g.fb.ToImage().Pix)
		g.fbDirty = false
	}

	// Stretch the last completed frame while a resize render is pending.
	op := &ebiten.DrawImageOptions{}
	sx := float64(screen.Bounds().Dx()) / float64(g.img.Bounds().Dx())
	sy := float64(screen.Bounds().Dy()) / float64(g.img.Bounds().Dy())
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.img, op)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	g.width, g.height = outsideWidth, outsideHeight
	g.mu.Unlock()
	return outsideWidth, outsideHeight
}
