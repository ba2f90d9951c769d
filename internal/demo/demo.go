// Package demo runs the glowing-text scene in a window, or renders it once
// headless.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/config"
	"github.com/Faultbox/glowtext/internal/engine/input"
	"github.com/Faultbox/glowtext/internal/engine/renderer"
	"github.com/Faultbox/glowtext/internal/engine/snapshot"
	"github.com/Faultbox/glowtext/internal/engine/window"
	"github.com/Faultbox/glowtext/internal/logger"
	"github.com/Faultbox/glowtext/internal/scene"
	"github.com/Faultbox/glowtext/internal/typeface"
)

// Title is the window title.
const Title = "glowtext"

// Demo is the windowed demo instance.
type Demo struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	shots    *snapshot.Writer
	cancel   context.CancelFunc
	log      *zap.Logger
}

// New opens the window, creates the renderer and starts loading the font.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg:   cfg,
		shots: snapshot.NewWriter(cfg.Snapshot.Dir, cfg.Snapshot.Prefix),
		log:   logger.Named("demo"),
	}
	d.log.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("font", cfg.Font.Source),
	)

	var err error
	d.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	width, height := d.window.DrawableSize()
	d.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to create renderer: %w", err), d.window.Close())
	}

	d.input = input.New()
	d.scene = scene.New(aspect(width, height))

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.scene.ExpectFont(typeface.NewLoader(cfg.Font.Timeout).Load(ctx, cfg.Font.Source))

	d.log.Info("demo initialized")
	return d, nil
}

// Run drives the main loop until the user quits.
func (d *Demo) Run() error {
	d.running = true

	var frameTime time.Duration
	if d.cfg.Graphics.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(d.cfg.Graphics.FPSLimit)
	}
	frameCount := 0
	fpsTimer := time.Now()

	d.log.Info("starting main loop")
	for d.running {
		frameStart := time.Now()

		if d.input.Update() {
			d.running = false
		}
		for _, ev := range d.input.Events() {
			d.handle(ev)
		}

		d.scene.Update()
		d.renderer.Render(d.scene)
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			d.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameTime > 0 {
			if rest := frameTime - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	return nil
}

func (d *Demo) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		// Event sizes are in window units; the viewport wants pixels.
		w, h := d.window.DrawableSize()
		d.renderer.Resize(w, h)
		d.scene.Camera.SetViewport(w, h)
	case input.EventKeyDown:
		if ev.Key == sdl.K_F12 {
			d.capture()
			return
		}
		d.scene.HandleKey(ev.Rune())
	}
}

// capture saves the last rendered frame under the snapshot directory.
func (d *Demo) capture() {
	pixels, w, h := d.renderer.ReadPixels()
	img, err := snapshot.FlipRows(pixels, w, h)
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := d.shots.Save(img)
	if err != nil {
		d.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	d.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer, then the window.
func (d *Demo) Close() error {
	d.log.Info("closing demo")
	if d.cancel != nil {
		d.cancel()
	}

	var err error
	if d.renderer != nil {
		err = multierr.Append(err, d.renderer.Close())
	}
	if d.window != nil {
		err = multierr.Append(err, d.window.Close())
	}
	return err
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
