package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/config"
	"github.com/Faultbox/glowtext/internal/engine/raster"
	"github.com/Faultbox/glowtext/internal/engine/snapshot"
	"github.com/Faultbox/glowtext/internal/logger"
	"github.com/Faultbox/glowtext/internal/scene"
	"github.com/Faultbox/glowtext/internal/typeface"
)

// ApplyKeys feeds each character of keys to the scene as one key press and
// returns how many of them were bound.
func ApplyKeys(s *scene.Scene, keys string) int {
	n := 0
	for _, k := range keys {
		if s.HandleKey(k) {
			n++
		}
	}
	return n
}

// BuildScene creates the scene headless and waits for the font, bounded by
// ctx and the font timeout when it is positive. A font that fails to load
// leaves the text absent.
func BuildScene(ctx context.Context, cfg *config.Config) *scene.Scene {
	s := scene.New(aspect(cfg.Graphics.Width, cfg.Graphics.Height))

	var cancel context.CancelFunc
	if cfg.Font.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Font.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()
	s.ExpectFont(typeface.NewLoader(cfg.Font.Timeout).Load(ctx, cfg.Font.Source))
	s.WaitFont(ctx.Done())
	return s
}

// RenderSnapshot renders one frame on the CPU after applying keys and writes
// it as PNG to path. An empty path uses a timestamped name under the
// configured snapshot directory. It returns the path written.
func RenderSnapshot(ctx context.Context, cfg *config.Config, keys, path string) (string, error) {
	log := logger.Named("snapshot")

	s := BuildScene(ctx, cfg)
	if !s.TextReady() {
		log.Warn("rendering without text")
	}
	bound := ApplyKeys(s, keys)

	r := raster.New(cfg.Graphics.Width, cfg.Graphics.Height)
	r.Render(s)
	img := r.Image()

	var err error
	if path == "" {
		path, err = snapshot.NewWriter(cfg.Snapshot.Dir, cfg.Snapshot.Prefix).Save(img)
	} else {
		err = snapshot.SaveTo(path, img)
	}
	if err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	log.Info("snapshot written",
		zap.String("path", path),
		zap.Int("keys", bound),
		zap.Int("triangles", r.Stats.Triangles),
		zap.Int("fragments", r.Stats.Fragments),
	)
	return path, nil
}
