// Package game implements the viewer loop: window and GL setup, the fixed
// timestep simulation clock, input handling and per-frame rendering.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/lowtide/openworld/internal/config"
	"github.com/lowtide/openworld/internal/engine/camera"
	"github.com/lowtide/openworld/internal/engine/render"
	"github.com/lowtide/openworld/internal/engine/render/glbackend"
	"github.com/lowtide/openworld/internal/engine/texture"
	"github.com/lowtide/openworld/internal/engine/window"
	"github.com/lowtide/openworld/internal/engine/world"
	"github.com/lowtide/openworld/internal/logger"
	"github.com/lowtide/openworld/pkg/math"
)

// Game owns the viewer's running state.
type Game struct {
	config *config.Config

	window   *window.Window
	backend  *glbackend.Backend
	camera   *camera.Camera
	world    *world.World
	textures *texture.Registry
	renderer *render.Renderer

	running bool
}

// New creates the window, GL backend and scene. The GL context must not
// exist prior to this call; window creation provides it.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{config: cfg}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "openworld viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	g.backend, err = glbackend.New()
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("create backend: %w", err)
	}

	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	fov := cfg.Graphics.FOVDegrees * gomath.Pi / 180
	g.camera = camera.New(fov, aspect, cfg.Graphics.NearClip, 450)

	g.textures = texture.NewRegistry()
	g.world, err = g.buildDemoWorld(cfg.World.StartHour)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("build demo world: %w", err)
	}
	g.renderer = render.New(g.backend, g.camera, g.world, g.textures, logger.Log)

	logger.Info("viewer initialized",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Float32("start_hour", cfg.World.StartHour),
	)
	return g, nil
}

// Run drives the main loop: fixed-rate simulation ticks with rendering at
// display rate, passing the tick interpolation fraction to the renderer.
func (g *Game) Run() error {
	g.running = true

	tickRate := g.config.World.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	tick := time.Second / time.Duration(tickRate)

	last := time.Now()
	var accumulator time.Duration

	frames := 0
	fpsTimer := time.Now()

	for g.running {
		now := time.Now()
		accumulator += now.Sub(last)
		last = now

		g.pollEvents()

		for accumulator >= tick {
			g.update(float32(tick.Seconds()))
			accumulator -= tick
		}
		alpha := float32(accumulator.Seconds() / tick.Seconds())

		if err := g.renderer.RenderWorld(alpha); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		g.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Sugar.Debugf("fps %d rendered %d culled %d",
				frames, g.renderer.Rendered(), g.renderer.Culled())
			frames = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (g *Game) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			g.running = false
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				g.running = false
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := g.window.Size()
				g.backend.Resize(w, h)
				g.camera.Aspect = float32(w) / float32(h)
			}
		}
	}
}

// update advances the simulation by one fixed tick.
func (g *Game) update(dt float32) {
	// TimeScale is game minutes per real second.
	g.world.Clock.Advance(g.config.World.TimeScale * dt)

	// Slow orbit around the scene center.
	t := float64(g.world.Clock.TimeOfDay()) * 0.02
	eye := math.Vec3{
		X: float32(60 * gomath.Cos(t)),
		Y: float32(60 * gomath.Sin(t)),
		Z: 20,
	}
	g.camera.LookAt(eye, math.Vec3{})
}

// Close releases the window and GL resources.
func (g *Game) Close() {
	if g.window != nil {
		g.window.Close()
	}
	logger.Info("viewer closed")
}
