// Package game wires the window, model loader, scene and renderer into the
// viewer's frame loop.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/assets"
	"github.com/Faultbox/meshgrid/internal/config"
	"github.com/Faultbox/meshgrid/internal/engine/camera"
	"github.com/Faultbox/meshgrid/internal/engine/lighting"
	"github.com/Faultbox/meshgrid/internal/engine/renderer"
	"github.com/Faultbox/meshgrid/internal/engine/ui"
	"github.com/Faultbox/meshgrid/internal/game/states"
	gameui "github.com/Faultbox/meshgrid/internal/game/ui"
	"github.com/Faultbox/meshgrid/internal/logger"
	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

const windowTitle = "MeshGrid"

// window is the part of ui.Backend the game drives.
type window interface {
	Run(renderFunc func())
	SetWindowTitle(title string)
	Close()
	Shutdown()
}

var (
	openWindow = func(title string, width, height int32) (window, error) {
		return ui.NewBackend(title, width, height)
	}
	newRenderer = renderer.New
)

// Game is the viewer application.
type Game struct {
	config *config.Config

	backend  window
	renderer *renderer.Renderer
	loader   *assets.Loader
	scene    *scatter.Scene
	states   *states.Manager
	clock    *FrameClock

	loadingUI *gameui.LoadingUI
	overlay   *gameui.DebugOverlay

	err error
}

// New creates the window and renderer and starts decoding the model.
func New(cfg *config.Config) (*Game, error) {
	settings, err := cfg.SceneSettings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		config: cfg,
		states: states.NewManager(),
		clock:  NewFrameClock(cfg.Graphics.MaxFrameStep),
		loader: assets.NewLoader(),
	}

	g.backend, err = openWindow(windowTitle, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	cam := camera.New(
		math.Vec3From(cfg.Camera.Position),
		math.Vec3From(cfg.Camera.Target),
		cfg.Camera.FOVDegrees,
	)
	g.renderer, err = newRenderer(renderer.Config{
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		Samples: cfg.Graphics.Samples,
		Light: lighting.New(
			cfg.Lighting.AmbientBrightness,
			cfg.Lighting.SunLongitude,
			cfg.Lighting.SunLatitude,
		),
		ClearColor: [4]float32{0.1, 0.1, 0.12, 1.0},
	}, cam)
	if err != nil {
		g.backend.Shutdown()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.scene = scatter.NewScene(g.renderer, settings)

	g.overlay = gameui.NewDebugOverlay(cfg.Overlay.Title, cfg.Overlay.Label)
	g.overlay.Enabled = cfg.Overlay.Enabled
	g.overlay.ShowFPS = cfg.Overlay.ShowFPS

	if err := g.loader.Start(cfg.Model.Path); err != nil {
		g.renderer.Close()
		g.backend.Shutdown()
		return nil, err
	}

	loading := states.NewLoadingState(g.loader, g.states, g.view)
	g.loadingUI = gameui.NewLoadingUI(loading, cfg.Model.Path)
	g.states.Change(loading)

	logger.Info("game initialized",
		zap.String("model", cfg.Model.Path),
		zap.Int("columns", settings.Layout.Columns),
	)
	return g, nil
}

// view is called once the model has decoded.
func (g *Game) view(doc *assets.Document) states.State {
	g.renderer.SetSource(doc)
	g.backend.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, doc.Path))
	return states.NewViewingState(doc, g.scene)
}

// Run runs the frame loop until the window closes or a state fails.
func (g *Game) Run() error {
	logger.Info("starting game loop")
	g.backend.Run(g.frame)
	return g.err
}

// frame is called by the backend once per frame inside the ImGui frame.
func (g *Game) frame() {
	if g.err != nil {
		return
	}

	dt := g.clock.Step()
	if err := g.states.Update(dt); err != nil {
		g.err = err
		logger.Error("state update failed", zap.Error(err))
		g.backend.Close()
		return
	}

	_, _, w, h := ui.Viewport()

	switch s := g.states.Current().(type) {
	case *states.LoadingState:
		g.loadingUI.Render(w, h)
	case *states.ViewingState:
		if w > 0 && h > 0 {
			g.renderer.Resize(int(w), int(h))
		}
		ui.SceneImage(g.renderer.Render())

		instances, meshes := g.renderer.Stats()
		g.overlay.Stats = gameui.Stats{
			State:     s.Name(),
			Model:     g.config.Model.Path,
			Instances: instances,
			Meshes:    meshes,
		}
	}

	g.overlay.Update(dt)
	g.overlay.Render()
}

// Close releases GPU resources.
func (g *Game) Close() {
	logger.Info("closing game")
	if g.renderer != nil {
		g.renderer.Close()
	}
}
