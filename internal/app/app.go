// Package app runs the scene: it opens the window in the configured UI mode,
// builds the renderer and meshes, and drives frames until the user quits.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/config"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/camera"
	"github.com/Faultbox/carscene/internal/engine/debug"
	"github.com/Faultbox/carscene/internal/engine/renderer"
	"github.com/Faultbox/carscene/internal/logger"
	"github.com/Faultbox/carscene/internal/scene"
	"github.com/Faultbox/carscene/pkg/math"
)

// ErrMissingRenderContext is returned when no window or GL context could be
// created. Nothing is rendered in that case.
var ErrMissingRenderContext = errors.New("no render context")

const windowTitle = "Car Scene"

// runner is one UI mode.
type runner interface {
	run(a *App) error
	close()
}

// App is the running program.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	mode   runner
	gl     *renderer.Renderer
	driver *Driver
	shots  *debug.Screenshots
}

// New opens the window for the configured UI mode and prepares everything a
// frame needs. A window or GL failure wraps ErrMissingRenderContext.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		shots: debug.NewScreenshots(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
	}

	a.log.Info("starting",
		zap.String("ui", cfg.UI.Mode),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	switch cfg.UI.Mode {
	case config.UIModePanel:
		a.mode, err = newPanelMode(cfg)
	default:
		a.mode, err = newKeysMode(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingRenderContext, err)
	}

	if err := renderer.InitGL(); err != nil {
		a.mode.close()
		return nil, fmt.Errorf("%w: %w", ErrMissingRenderContext, err)
	}

	a.gl, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.mode.close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	meshes, err := scene.NewRegistry(a.gl)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create meshes: %w", err)
	}

	a.driver = newDriver(cfg, scene.New(a.gl, meshes), a.gl)
	return a, nil
}

// newDriver builds the frame driver from config.
func newDriver(cfg *config.Config, sc *scene.Scene, canvas Canvas) *Driver {
	dir := cfg.Camera.ViewDirection
	cam := camera.NewTrackball(cfg.Camera.Distance, math.Vec3{X: dir[0], Y: dir[1], Z: dir[2]}, cfg.Scene.FrameRate)
	cam.DragSensitivity = cfg.Camera.DragSensitivity
	cam.Inertia = cfg.Camera.Inertia

	return NewDriver(sc, canvas, controls.NewSurface(cfg.Controls()), cam, Projection{
		FOVY: math.Radians(cfg.Graphics.FOVDegrees),
		Near: cfg.Graphics.Near,
		Far:  cfg.Graphics.Far,
	})
}

// Run drives frames until the window closes or the user quits.
func (a *App) Run() error {
	a.log.Info("entering frame loop")
	return a.mode.run(a)
}

// Close releases GL resources and the window.
func (a *App) Close() {
	a.log.Info("closing")
	if a.gl != nil {
		a.gl.Close()
		a.gl = nil
	}
	if a.mode != nil {
		a.mode.close()
		a.mode = nil
	}
}

// saveScreenshot writes bottom-up pixels for the current frame.
func (a *App) saveScreenshot(pixels []byte, width, height int) (string, error) {
	path, err := a.shots.SavePixels(pixels, width, height, a.driver.State().FrameNumber)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return "", err
	}
	return path, nil
}
