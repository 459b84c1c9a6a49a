package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/anim"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/camera"
	"github.com/Faultbox/carscene/internal/engine/ui"
	"github.com/Faultbox/carscene/internal/logger"
	"github.com/Faultbox/carscene/internal/scene"
	"github.com/Faultbox/carscene/pkg/math"
)

// Canvas is the surface frames are drawn on.
type Canvas interface {
	Begin()
	End()
	Aspect() float32
}

// Projection holds the perspective parameters.
type Projection struct {
	FOVY      float32 // radians
	Near, Far float32
}

// Matrix returns the projection for the given aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	return math.Perspective(p.FOVY, aspect, p.Near, p.Far)
}

// Driver decides once per display refresh whether to advance the animation,
// redraw the current state, or do nothing. It owns the clock; the toggles and
// the camera are shared with the input side.
type Driver struct {
	clock      *anim.Clock
	surface    *controls.Surface
	camera     *camera.Trackball
	scene      *scene.Scene
	canvas     Canvas
	projection Projection
	log        *zap.Logger
	draw       anim.RenderFunc

	pending bool  // a redraw was requested outside of flags and camera
	lastErr error // most recent frame error, cleared by a good frame
}

// NewDriver wires the frame loop pieces together.
func NewDriver(sc *scene.Scene, canvas Canvas, surface *controls.Surface, cam *camera.Trackball, proj Projection) *Driver {
	d := &Driver{
		clock:      anim.NewClock(),
		surface:    surface,
		camera:     cam,
		scene:      sc,
		canvas:     canvas,
		projection: proj,
		log:        logger.Named("driver"),
		pending:    true,
	}
	d.draw = d.render
	return d
}

// Step runs one refresh. It reports whether a frame was drawn; a failed frame
// counts as drawn and its error is returned.
func (d *Driver) Step() (bool, error) {
	flags := d.surface.Flags()
	d.clock.SetRunning(flags.Animate)

	moved := d.camera.Update()
	dirty := d.surface.TakeDirty()

	var err error
	switch {
	case d.clock.Running():
		_, err = d.clock.Tick(d.draw)
	case dirty || moved || d.pending:
		err = d.clock.Redraw(d.draw)
	default:
		return false, nil
	}
	d.pending = false

	if err != nil {
		d.fail(err)
		return true, err
	}
	d.lastErr = nil
	return true, nil
}

func (d *Driver) render(st anim.State) error {
	d.canvas.Begin()
	defer d.canvas.End()

	return d.scene.Render(scene.Frame{
		View:       d.camera.ViewMatrix(),
		Projection: d.projection.Matrix(d.canvas.Aspect()),
		State:      st,
		Flags:      d.surface.Flags(),
	})
}

// fail stops the animation after a broken frame. Only the first error of a
// run of failures is logged.
func (d *Driver) fail(err error) {
	if d.lastErr == nil {
		d.log.Error("frame failed", zap.Error(err))
	}
	d.lastErr = err

	d.clock.Stop()
	d.surface.SetAnimate(false)
	d.surface.TakeDirty()
}

// Invalidate requests a redraw on the next Step, e.g. after a resize.
func (d *Driver) Invalidate() {
	d.pending = true
}

// Handle carries out a command. Screenshot and quit are left to the caller;
// Handle reports false for them.
func (d *Driver) Handle(cmd controls.Command) bool {
	if cmd == controls.CmdReset {
		d.Reset()
		return true
	}
	if !d.surface.Apply(cmd) {
		return false
	}
	d.log.Debug("toggle", zap.Stringer("command", cmd), zap.Any("flags", d.surface.Flags()))
	return true
}

// Reset returns the animation, toggles and camera to their initial state.
// The animation is left stopped whatever the configuration started with.
func (d *Driver) Reset() {
	d.clock.Reset()
	d.surface.Reset()
	d.camera.Reset()
	d.lastErr = nil
	d.pending = true
	d.log.Info("scene reset")
}

// State returns the animation state of the last frame.
func (d *Driver) State() anim.State {
	return d.clock.State()
}

// Camera returns the camera the driver reads the view from.
func (d *Driver) Camera() *camera.Trackball {
	return d.camera
}

// Status summarizes the driver for the panel.
func (d *Driver) Status() ui.Status {
	st := d.clock.State()
	return ui.Status{
		Frame:    st.FrameNumber,
		SunAngle: st.SunAngle,
		Daytime:  st.Daytime,
		Running:  d.clock.Running(),
		Err:      d.lastErr,
	}
}
