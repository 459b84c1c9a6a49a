// Package anim advances the scene's animation state: the frame counter that
// drives the car's orbit and wheel spin, and the sun angle that drives the
// day/night cycle.
package anim

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/logger"
)

// SunStep is how far the sun moves per tick, in radians. A full day takes 720 ticks.
const SunStep = math.Pi / 360

// State is the animation state read by a render pass.
type State struct {
	FrameNumber int
	SunAngle    float64 // radians in [0, 2π)
	Daytime     bool
}

// Initial returns the state at startup and after a reset: sun overhead, daytime.
func Initial() State {
	return State{
		FrameNumber: 0,
		SunAngle:    math.Pi / 2,
		Daytime:     true,
	}
}

// IsDaytime reports whether the sun is above the horizon at the given angle.
func IsDaytime(sunAngle float64) bool {
	return sunAngle < math.Pi
}

// Next returns the state one tick later.
func (s State) Next() State {
	s.FrameNumber++
	s.SunAngle += SunStep
	if s.SunAngle > 2*math.Pi {
		s.SunAngle -= 2 * math.Pi
	}
	s.Daytime = IsDaytime(s.SunAngle)
	return s
}

// RenderFunc draws one frame for the given state.
type RenderFunc func(State) error

// Clock is a two-state (stopped/running) animation driver. It is not safe for
// concurrent use; the frame loop owns it.
type Clock struct {
	state   State
	running bool
	log     *zap.Logger
}

// NewClock creates a stopped clock at the initial state.
func NewClock() *Clock {
	return &Clock{
		state: Initial(),
		log:   logger.Named("clock"),
	}
}

// State returns the current animation state.
func (c *Clock) State() State {
	return c.state
}

// Running reports whether ticks advance the animation.
func (c *Clock) Running() bool {
	return c.running
}

// Start moves the clock to running. It is a no-op if already running.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.log.Info("animation started", zap.Int("frame", c.state.FrameNumber))
}

// Stop moves the clock to stopped. It is a no-op if already stopped.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.log.Info("animation stopped", zap.Int("frame", c.state.FrameNumber))
}

// SetRunning starts or stops the clock.
func (c *Clock) SetRunning(run bool) {
	if run {
		c.Start()
	} else {
		c.Stop()
	}
}

// Reset stops the clock and returns to the initial state.
func (c *Clock) Reset() {
	c.Stop()
	c.state = Initial()
}

// Tick advances one step and renders it. While stopped it does nothing and
// reports false. A render error stops the clock so a broken frame is not
// retried every refresh.
func (c *Clock) Tick(render RenderFunc) (bool, error) {
	if !c.running {
		return false, nil
	}
	c.state = c.state.Next()
	if err := render(c.state); err != nil {
		c.running = false
		c.log.Error("frame failed, animation stopped",
			zap.Int("frame", c.state.FrameNumber),
			zap.Error(err),
		)
		return true, fmt.Errorf("frame %d: %w", c.state.FrameNumber, err)
	}
	return true, nil
}

// Redraw renders the current state without advancing it.
func (c *Clock) Redraw(render RenderFunc) error {
	return render(c.state)
}
