package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/anim"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/logger"
	"github.com/Faultbox/carscene/pkg/math"
)

// Frame is everything one render pass reads. View is polled from the camera
// right before the pass.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	State      anim.State
	Flags      controls.Flags
}

// Scene renders frames of the fixed scene to a backend.
type Scene struct {
	out    Backend
	meshes *Registry
	log    *zap.Logger

	lights lighting.Table
}

// New creates a scene drawing to out with meshes from the registry.
func New(out Backend, meshes *Registry) *Scene {
	return &Scene{
		out:    out,
		meshes: meshes,
		log:    logger.Named("scene"),
		lights: lighting.Defaults(),
	}
}

// ComputeLighting walks the light carriers for a frame and derives the light
// table from where they ended up.
func (s *Scene) ComputeLighting(f Frame) lighting.Table {
	c := newContext(f.View, s.meshes, f.State, f.Flags)
	var at lighting.Carriers
	c.carriers = &at
	captureFrame(c)
	return lighting.Compute(f.State.Daytime, f.Flags, at)
}

// Render draws one frame. Lights are computed before anything is drawn, so
// draw order has no effect on lighting. A broken traversal is reported as an
// error instead of crashing the caller.
func (s *Scene) Render(f Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("scene traversal: %w", e)
			} else {
				err = fmt.Errorf("scene traversal: %v", r)
			}
		}
	}()

	s.lights = s.ComputeLighting(f)
	s.out.SetProjection(f.Projection)
	s.out.SetLights(&s.lights)

	c := s.draw(f)
	if d := c.stack.Depth(); d != 0 {
		return fmt.Errorf("scene traversal left %d transforms saved", d)
	}
	return nil
}

func (s *Scene) draw(f Frame) *Context {
	c := newContext(f.View, s.meshes, f.State, f.Flags)
	c.out = s.out
	drawFrame(c)

	if ce := s.log.Check(zap.DebugLevel, "frame drawn"); ce != nil {
		saves, restores := c.stack.Counts()
		ce.Write(
			zap.Int("frame", f.State.FrameNumber),
			zap.Bool("daytime", f.State.Daytime),
			zap.Int("saves", saves),
			zap.Int("restores", restores),
		)
	}
	return c
}

// Lights returns the light table used by the last rendered frame.
func (s *Scene) Lights() lighting.Table {
	return s.lights
}
