package scene

import (
	"strings"

	"github.com/Faultbox/carscene/internal/anim"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/pkg/math"
)

// Context is the state threaded through one walk of the scene: the transform
// stack, the current material, the frame's animation state and toggles, and
// where draws or captures go.
//
// A context either draws (out is set) or captures light carriers (carriers is
// set). Node code is the same for both.
type Context struct {
	stack  *Stack
	meshes *Registry

	state anim.State
	flags controls.Flags

	color    [4]float32
	emissive [3]float32
	path     []string

	out      Backend
	carriers *lighting.Carriers
}

var _ MaterialSink = (*Context)(nil)

func newContext(base math.Mat4, meshes *Registry, state anim.State, flags controls.Flags) *Context {
	return &Context{
		stack:  NewStack(base),
		meshes: meshes,
		state:  state,
		flags:  flags,
		color:  [4]float32{1, 1, 1, 1},
		path:   make([]string, 0, 8),
	}
}

// State returns the animation state for this walk.
func (c *Context) State() anim.State { return c.state }

// Flags returns the feature toggles for this walk.
func (c *Context) Flags() controls.Flags { return c.flags }

// Daytime reports whether the sun is up for this walk.
func (c *Context) Daytime() bool { return c.state.Daytime }

// Scope runs body with local composed onto the current transform, restoring
// the transform when body returns. A restore without a matching save panics
// with ErrStackUnderflow.
func (c *Context) Scope(name string, local math.Mat4, body func()) {
	c.stack.Save()
	c.path = append(c.path, name)
	defer func() {
		c.path = c.path[:len(c.path)-1]
		if err := c.stack.Restore(); err != nil {
			panic(err)
		}
	}()

	c.stack.Compose(local)
	body()
}

// Compose applies local to the current transform inside the enclosing scope.
func (c *Context) Compose(local math.Mat4) {
	c.stack.Compose(local)
}

// SetColor sets the diffuse color used by following draws.
func (c *Context) SetColor(rgba [4]float32) {
	c.color = rgba
}

// SetEmissive sets the emissive color used by following draws.
func (c *Context) SetEmissive(rgb [3]float32) {
	c.emissive = rgb
}

// Draw renders a primitive with the transform and material current right now.
func (c *Context) Draw(k mesh.Kind) {
	if c.out == nil {
		return
	}

	mv := c.stack.Current()
	if off := c.meshes.Offset(k); off != (math.Vec3{}) {
		mv = mv.Mul(math.Translate(off.X, off.Y, off.Z))
	}

	c.out.Draw(&DrawCall{
		Path:      strings.Join(c.path, "/"),
		Kind:      k,
		Mesh:      c.meshes.Handle(k),
		ModelView: mv,
		Normal:    mv.NormalMatrix(),
		Diffuse:   c.color,
		Emissive:  c.emissive,
	})
}

// Carrier names a node whose transform places a light.
type Carrier int

const (
	SunCarrier Carrier = iota
	LampCarrier
	LeftHeadlightCarrier
	RightHeadlightCarrier
	UFOCarrier
)

// Capture records the current transform as the carrier of a light. It does
// nothing while drawing.
func (c *Context) Capture(which Carrier) {
	if c.carriers == nil {
		return
	}

	m := c.stack.Current()
	switch which {
	case SunCarrier:
		c.carriers.Sun = m
	case LampCarrier:
		c.carriers.Lamp = m
	case LeftHeadlightCarrier:
		c.carriers.HeadlightLeft = m
	case RightHeadlightCarrier:
		c.carriers.HeadlightRight = m
	case UFOCarrier:
		c.carriers.UFO = m
	}
}
