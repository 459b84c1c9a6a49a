// Package scene walks the fixed scene graph: ground, lamp post, road ring,
// trees, the orbiting car and UFO, and the sun and lamp. Each frame is two
// walks over the same placements. The first records where the light-carrying
// nodes are, the second draws.
package scene

import (
	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/pkg/math"
)

// DrawCall is one mesh draw with the shading state in effect when it was issued.
type DrawCall struct {
	Path      string
	Kind      mesh.Kind
	Mesh      mesh.Handle
	ModelView math.Mat4
	Normal    math.Mat3
	Diffuse   [4]float32
	Emissive  [3]float32
}

// Backend receives a frame: projection and lights first, then draws.
type Backend interface {
	SetProjection(p math.Mat4)
	SetLights(t *lighting.Table)
	Draw(call *DrawCall)
}

// MeshFactory uploads raw geometry and returns a handle to it.
type MeshFactory interface {
	CreateMesh(kind mesh.Kind, data *mesh.Data) (mesh.Handle, error)
}

// MaterialSink holds the shading state that draws pick up.
type MaterialSink interface {
	SetColor(rgba [4]float32)
	SetEmissive(rgb [3]float32)
}
