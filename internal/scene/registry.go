package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/internal/logger"
	"github.com/Faultbox/carscene/pkg/math"
)

// Cones and cylinders are modelled centered on the z-axis; drawing them with
// these offsets puts their base at z=0. The disk likewise sits on z=0.
var meshOffsets = [mesh.KindCount]math.Vec3{
	mesh.Cone:     {X: 0, Y: 0, Z: 0.5},
	mesh.Cylinder: {X: 0, Y: 0, Z: 0.5},
	mesh.Disk:     {X: 0, Y: 0, Z: 0.25},
}

// Registry holds one uploaded handle per primitive kind.
type Registry struct {
	handles [mesh.KindCount]mesh.Handle
}

// NewRegistry generates every primitive and uploads it through f.
func NewRegistry(f MeshFactory) (*Registry, error) {
	r := &Registry{}
	for _, k := range mesh.Kinds() {
		data, err := mesh.Build(k)
		if err != nil {
			return nil, err
		}
		h, err := f.CreateMesh(k, data)
		if err != nil {
			return nil, fmt.Errorf("creating %s mesh: %w", k, err)
		}
		r.handles[k] = h
		logger.Debug("mesh created",
			zap.Stringer("kind", k),
			zap.Int("vertices", data.VertexCount()),
			zap.Int("triangles", data.TriangleCount()),
		)
	}
	return r, nil
}

// Handle returns the handle for a kind.
func (r *Registry) Handle(k mesh.Kind) mesh.Handle {
	return r.handles[k]
}

// Offset returns the local translation applied when drawing a kind.
func (r *Registry) Offset(k mesh.Kind) math.Vec3 {
	return meshOffsets[k]
}
