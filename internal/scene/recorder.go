package scene

import (
	"strings"

	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/pkg/math"
)

// Recorder is a Backend and MeshFactory that keeps what it is given instead
// of drawing it.
type Recorder struct {
	Projection math.Mat4
	Lights     lighting.Table
	Calls      []DrawCall

	// Meshes holds the geometry passed to CreateMesh, by kind.
	Meshes map[mesh.Kind]*mesh.Data

	nextID uint32
}

var (
	_ Backend     = (*Recorder)(nil)
	_ MeshFactory = (*Recorder)(nil)
)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Meshes: make(map[mesh.Kind]*mesh.Data)}
}

// CreateMesh hands out sequential handles.
func (r *Recorder) CreateMesh(kind mesh.Kind, data *mesh.Data) (mesh.Handle, error) {
	r.nextID++
	r.Meshes[kind] = data
	return mesh.Handle{
		VAO:        r.nextID,
		IndexCount: int32(len(data.Indices)),
	}, nil
}

func (r *Recorder) SetProjection(p math.Mat4) {
	r.Projection = p
}

func (r *Recorder) SetLights(t *lighting.Table) {
	r.Lights = *t
}

func (r *Recorder) Draw(call *DrawCall) {
	r.Calls = append(r.Calls, *call)
}

// Reset drops recorded draws.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Under returns the draws whose path is prefix or lies below it.
func (r *Recorder) Under(prefix string) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Path == prefix || strings.HasPrefix(c.Path, prefix+"/") {
			out = append(out, c)
		}
	}
	return out
}

// CountKind returns how many draws used a primitive kind.
func (r *Recorder) CountKind(k mesh.Kind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == k {
			n++
		}
	}
	return n
}
