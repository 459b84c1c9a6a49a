// Package mesh generates the primitive shapes the scene is built from and
// describes the GPU handles created for them.
package mesh

import "fmt"

// Kind identifies one of the fixed primitive shapes.
type Kind int

const (
	Torus Kind = iota
	Sphere
	Cone
	Cylinder
	Disk
	Ring
	Cube

	// KindCount is the number of primitive kinds.
	KindCount
)

var kindNames = [KindCount]string{
	Torus:    "torus",
	Sphere:   "sphere",
	Cone:     "cone",
	Cylinder: "cylinder",
	Disk:     "disk",
	Ring:     "ring",
	Cube:     "cube",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Data is raw indexed triangle geometry. Positions and Normals are packed xyz.
type Data struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (d *Data) VertexCount() int {
	return len(d.Positions) / 3
}

// TriangleCount returns the number of indexed triangles.
func (d *Data) TriangleCount() int {
	return len(d.Indices) / 3
}

func (d *Data) vertex(x, y, z, nx, ny, nz float32) uint16 {
	i := uint16(d.VertexCount())
	d.Positions = append(d.Positions, x, y, z)
	d.Normals = append(d.Normals, nx, ny, nz)
	return i
}

func (d *Data) quad(a, b, c, e uint16) {
	d.Indices = append(d.Indices, a, b, c, a, c, e)
}

// Handle references geometry uploaded to the rendering backend. It is created
// once at startup and never changes.
type Handle struct {
	VAO        uint32
	VertexVBO  uint32
	NormalVBO  uint32
	EBO        uint32
	IndexCount int32
}

// Build returns the geometry for a kind with the sizes the scene is modelled in.
func Build(k Kind) (*Data, error) {
	switch k {
	case Torus:
		return UVTorus(0.5, 1, 16, 8), nil
	case Sphere:
		return UVSphere(1, 32, 16), nil
	case Cone:
		return UVCone(0.5, 1, 32), nil
	case Cylinder:
		return UVCylinder(0.5, 1, 32), nil
	case Disk:
		return UVCylinder(5.5, 0.5, 64), nil
	case Ring:
		return FlatRing(3.3, 4.8, 40), nil
	case Cube:
		return NewCube(1), nil
	default:
		return nil, fmt.Errorf("unknown mesh kind %d", int(k))
	}
}
