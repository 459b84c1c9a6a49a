package mesh

import (
	"github.com/chewxy/math32"
)

// UVSphere builds a sphere centered at the origin.
func UVSphere(radius float32, slices, stacks int) *Data {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	d := &Data{}
	for i := 0; i <= stacks; i++ {
		phi := math32.Pi/2 - float32(i)*math32.Pi/float32(stacks)
		cosPhi, sinPhi := math32.Cos(phi), math32.Sin(phi)
		for j := 0; j <= slices; j++ {
			theta := float32(j) * 2 * math32.Pi / float32(slices)
			x := math32.Cos(theta) * cosPhi
			y := math32.Sin(theta) * cosPhi
			z := sinPhi
			d.vertex(radius*x, radius*y, radius*z, x, y, z)
		}
	}

	row := uint16(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i)*row + uint16(j)
			b := a + row
			d.quad(a, b, b+1, a+1)
		}
	}
	return d
}

// UVTorus builds a torus around the z-axis. The tube spans the radii between
// outer and inner; they may be given in either order.
func UVTorus(outer, inner float32, slices, stacks int) *Data {
	slices = max(slices, 3)
	stacks = max(stacks, 3)

	center := (outer + inner) / 2
	tube := math32.Abs(outer - center)

	d := &Data{}
	for i := 0; i <= slices; i++ {
		u := float32(i) * 2 * math32.Pi / float32(slices)
		cu, su := math32.Cos(u), math32.Sin(u)
		for j := 0; j <= stacks; j++ {
			v := float32(j) * 2 * math32.Pi / float32(stacks)
			cv, sv := math32.Cos(v), math32.Sin(v)
			r := center + tube*cv
			d.vertex(r*cu, r*su, tube*sv, cv*cu, cv*su, sv)
		}
	}

	row := uint16(stacks + 1)
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			a := uint16(i)*row + uint16(j)
			b := a + row
			d.quad(a, b, b+1, a+1)
		}
	}
	return d
}

// UVCylinder builds a capped cylinder along the z-axis, centered at the origin.
func UVCylinder(radius, height float32, slices int) *Data {
	slices = max(slices, 3)
	half := height / 2

	d := &Data{}
	for i := 0; i <= slices; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		d.vertex(radius*c, radius*s, -half, c, s, 0)
		d.vertex(radius*c, radius*s, half, c, s, 0)
	}
	for i := 0; i < slices; i++ {
		a := uint16(2 * i)
		d.quad(a, a+2, a+3, a+1)
	}

	addCap(d, radius, half, slices, 1)
	addCap(d, radius, -half, slices, -1)
	return d
}

// UVCone builds a cone along the z-axis with its base at -height/2 and its
// tip at +height/2.
func UVCone(radius, height float32, slices int) *Data {
	slices = max(slices, 3)
	half := height / 2

	// Side normals tilt toward +z by the slope of the cone.
	slope := math32.Atan2(radius, height)
	nr, nz := math32.Cos(slope), math32.Sin(slope)

	d := &Data{}
	for i := 0; i <= slices; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		d.vertex(radius*c, radius*s, -half, nr*c, nr*s, nz)
		d.vertex(0, 0, half, nr*c, nr*s, nz)
	}
	for i := 0; i < slices; i++ {
		a := uint16(2 * i)
		d.Indices = append(d.Indices, a, a+2, a+1)
	}

	addCap(d, radius, -half, slices, -1)
	return d
}

// addCap adds a flat disk at height z facing +z (dir 1) or -z (dir -1).
func addCap(d *Data, radius, z float32, slices int, dir float32) {
	center := d.vertex(0, 0, z, 0, 0, dir)
	for i := 0; i <= slices; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(slices)
		d.vertex(radius*math32.Cos(theta), radius*math32.Sin(theta), z, 0, 0, dir)
	}
	for i := 0; i < slices; i++ {
		a := center + 1 + uint16(i)
		if dir > 0 {
			d.Indices = append(d.Indices, center, a, a+1)
		} else {
			d.Indices = append(d.Indices, center, a+1, a)
		}
	}
}

// FlatRing builds an annulus in the xy-plane facing +z.
func FlatRing(inner, outer float32, slices int) *Data {
	slices = max(slices, 3)

	d := &Data{}
	for i := 0; i <= slices; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		d.vertex(inner*c, inner*s, 0, 0, 0, 1)
		d.vertex(outer*c, outer*s, 0, 0, 0, 1)
	}
	for i := 0; i < slices; i++ {
		a := uint16(2 * i)
		d.quad(a, a+1, a+3, a+2)
	}
	return d
}

// cubeFaces lists each face's normal and the two in-plane axes spanning it.
var cubeFaces = [6][3][3]float32{
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

// NewCube builds an axis-aligned cube centered at the origin.
func NewCube(side float32) *Data {
	h := side / 2
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	d := &Data{}
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		first := uint16(d.VertexCount())
		for _, c := range corners {
			var p [3]float32
			for k := 0; k < 3; k++ {
				p[k] = h * (n[k] + c[0]*u[k] + c[1]*v[k])
			}
			d.vertex(p[0], p[1], p[2], n[0], n[1], n[2])
		}
		d.quad(first, first+1, first+2, first+3)
	}
	return d
}
