package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/carscene/pkg/math"
)

// Node colors.
var (
	groundColor   = [4]float32{0.1, 0.4, 0.1, 1}
	postColor     = [4]float32{0.8, 0.8, 1, 1}
	roadColor     = [4]float32{0.7, 0.7, 0.8, 1}
	trunkColor    = [4]float32{0.5, 0.3, 0.1, 1}
	crownColor    = [4]float32{0, 0.8, 0, 1}
	bodyColor     = [4]float32{1, 0, 0, 1}
	headlampColor = [4]float32{1, 1, 0.3, 1}
	axleColor     = [4]float32{0.8, 0.7, 0, 1}
	tyreColor     = [4]float32{0, 0, 0.7, 1}
	spokeColor    = [4]float32{0.9, 0.9, 0.6, 1}
	ufoColor      = [4]float32{0, 0, 0.7, 1}
	skyBodyColor  = [4]float32{0.3, 0.3, 0.3, 1}
)

// Emissive glows.
var (
	sunDayGlow   = [3]float32{0.7, 0.7, 0}
	sunNightGlow = [3]float32{0.1, 0.1, 0.1}
	lampGlow     = [3]float32{0.5, 0.5, 0}
	headlampGlow = [3]float32{0.4, 0.4, 0}
	noGlow       = [3]float32{0, 0, 0}
)

// upright turns a shape modelled along +z to stand along +y.
var upright = math.RotateX(-math.Radians(90))

// Fixed placements.
var (
	groundPlacement = math.Chain(math.Translate(0, -0.05, 0), math.RotateX(math.Radians(90)))
	postPlacement   = math.Chain(upright, math.Scale(0.15, 0.15, 1.5))
	lampPlacement   = math.Chain(math.Translate(0, 1.5, 0), math.UniformScale(0.15))

	bodyPlacement = math.Chain(math.Translate(0, 0.6, 0), math.Scale(6, 1.2, 3))
	cabPlacement  = math.Chain(math.Translate(0.5, 1.4, 0), math.Scale(3, 1, 2.8))
	lampLens      = math.Scale(0.1, 0.25, 0.25)
	shaftShape    = math.Chain(math.Scale(0.2, 0.2, 4.3), math.Translate(0, 0, -0.5))
	spokeShape    = math.Chain(upright, math.Scale(0.1, 0.1, 1.8), math.Translate(0, 0, -0.5))

	saucerPlacement = math.Chain(upright, math.UniformScale(3), math.Translate(2.5, 0.8, 5))
	domeTop         = math.Chain(upright, math.UniformScale(0.2), math.Translate(0, 0, 4.5))
	domeBottom      = math.Chain(upright, math.UniformScale(0.2), math.Translate(0, 0, -4.5))

	trunkShape = math.Scale(0.5, 0.5, 1)
	crownShape = math.Chain(math.Translate(0, 0, 0.8), math.Scale(1.5, 1.5, 2))

	// Headlights are tilted a little toward the road.
	headlightTilt = math.RotateY(-math32.Pi / 12)
	ufoBeamMount  = math.Chain(math.Translate(7.5, 10, -2), math.RotateY(math32.Pi/12))
)

// Headlamp mounts on the car, left then right.
var headlampMounts = [2]math.Mat4{
	math.Translate(-3, 0.6, -1),
	math.Translate(-3, 0.6, 1),
}

// Axles sit front and back of the car body.
var axleMounts = [2]math.Mat4{
	math.Translate(2.5, 0, 0),
	math.Translate(-2.5, 0, 0),
}

// Wheels sit at both ends of an axle.
var wheelMounts = [2]math.Mat4{
	math.Translate(0, 0, 2),
	math.Translate(0, 0, -2),
}

// Spokes are spread around the hub, in degrees.
var spokeTurns = [3]float32{0, 60, -60}

// sunPlacement puts the sun on its arc at the given angle.
func sunPlacement(angle float64) math.Mat4 {
	return math.Chain(
		math.RotateZ(float32(angle)),
		math.Translate(6.5, 0, 0),
		math.UniformScale(0.4),
	)
}

// vehicleFrame is the orbit position shared by the car, the UFO and their
// lights. One frame is one degree of orbit. The frame is reduced to a
// whole turn before converting so long runs keep full precision.
func vehicleFrame(frame int) math.Mat4 {
	return math.Chain(
		math.RotateY(math.Radians(float32(-(frame % 360)))),
		math.Translate(0, 0.3, 4),
		math.UniformScale(0.3),
	)
}

// wheelSpin turns the wheels ten degrees per frame.
func wheelSpin(frame int) math.Mat4 {
	return math.RotateZ(math.Radians(float32((frame * 10) % 360)))
}

// treeSpot places one tree.
type treeSpot struct {
	At    math.Vec3
	Scale float32

	// Turn rotates the shared forest frame about Y, in degrees, before this
	// tree is placed. The rotation stays in effect for every tree after it.
	Turn float32
}

var forest = [...]treeSpot{
	{At: math.Vec3{X: 1, Y: 0, Z: 0}, Scale: 0.7},
	{At: math.Vec3{X: -0.5, Y: 0, Z: -1}, Scale: 0.5},
	{At: math.Vec3{X: -1.5, Y: 0, Z: 2}, Scale: 0.7},
	{At: math.Vec3{X: -1, Y: 0, Z: 5.2}, Scale: 0.25},
	{At: math.Vec3{X: 5.1, Y: 0, Z: 0.5}, Scale: 0.3},
	{At: math.Vec3{X: 5.1, Y: 0, Z: -0.5}, Scale: 0.35},
	{At: math.Vec3{X: 5.3, Y: 0, Z: 0}, Scale: 0.5},
	{At: math.Vec3{X: 5.1, Y: 0, Z: 0.5}, Scale: 0.3, Turn: 70},
	{At: math.Vec3{X: 5.1, Y: 0, Z: -0.5}, Scale: 0.35},
	{At: math.Vec3{X: 5.3, Y: 0, Z: 0}, Scale: 0.5, Turn: 53},
}

// TreeCount is the number of trees in the scene.
const TreeCount = len(forest)

func (t treeSpot) placement() math.Mat4 {
	return math.Chain(math.Translate(t.At.X, t.At.Y, t.At.Z), math.UniformScale(t.Scale))
}
