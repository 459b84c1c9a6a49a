package lighting

import (
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/pkg/math"
)

// Night-time lamp color and the distance falloff applied to it.
var lampColor = [3]float32{1, 1, 0.8}

const lampAttenuation = 2

// Local-space light vectors at each carrier node.
var (
	sunDirection  = math.Vec4{1, 0, 0, 0}
	carrierOrigin = math.Vec4{0, 0, 0, 1}
	headlightAim  = math.Vec3{X: -1, Y: 0, Z: 0}
	ufoBeamAim    = math.Vec3{X: 0, Y: -1, Z: 0}
)

// SunLight returns the daytime sun color for a choice. Unknown choices fall
// back to the dim color.
func SunLight(c controls.SunColor) [3]float32 {
	switch c {
	case controls.SunWhite:
		return [3]float32{1, 1, 1}
	case controls.SunRed:
		return [3]float32{1, 0.5, 0.3}
	case controls.SunYellow:
		return [3]float32{0.95, 0.8, 0.05}
	default:
		return [3]float32{0.6, 0.6, 0.5}
	}
}

// Carriers are the accumulated eye-space transforms of the nodes that carry
// lights, captured by walking the scene before drawing it.
type Carriers struct {
	Sun            math.Mat4
	Lamp           math.Mat4
	HeadlightLeft  math.Mat4
	HeadlightRight math.Mat4
	UFO            math.Mat4
}

// Compute derives the frame's light table from the day/night phase, the
// feature toggles and the carrier transforms.
//
// By day slot 1 is the sun: a direction (w=0) with no attenuation. By night
// it is the lamp: a point light with attenuation 2. Headlights and the UFO
// beam only shine at night, each gated by its own toggle.
func Compute(daytime bool, flags controls.Flags, at Carriers) Table {
	t := Defaults()

	sun := &t[SunOrLamp]
	if daytime {
		sun.Color = SunLight(flags.Sun)
		sun.Attenuation = 0
		sun.Position = at.Sun.MulVec4(sunDirection)
	} else {
		sun.Color = lampColor
		sun.Attenuation = lampAttenuation
		sun.Position = at.Lamp.MulVec4(carrierOrigin)
	}

	if daytime {
		return t
	}

	t[HeadlightLeft].Enabled = flags.Car
	t[HeadlightRight].Enabled = flags.Car
	t[UFOBeam].Enabled = flags.UFO

	placeSpot(&t[HeadlightLeft], at.HeadlightLeft, headlightAim)
	placeSpot(&t[HeadlightRight], at.HeadlightRight, headlightAim)
	placeSpot(&t[UFOBeam], at.UFO, ufoBeamAim)

	return t
}

// placeSpot puts a spotlight at the carrier's origin, aimed along the
// carrier's local direction.
func placeSpot(s *Slot, carrier math.Mat4, aim math.Vec3) {
	s.Position = carrier.MulVec4(carrierOrigin)
	s.SpotDirection = carrier.NormalMatrix().MulVec3(aim)
}
