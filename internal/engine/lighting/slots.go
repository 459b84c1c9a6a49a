// Package lighting computes the per-frame state of the scene's five light
// slots: a dim viewpoint light, the sun (or the lamp at night), two car
// headlights and the UFO spotlight.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/carscene/pkg/math"
)

// SlotCount is the number of light slots in the shader.
const SlotCount = 5

// Slot indices.
const (
	Viewpoint      = 0
	SunOrLamp      = 1
	HeadlightLeft  = 2
	HeadlightRight = 3
	UFOBeam        = 4
)

// Slot is one light as the shader sees it. Position and SpotDirection are in
// eye coordinates. Position.W is 0 for a directional light, 1 for a positional one.
type Slot struct {
	Enabled          bool
	Position         math.Vec4
	Color            [3]float32
	SpotDirection    math.Vec3
	SpotCosineCutoff float32 // 0 means not a spotlight
	SpotExponent     float32
	Attenuation      float32 // 0 means no falloff with distance
}

// IsSpot reports whether the slot is a spotlight.
func (s Slot) IsSpot() bool {
	return s.SpotCosineCutoff > 0
}

// Table holds all light slots for one frame.
type Table [SlotCount]Slot

var (
	headlightCutoff = float32(gomath.Cos(gomath.Pi / 8))
	ufoCutoff       = float32(gomath.Cos(gomath.Pi / 16))
)

// Defaults returns the light table as configured at startup. Slot 0 is never
// changed after this. Spot cutoffs and the headlight/UFO colors are fixed here
// too; per-frame updates only touch enable flags, sun color, attenuation,
// positions and directions.
func Defaults() Table {
	var t Table
	for i := 1; i < SlotCount; i++ {
		t[i] = Slot{
			Enabled:          false,
			Position:         math.Vec4{0, 0, 1, 0},
			Color:            [3]float32{1, 1, 1},
			SpotDirection:    math.Vec3{X: 0, Y: 0, Z: -1},
			SpotCosineCutoff: 0,
			SpotExponent:     5,
			Attenuation:      0,
		}
	}

	t[Viewpoint] = Slot{
		Enabled:       true,
		Position:      math.Vec4{0, 0, 0, 1},
		Color:         [3]float32{0.2, 0.2, 0.2},
		SpotDirection: math.Vec3{X: 0, Y: 0, Z: -1},
		SpotExponent:  5,
	}

	t[SunOrLamp].Enabled = true

	t[HeadlightLeft].SpotCosineCutoff = headlightCutoff
	t[HeadlightRight].SpotCosineCutoff = headlightCutoff
	t[UFOBeam].SpotCosineCutoff = ufoCutoff

	t[HeadlightLeft].Color = [3]float32{0.5, 0.5, 0.4}
	t[HeadlightRight].Color = [3]float32{0.5, 0.5, 0.4}
	t[UFOBeam].Color = [3]float32{1, 1, 1}

	return t
}

// EnabledCount returns how many slots are switched on.
func (t *Table) EnabledCount() int {
	n := 0
	for _, s := range t {
		if s.Enabled {
			n++
		}
	}
	return n
}
