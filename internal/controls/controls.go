// Package controls holds the user-facing toggles that drive the scene:
// animation, car and UFO visibility, and the daytime sun color.
package controls

import "strings"

// SunColor selects the daytime color of the sun light.
type SunColor int

const (
	SunDim SunColor = iota
	SunWhite
	SunRed
	SunYellow
)

var sunColorNames = [...]string{
	SunDim:    "dim",
	SunWhite:  "white",
	SunRed:    "red",
	SunYellow: "yellow",
}

// String returns the config name of the color. Out-of-range values report "dim".
func (c SunColor) String() string {
	if c < 0 || int(c) >= len(sunColorNames) {
		return sunColorNames[SunDim]
	}
	return sunColorNames[c]
}

// ParseSunColor maps a name to a SunColor. Unknown names yield SunDim and false.
func ParseSunColor(name string) (SunColor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sunColorNames {
		if n == name {
			return SunColor(i), true
		}
	}
	return SunDim, false
}

// SunColors lists the selectable colors in menu order.
func SunColors() []SunColor {
	return []SunColor{SunWhite, SunRed, SunYellow, SunDim}
}

// Flags is the snapshot of toggles read once at the start of every frame.
type Flags struct {
	Animate bool
	Car     bool
	UFO     bool
	Sun     SunColor
}

// Defaults returns the toggles the scene starts with and returns to on reset.
func Defaults() Flags {
	return Flags{
		Animate: false,
		Car:     true,
		UFO:     false,
		Sun:     SunWhite,
	}
}

// Surface is the source of toggles. The UI writes it between frames, the
// frame driver reads it.
type Surface struct {
	initial Flags
	current Flags
	dirty   bool
}

// NewSurface creates a surface whose reset state is initial.
func NewSurface(initial Flags) *Surface {
	return &Surface{initial: initial, current: initial, dirty: true}
}

// Flags returns the current toggles.
func (s *Surface) Flags() Flags {
	return s.current
}

// Set replaces the current toggles and marks the surface dirty if anything changed.
func (s *Surface) Set(f Flags) {
	if f != s.current {
		s.current = f
		s.dirty = true
	}
}

// SetAnimate toggles the animation.
func (s *Surface) SetAnimate(on bool) {
	f := s.current
	f.Animate = on
	s.Set(f)
}

// SetCar toggles the car subtree.
func (s *Surface) SetCar(on bool) {
	f := s.current
	f.Car = on
	s.Set(f)
}

// SetUFO toggles the UFO subtree.
func (s *Surface) SetUFO(on bool) {
	f := s.current
	f.UFO = on
	s.Set(f)
}

// SetSun selects the daytime sun color.
func (s *Surface) SetSun(c SunColor) {
	f := s.current
	f.Sun = c
	s.Set(f)
}

// Reset restores the initial toggles with animation stopped, matching the
// cleared clock.
func (s *Surface) Reset() {
	s.current = s.initial
	s.current.Animate = false
	s.dirty = true
}

// TakeDirty reports whether the toggles changed since the last call and clears the mark.
func (s *Surface) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
