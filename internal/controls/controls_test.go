package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSunColor(t *testing.T) {
	tests := []struct {
		in   string
		want SunColor
		ok   bool
	}{
		{"white", SunWhite, true},
		{"Red", SunRed, true},
		{" yellow ", SunYellow, true},
		{"dim", SunDim, true},
		{"purple", SunDim, false},
		{"", SunDim, false},
	}
	for _, tt := range tests {
		got, ok := ParseSunColor(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestSunColorStringFailsClosed(t *testing.T) {
	assert.Equal(t, "red", SunRed.String())
	assert.Equal(t, "dim", SunColor(42).String())
	assert.Equal(t, "dim", SunColor(-1).String())
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.False(t, d.Animate)
	assert.True(t, d.Car)
	assert.False(t, d.UFO)
	assert.Equal(t, SunWhite, d.Sun)
}

func TestSurfaceDirtyTracking(t *testing.T) {
	s := NewSurface(Defaults())
	assert.True(t, s.TakeDirty(), "new surface needs a first draw")
	assert.False(t, s.TakeDirty())

	s.SetCar(true) // unchanged
	assert.False(t, s.TakeDirty())

	s.SetUFO(true)
	s.SetSun(SunRed)
	assert.True(t, s.TakeDirty())
	assert.Equal(t, Flags{Car: true, UFO: true, Sun: SunRed}, s.Flags())

	s.Reset()
	assert.True(t, s.TakeDirty())
	assert.Equal(t, Defaults(), s.Flags())
}

func TestResetStopsAnimation(t *testing.T) {
	initial := Flags{Car: true, Animate: true, Sun: SunRed}
	s := NewSurface(initial)
	s.SetUFO(true)

	s.Reset()
	assert.Equal(t, Flags{Car: true, Sun: SunRed}, s.Flags())
	assert.False(t, s.Flags().Animate)

	s.SetAnimate(true)
	s.Reset()
	assert.False(t, s.Flags().Animate, "reset after resuming stops again")
}

func TestApply(t *testing.T) {
	tests := []struct {
		cmd     Command
		handled bool
		want    func(Flags) Flags
	}{
		{CmdToggleAnimate, true, func(f Flags) Flags { f.Animate = true; return f }},
		{CmdToggleCar, true, func(f Flags) Flags { f.Car = false; return f }},
		{CmdToggleUFO, true, func(f Flags) Flags { f.UFO = true; return f }},
		{CmdSunRed, true, func(f Flags) Flags { f.Sun = SunRed; return f }},
		{CmdSunYellow, true, func(f Flags) Flags { f.Sun = SunYellow; return f }},
		{CmdSunDim, true, func(f Flags) Flags { f.Sun = SunDim; return f }},
		{CmdSunWhite, true, func(f Flags) Flags { return f }},
		{CmdReset, false, func(f Flags) Flags { return f }},
		{CmdScreenshot, false, func(f Flags) Flags { return f }},
		{CmdQuit, false, func(f Flags) Flags { return f }},
		{CmdNone, false, func(f Flags) Flags { return f }},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			s := NewSurface(Defaults())
			s.TakeDirty()

			assert.Equal(t, tt.handled, s.Apply(tt.cmd))
			want := tt.want(Defaults())
			assert.Equal(t, want, s.Flags())
			assert.Equal(t, want != Defaults(), s.TakeDirty())
		})
	}
}

func TestApplyToggleTwice(t *testing.T) {
	s := NewSurface(Defaults())
	s.Apply(CmdToggleUFO)
	s.Apply(CmdToggleUFO)
	assert.Equal(t, Defaults(), s.Flags())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "toggle-car", CmdToggleCar.String())
	assert.Equal(t, "none", Command(99).String())
}
