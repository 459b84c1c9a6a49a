package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/carscene/pkg/math"
)

func newTestCamera() *Trackball {
	return NewTrackball(17, math.Vec3{X: 0, Y: 1, Z: 2}, 60)
}

func assertVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func TestInitialView(t *testing.T) {
	c := newTestCamera()

	assertVec3(t, math.Vec3{X: 0, Y: 0, Z: -17}, c.ViewMatrix().TransformPoint(math.Vec3{}))

	want := math.Vec3{X: 0, Y: 1, Z: 2}.Normalize().Scale(17)
	assertVec3(t, want, c.Position())

	// The eye maps to the eye-space origin.
	assertVec3(t, math.Vec3{}, c.ViewMatrix().TransformPoint(c.Position()))
}

func TestViewAlongUpAxis(t *testing.T) {
	c := NewTrackball(10, math.Vec3{X: 0, Y: 1, Z: 0}, 60)
	assertVec3(t, math.Vec3{X: 0, Y: 10, Z: 0}, c.Position())
}

func TestDragFollowsPointer(t *testing.T) {
	c := NewTrackball(10, math.Vec3{X: 0, Y: 0, Z: 1}, 60)

	c.BeginDrag()
	c.HandleDrag(20, 0)
	c.EndDrag()
	front := c.ViewMatrix().TransformPoint(math.Vec3{X: 0, Y: 0, Z: 1})
	assert.Greater(t, front.X, float32(0), "dragging right moves the near side right")

	c.Reset()
	c.BeginDrag()
	c.HandleDrag(0, 20)
	c.EndDrag()
	front = c.ViewMatrix().TransformPoint(math.Vec3{X: 0, Y: 0, Z: 1})
	assert.Less(t, front.Y, float32(0), "dragging down moves the near side down")
}

func TestDragKeepsDistance(t *testing.T) {
	c := newTestCamera()
	c.BeginDrag()
	for i := 0; i < 25; i++ {
		c.HandleDrag(13, -7)
	}
	c.EndDrag()
	assert.InDelta(t, 17, c.Position().Length(), 1e-3)
}

func TestResetRestoresView(t *testing.T) {
	c := newTestCamera()
	initial := c.ViewMatrix()

	c.BeginDrag()
	c.HandleDrag(40, 15)
	c.EndDrag()
	c.HandleZoom(1)
	require.NotEqual(t, initial, c.ViewMatrix())

	c.Reset()
	assert.Equal(t, initial, c.ViewMatrix())
	assert.False(t, c.Spinning())
}

func TestInertiaDecays(t *testing.T) {
	c := newTestCamera()
	c.BeginDrag()
	c.HandleDrag(10, 0)
	c.EndDrag()
	require.True(t, c.Spinning())

	before := c.ViewMatrix()
	require.True(t, c.Update())
	assert.NotEqual(t, before, c.ViewMatrix())

	frames := 1
	for c.Update() {
		frames++
		require.Less(t, frames, 600, "spin never settled")
	}
	assert.False(t, c.Spinning())

	settled := c.ViewMatrix()
	assert.False(t, c.Update())
	assert.Equal(t, settled, c.ViewMatrix())
}

func TestNoInertia(t *testing.T) {
	c := newTestCamera()
	c.Inertia = false

	c.BeginDrag()
	c.HandleDrag(10, 5)
	c.EndDrag()
	assert.False(t, c.Spinning())
	assert.False(t, c.Update())
}

func TestNoSpinWhileHeld(t *testing.T) {
	c := newTestCamera()
	c.BeginDrag()
	c.HandleDrag(10, 0)
	held := c.ViewMatrix()

	assert.False(t, c.Update())
	assert.Equal(t, held, c.ViewMatrix())
	assert.True(t, c.Dragging())
}

func TestZoomClamps(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, float32(2), c.Distance)

	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, float32(45), c.Distance)
}
