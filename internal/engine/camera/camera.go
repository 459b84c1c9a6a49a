// Package camera provides the trackball camera the scene is viewed through.
package camera

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"

	"github.com/Faultbox/carscene/pkg/math"
)

// Spin below this many pixels per frame is treated as stopped.
const spinEpsilon = 0.01

// Trackball looks at the origin from a fixed distance. Dragging rolls the
// scene under the pointer; with inertia enabled the scene keeps turning after
// release and slows to a stop.
type Trackball struct {
	Distance        float32
	DragSensitivity float32 // radians per pixel
	Inertia         bool

	initialDistance  float32
	initialDirection math.Vec3

	rotation math.Mat4

	dragging bool
	spring   harmonica.Spring
	spinX    float64
	spinY    float64
	velX     float64
	velY     float64
}

// NewTrackball creates a camera at distance along direction from the origin.
// fps is the rate Update is called at.
func NewTrackball(distance float32, direction math.Vec3, fps int) *Trackball {
	if fps <= 0 {
		fps = 60
	}
	c := &Trackball{
		DragSensitivity:  0.01,
		Inertia:          true,
		initialDistance:  distance,
		initialDirection: direction,
		spring:           harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
	c.Reset()
	return c
}

// Reset returns to the initial distance and direction and stops any spin.
func (c *Trackball) Reset() {
	c.Distance = c.initialDistance
	c.rotation = orientation(c.initialDirection)
	c.dragging = false
	c.spinX, c.spinY, c.velX, c.velY = 0, 0, 0, 0
}

// orientation returns the rotation that puts a viewer on direction, looking
// at the origin with +y up.
func orientation(direction math.Vec3) math.Mat4 {
	dir := direction.Normalize()
	if dir.Length() == 0 {
		return math.Identity()
	}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	if dir.Cross(up).Length() < 1e-6 {
		up = math.Vec3{X: 0, Y: 0, Z: -1}
	}
	r := math.LookAt(dir, math.Vec3{}, up)
	r[12], r[13], r[14] = 0, 0, 0
	return r
}

// ViewMatrix returns the current view transform.
func (c *Trackball) ViewMatrix() math.Mat4 {
	return math.Translate(0, 0, -c.Distance).Mul(c.rotation)
}

// Position returns the eye position in world space.
func (c *Trackball) Position() math.Vec3 {
	// The rotation is orthonormal, so its transpose is its inverse.
	r := c.rotation
	back := math.Vec3{X: r[2], Y: r[6], Z: r[10]}
	return back.Scale(c.Distance)
}

// BeginDrag marks the start of a drag.
func (c *Trackball) BeginDrag() {
	c.dragging = true
	c.spinX, c.spinY, c.velX, c.velY = 0, 0, 0, 0
}

// HandleDrag rotates by a pointer movement in pixels, y down.
func (c *Trackball) HandleDrag(deltaX, deltaY float32) {
	c.roll(deltaX, deltaY)
	c.spinX, c.spinY = float64(deltaX), float64(deltaY)
}

// EndDrag marks the end of a drag. The last movement becomes the spin.
func (c *Trackball) EndDrag() {
	c.dragging = false
	if !c.Inertia {
		c.spinX, c.spinY = 0, 0
	}
	c.velX, c.velY = 0, 0
}

// Dragging reports whether a drag is in progress.
func (c *Trackball) Dragging() bool {
	return c.dragging
}

// Spinning reports whether the camera is still turning after a drag.
func (c *Trackball) Spinning() bool {
	return !c.dragging && (c.spinX != 0 || c.spinY != 0)
}

// Update advances inertia by one frame and reports whether the view changed.
func (c *Trackball) Update() bool {
	if c.spinX == 0 && c.spinY == 0 {
		return false
	}

	// While held, a pointer that stops moving should not fling on release.
	c.spinX, c.velX = c.spring.Update(c.spinX, c.velX, 0)
	c.spinY, c.velY = c.spring.Update(c.spinY, c.velY, 0)
	if abs(c.spinX) < spinEpsilon && abs(c.spinY) < spinEpsilon {
		c.spinX, c.spinY, c.velX, c.velY = 0, 0, 0, 0
		return false
	}
	if c.dragging {
		return false
	}

	c.roll(float32(c.spinX), float32(c.spinY))
	return true
}

// roll turns the scene about an eye-space axis perpendicular to the movement.
func (c *Trackball) roll(deltaX, deltaY float32) {
	length := math32.Sqrt(deltaX*deltaX + deltaY*deltaY)
	if length == 0 {
		return
	}
	axis := math.Vec3{X: deltaY / length, Y: deltaX / length, Z: 0}
	c.rotation = math.RotateAxis(axis, length*c.DragSensitivity).Mul(c.rotation)
}

// HandleZoom moves toward or away from the origin.
func (c *Trackball) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * 0.1
	c.Distance = max(c.Distance, 2)
	c.Distance = min(c.Distance, 45)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
