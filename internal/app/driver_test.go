package app

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/carscene/internal/anim"
	"github.com/Faultbox/carscene/internal/config"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/scene"
)

type fakeCanvas struct {
	begins, ends int
}

func (c *fakeCanvas) Begin()          { c.begins++ }
func (c *fakeCanvas) End()            { c.ends++ }
func (c *fakeCanvas) Aspect() float32 { return 4.0 / 3.0 }

func newTestDriver(t *testing.T) (*Driver, *scene.Recorder, *fakeCanvas) {
	t.Helper()
	rec := scene.NewRecorder()
	reg, err := scene.NewRegistry(rec)
	require.NoError(t, err)

	canvas := &fakeCanvas{}
	d := newDriver(config.Default(), scene.New(rec, reg), canvas)
	return d, rec, canvas
}

func TestStepDrawsInitialFrameOnce(t *testing.T) {
	d, rec, canvas := newTestDriver(t)

	drawn, err := d.Step()
	require.NoError(t, err)
	assert.True(t, drawn)
	assert.Len(t, rec.Calls, 47)
	assert.Equal(t, 1, canvas.begins)
	assert.Equal(t, canvas.begins, canvas.ends)
	assert.Equal(t, anim.Initial(), d.State())

	drawn, err = d.Step()
	require.NoError(t, err)
	assert.False(t, drawn, "nothing changed, nothing drawn")
}

func TestStepAdvancesWhileAnimating(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.Handle(controls.CmdToggleAnimate)

	for i := 0; i < 3; i++ {
		drawn, err := d.Step()
		require.NoError(t, err)
		assert.True(t, drawn)
	}
	assert.Equal(t, 3, d.State().FrameNumber)
	assert.InDelta(t, gomath.Pi/2+3*anim.SunStep, d.State().SunAngle, 1e-12)
	assert.True(t, d.Status().Running)
}

func TestToggleRedrawsWithoutAdvancing(t *testing.T) {
	d, rec, _ := newTestDriver(t)
	_, _ = d.Step()

	rec.Reset()
	assert.True(t, d.Handle(controls.CmdToggleUFO))
	drawn, err := d.Step()
	require.NoError(t, err)
	assert.True(t, drawn)
	assert.Len(t, rec.Calls, 50)
	assert.Equal(t, 0, d.State().FrameNumber)
}

func TestInvalidateRedraws(t *testing.T) {
	d, _, _ := newTestDriver(t)
	_, _ = d.Step()

	d.Invalidate()
	drawn, _ := d.Step()
	assert.True(t, drawn)
	assert.Equal(t, 0, d.State().FrameNumber)
}

func TestStopHaltsAnimation(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.Handle(controls.CmdToggleAnimate)
	_, _ = d.Step()
	_, _ = d.Step()

	d.Handle(controls.CmdToggleAnimate)
	drawn, _ := d.Step()
	assert.True(t, drawn, "stopping redraws once")
	drawn, _ = d.Step()
	assert.False(t, drawn)
	assert.Equal(t, 2, d.State().FrameNumber)
}

func TestResetRestoresEverything(t *testing.T) {
	d, _, _ := newTestDriver(t)
	initialView := d.Camera().ViewMatrix()

	d.Handle(controls.CmdToggleAnimate)
	d.Handle(controls.CmdToggleUFO)
	d.Handle(controls.CmdSunRed)
	for i := 0; i < 5; i++ {
		_, _ = d.Step()
	}
	d.Camera().BeginDrag()
	d.Camera().HandleDrag(30, 10)
	d.Camera().EndDrag()

	assert.True(t, d.Handle(controls.CmdReset))
	assert.Equal(t, anim.Initial(), d.State())
	assert.Equal(t, controls.Defaults(), d.surface.Flags())
	assert.Equal(t, initialView, d.Camera().ViewMatrix())
	assert.False(t, d.Status().Running)

	drawn, _ := d.Step()
	assert.True(t, drawn)
	assert.Equal(t, 0, d.State().FrameNumber)
}

func TestResetStopsConfiguredAnimation(t *testing.T) {
	rec := scene.NewRecorder()
	reg, err := scene.NewRegistry(rec)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Scene.Animate = true
	d := newDriver(cfg, scene.New(rec, reg), &fakeCanvas{})

	for i := 0; i < 4; i++ {
		_, _ = d.Step()
	}
	require.Equal(t, 4, d.State().FrameNumber)

	d.Reset()
	drawn, err := d.Step()
	require.NoError(t, err)
	assert.True(t, drawn, "reset redraws the initial frame")
	assert.Equal(t, 0, d.State().FrameNumber)
	assert.False(t, d.Status().Running)

	drawn, _ = d.Step()
	assert.False(t, drawn)
	assert.Equal(t, 0, d.State().FrameNumber)
}

func TestHandleLeavesScreenshotAndQuit(t *testing.T) {
	d, _, _ := newTestDriver(t)
	assert.False(t, d.Handle(controls.CmdScreenshot))
	assert.False(t, d.Handle(controls.CmdQuit))
}

func TestFrameErrorStopsClock(t *testing.T) {
	d, _, _ := newTestDriver(t)
	boom := errors.New("boom")
	calls := 0
	d.draw = func(anim.State) error {
		calls++
		return boom
	}

	d.Handle(controls.CmdToggleAnimate)
	drawn, err := d.Step()
	assert.True(t, drawn)
	require.ErrorIs(t, err, boom)
	assert.False(t, d.surface.Flags().Animate)
	assert.ErrorIs(t, d.Status().Err, boom)
	assert.False(t, d.Status().Running)

	// No retry storm: the failed frame is not redrawn on its own.
	drawn, err = d.Step()
	assert.False(t, drawn)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGoodFrameClearsError(t *testing.T) {
	d, _, _ := newTestDriver(t)
	fail := true
	d.draw = func(anim.State) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	}

	_, err := d.Step()
	require.Error(t, err)

	fail = false
	d.Invalidate()
	_, err = d.Step()
	require.NoError(t, err)
	assert.NoError(t, d.Status().Err)
}

func TestProjectionUsesCanvasAspect(t *testing.T) {
	d, rec, _ := newTestDriver(t)
	_, _ = d.Step()

	want := d.projection.Matrix(4.0 / 3.0)
	assert.Equal(t, want, rec.Projection)
	assert.InDelta(t, gomath.Pi/4, float64(d.projection.FOVY), 1e-6)
}
