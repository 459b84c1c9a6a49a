package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/carscene/internal/controls"
)

const (
	controlsWidth  = 230
	noticeDuration = 2 * time.Second
)

// Status is the read-only state the panel displays.
type Status struct {
	Frame    int
	SunAngle float64
	Daytime  bool
	Running  bool
	Err      error // set once a frame failed and the clock stopped
}

// Actions collects what the user asked for during one panel frame.
type Actions struct {
	Commands []controls.Command

	DragStarted  bool
	DragX, DragY float32
	DragEnded    bool
	Zoom         float32

	// Size the viewport image is shown at, in pixels.
	ViewWidth, ViewHeight int
}

// keyCommands are the panel's keyboard shortcuts.
var keyCommands = []struct {
	key imgui.Key
	cmd controls.Command
}{
	{imgui.KeySpace, controls.CmdToggleAnimate},
	{imgui.KeyC, controls.CmdToggleCar},
	{imgui.KeyU, controls.CmdToggleUFO},
	{imgui.Key1, controls.CmdSunWhite},
	{imgui.Key2, controls.CmdSunRed},
	{imgui.Key3, controls.CmdSunYellow},
	{imgui.Key4, controls.CmdSunDim},
	{imgui.KeyR, controls.CmdReset},
	{imgui.KeyP, controls.CmdScreenshot},
	{imgui.KeyF12, controls.CmdScreenshot},
}

var sunLabels = map[controls.SunColor]string{
	controls.SunWhite:  "White",
	controls.SunRed:    "Red",
	controls.SunYellow: "Yellow",
	controls.SunDim:    "Dim",
}

// Panel draws the controls window and the scene viewport.
type Panel struct {
	surface *controls.Surface

	dragging  bool
	lastMouse imgui.Vec2

	notice   string
	noticeAt time.Time
}

// NewPanel creates a panel whose widgets edit surface.
func NewPanel(surface *controls.Surface) *Panel {
	return &Panel{surface: surface}
}

// Notify shows msg over the viewport for a short while.
func (p *Panel) Notify(msg string) {
	p.notice = msg
	p.noticeAt = time.Now()
}

// Draw lays out both windows for this frame. texture is the scene's color
// attachment; zero draws an empty viewport.
func (p *Panel) Draw(texture uint32, status Status) Actions {
	var act Actions
	pos, size := WorkArea()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsWidth, size.Y))
	if imgui.BeginV("Controls", nil, flags) {
		p.drawControls(&act, status)
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+controlsWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-controlsWidth, size.Y))
	if imgui.BeginV("Scene", nil, flags|imgui.WindowFlagsNoScrollbar) {
		p.drawViewport(&act, texture)
	}
	imgui.End()

	for _, kc := range keyCommands {
		if IsKeyPressed(kc.key) {
			act.Commands = append(act.Commands, kc.cmd)
		}
	}
	return act
}

func (p *Panel) drawControls(act *Actions, status Status) {
	f := p.surface.Flags()

	if imgui.Checkbox("Animate", &f.Animate) {
		p.surface.SetAnimate(f.Animate)
	}
	if imgui.Checkbox("Car", &f.Car) {
		p.surface.SetCar(f.Car)
	}
	if imgui.Checkbox("UFO", &f.UFO) {
		p.surface.SetUFO(f.UFO)
	}

	imgui.Separator()
	imgui.Text("Sun color")
	for _, c := range controls.SunColors() {
		if imgui.RadioButtonBool(sunLabels[c], f.Sun == c) {
			p.surface.SetSun(c)
		}
	}

	imgui.Separator()
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		act.Commands = append(act.Commands, controls.CmdReset)
	}
	if imgui.ButtonV("Screenshot", imgui.NewVec2(-1, 0)) {
		act.Commands = append(act.Commands, controls.CmdScreenshot)
	}

	imgui.Separator()
	imgui.Text(statusText(status))
	if status.Err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), "Stopped after error")
		imgui.TextWrapped(status.Err.Error())
	}
	imgui.Spacing()
	imgui.TextDisabled("Drag to rotate, scroll to zoom")
}

func (p *Panel) drawViewport(act *Actions, texture uint32) {
	avail := imgui.ContentRegionAvail()
	act.ViewWidth, act.ViewHeight = viewportSize(avail.X, avail.Y)
	if texture == 0 {
		return
	}

	// GL textures are bottom-up.
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*ref,
		imgui.NewVec2(float32(act.ViewWidth), float32(act.ViewHeight)),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	mouse := imgui.MousePos()
	held := imgui.IsMouseDown(imgui.MouseButtonLeft)
	switch {
	case !p.dragging && held && imgui.IsItemHovered():
		p.dragging = true
		act.DragStarted = true
	case p.dragging && held:
		act.DragX = mouse.X - p.lastMouse.X
		act.DragY = mouse.Y - p.lastMouse.Y
	case p.dragging:
		p.dragging = false
		act.DragEnded = true
	}
	p.lastMouse = mouse

	if imgui.IsItemHovered() {
		act.Zoom = imgui.CurrentIO().MouseWheel()
	}

	if p.notice != "" && time.Since(p.noticeAt) < noticeDuration {
		imgui.SetCursorPos(imgui.NewVec2(16, 32))
		imgui.Text(p.notice)
	}
}

// viewportSize turns the available region into a whole-pixel image size of
// at least one pixel.
func viewportSize(w, h float32) (int, int) {
	return max(int(w), 1), max(int(h), 1)
}

func statusText(s Status) string {
	phase := "night"
	if s.Daytime {
		phase = "day"
	}
	state := "stopped"
	if s.Running {
		state = "running"
	}
	deg := s.SunAngle * 180 / math.Pi
	return fmt.Sprintf("Frame %d\nSun %.1f° (%s)\n%s", s.Frame, deg, phase, state)
}
