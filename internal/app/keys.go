package app

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/config"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/input"
	"github.com/Faultbox/carscene/internal/engine/window"
	"github.com/Faultbox/carscene/internal/logger"
)

var keyCommands = map[sdl.Scancode]controls.Command{
	sdl.SCANCODE_SPACE:  controls.CmdToggleAnimate,
	sdl.SCANCODE_C:      controls.CmdToggleCar,
	sdl.SCANCODE_U:      controls.CmdToggleUFO,
	sdl.SCANCODE_1:      controls.CmdSunWhite,
	sdl.SCANCODE_2:      controls.CmdSunRed,
	sdl.SCANCODE_3:      controls.CmdSunYellow,
	sdl.SCANCODE_4:      controls.CmdSunDim,
	sdl.SCANCODE_R:      controls.CmdReset,
	sdl.SCANCODE_P:      controls.CmdScreenshot,
	sdl.SCANCODE_F12:    controls.CmdScreenshot,
	sdl.SCANCODE_ESCAPE: controls.CmdQuit,
}

// commandForKey maps a key press to a command. Auto-repeat is ignored so a
// held key toggles once.
func commandForKey(ev input.Event) controls.Command {
	if ev.Type != input.EventKeyDown || ev.Repeat {
		return controls.CmdNone
	}
	return keyCommands[ev.Key]
}

// keysMode renders straight to the window and takes all input from the
// keyboard and mouse.
type keysMode struct {
	win       *window.Window
	in        *input.Input
	frameTime time.Duration
	title     titleSync
	log       *zap.Logger
}

func newKeysMode(cfg *config.Config) (*keysMode, error) {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}
	return &keysMode{
		win:       win,
		in:        input.New(),
		frameTime: time.Second / time.Duration(max(cfg.Scene.FrameRate, 1)),
		title:     titleSync{last: windowTitle, set: win.SetTitle},
		log:       logger.Named("keys"),
	}, nil
}

func (m *keysMode) run(a *App) error {
	m.resize(a)
	m.log.Info("keys: space animate, c car, u ufo, 1-4 sun color, r reset, p screenshot, esc quit")

	for {
		start := time.Now()

		if m.in.Update() {
			return nil
		}
		quit, shoot := m.handleEvents(a)
		if quit {
			return nil
		}
		if shoot {
			a.driver.Invalidate()
		}

		// A failed frame is logged and stops the clock inside the driver;
		// the loop keeps running so the user can reset or quit.
		drawn, _ := a.driver.Step()
		m.title.update(a.driver.Status())
		if shoot {
			pixels, w, h := a.gl.ReadPixels()
			a.saveScreenshot(pixels, w, h)
		}
		if drawn {
			m.win.SwapBuffers()
		}

		// Swaps pace the loop under vsync; otherwise cap it.
		if !drawn || !m.win.VSync() {
			if rest := m.frameTime - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

func (m *keysMode) handleEvents(a *App) (quit, shoot bool) {
	cam := a.driver.Camera()
	for _, ev := range m.in.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			m.resize(a)

		case input.EventKeyDown:
			switch cmd := commandForKey(ev); cmd {
			case controls.CmdNone:
			case controls.CmdQuit:
				return true, shoot
			case controls.CmdScreenshot:
				shoot = true
			default:
				a.driver.Handle(cmd)
			}

		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				cam.BeginDrag()
			}
		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT && cam.Dragging() {
				cam.EndDrag()
			}
		case input.EventMouseMove:
			if cam.Dragging() {
				cam.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
				a.driver.Invalidate()
			}
		case input.EventMouseWheel:
			cam.HandleZoom(ev.Wheel)
			a.driver.Invalidate()
		}
	}
	return false, shoot
}

func (m *keysMode) resize(a *App) {
	w, h := m.win.DrawableSize()
	a.gl.Resize(w, h)
	a.driver.Invalidate()
}

func (m *keysMode) close() {
	m.win.Close()
}
