package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/config"
	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/framebuffer"
	"github.com/Faultbox/carscene/internal/engine/ui"
	"github.com/Faultbox/carscene/internal/logger"
)

// panelMode renders the scene offscreen and shows it inside the control
// panel next to the toggles.
type panelMode struct {
	ui    *ui.Backend
	fb    *framebuffer.Framebuffer
	title titleSync
	log   *zap.Logger

	width, height int
}

func newPanelMode(cfg *config.Config) (*panelMode, error) {
	b, err := ui.NewBackend(windowTitle, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}
	return &panelMode{
		ui:     b,
		title:  titleSync{last: windowTitle, set: b.SetWindowTitle},
		log:    logger.Named("panel"),
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}, nil
}

func (m *panelMode) run(a *App) error {
	var err error
	m.fb, err = framebuffer.New(m.width, m.height)
	if err != nil {
		return fmt.Errorf("scene framebuffer: %w", err)
	}
	a.gl.Resize(m.fb.Size())

	panel := ui.NewPanel(a.driver.surface)
	act := ui.Actions{ViewWidth: m.width, ViewHeight: m.height}
	shoot := false

	m.ui.Run(func() {
		if m.fb.Resize(act.ViewWidth, act.ViewHeight) {
			a.gl.Resize(m.fb.Size())
			a.driver.Invalidate()
		}
		if shoot {
			a.driver.Invalidate()
		}

		restore := m.fb.Bind()
		// Frame errors are logged by the driver and shown through Status.
		_, _ = a.driver.Step()
		if shoot {
			w, h := m.fb.Size()
			if path, err := a.saveScreenshot(m.fb.ReadPixels(), w, h); err == nil {
				panel.Notify("Saved " + filepath.Base(path))
			} else {
				panel.Notify("Screenshot failed")
			}
			shoot = false
		}
		restore()

		status := a.driver.Status()
		m.title.update(status)
		act = panel.Draw(m.fb.Texture(), status)
		shoot = m.apply(a, act)
	})
	return nil
}

// apply hands the panel's requests to the driver and camera. It reports
// whether a screenshot was asked for.
func (m *panelMode) apply(a *App, act ui.Actions) (shoot bool) {
	for _, cmd := range act.Commands {
		if cmd == controls.CmdScreenshot {
			shoot = true
			continue
		}
		a.driver.Handle(cmd)
	}

	cam := a.driver.Camera()
	if act.DragStarted {
		cam.BeginDrag()
	}
	if act.DragX != 0 || act.DragY != 0 {
		cam.HandleDrag(act.DragX, act.DragY)
		a.driver.Invalidate()
	}
	if act.DragEnded {
		cam.EndDrag()
	}
	if act.Zoom != 0 {
		cam.HandleZoom(act.Zoom)
		a.driver.Invalidate()
	}
	return shoot
}

func (m *panelMode) close() {
	if m.fb != nil {
		m.fb.Destroy()
		m.fb = nil
	}
}
