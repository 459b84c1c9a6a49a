package app

import (
	"fmt"

	"github.com/Faultbox/carscene/internal/engine/ui"
)

// titleFor names the window after the phase of the day and the clock.
func titleFor(s ui.Status) string {
	if s.Err != nil {
		return windowTitle + " (frame failed)"
	}
	phase := "night"
	if s.Daytime {
		phase = "day"
	}
	clock := "paused"
	if s.Running {
		clock = "running"
	}
	return fmt.Sprintf("%s (%s, %s)", windowTitle, phase, clock)
}

// titleSync pushes the title to the window only when it changes.
type titleSync struct {
	last string
	set  func(string)
}

func (t *titleSync) update(s ui.Status) {
	title := titleFor(s)
	if title == t.last {
		return
	}
	t.last = title
	t.set(title)
}
