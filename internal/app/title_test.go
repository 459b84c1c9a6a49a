package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/carscene/internal/controls"
	"github.com/Faultbox/carscene/internal/engine/ui"
)

func TestTitleFor(t *testing.T) {
	tests := []struct {
		name   string
		status ui.Status
		want   string
	}{
		{"day paused", ui.Status{Daytime: true}, "Car Scene (day, paused)"},
		{"night running", ui.Status{Running: true}, "Car Scene (night, running)"},
		{"failed", ui.Status{Daytime: true, Err: errors.New("boom")}, "Car Scene (frame failed)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleFor(tt.status))
		})
	}
}

func TestTitleSyncSetsOnlyOnChange(t *testing.T) {
	var got []string
	ts := titleSync{set: func(s string) { got = append(got, s) }}

	ts.update(ui.Status{Daytime: true, Running: true, Frame: 1})
	ts.update(ui.Status{Daytime: true, Running: true, Frame: 2})
	ts.update(ui.Status{Daytime: false, Running: true, Frame: 180})

	assert.Equal(t, []string{"Car Scene (day, running)", "Car Scene (night, running)"}, got)
}

func TestTitleFollowsDriver(t *testing.T) {
	d, _, _ := newTestDriver(t)
	var got []string
	ts := titleSync{set: func(s string) { got = append(got, s) }}

	_, _ = d.Step()
	ts.update(d.Status())
	d.Handle(controls.CmdToggleAnimate)
	_, _ = d.Step()
	ts.update(d.Status())

	assert.Equal(t, []string{"Car Scene (day, paused)", "Car Scene (day, running)"}, got)
}
