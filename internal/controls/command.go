package controls

// Command is a user action that both the panel and the keyboard can issue.
type Command int

const (
	CmdNone Command = iota
	CmdToggleAnimate
	CmdToggleCar
	CmdToggleUFO
	CmdSunWhite
	CmdSunRed
	CmdSunYellow
	CmdSunDim
	CmdReset
	CmdScreenshot
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:          "none",
	CmdToggleAnimate: "toggle-animate",
	CmdToggleCar:     "toggle-car",
	CmdToggleUFO:     "toggle-ufo",
	CmdSunWhite:      "sun-white",
	CmdSunRed:        "sun-red",
	CmdSunYellow:     "sun-yellow",
	CmdSunDim:        "sun-dim",
	CmdReset:         "reset",
	CmdScreenshot:    "screenshot",
	CmdQuit:          "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return commandNames[CmdNone]
	}
	return commandNames[c]
}

// Apply performs commands that only change toggles. It reports false for
// commands the caller has to carry out itself (reset, screenshot, quit).
func (s *Surface) Apply(c Command) bool {
	f := s.current
	switch c {
	case CmdToggleAnimate:
		f.Animate = !f.Animate
	case CmdToggleCar:
		f.Car = !f.Car
	case CmdToggleUFO:
		f.UFO = !f.UFO
	case CmdSunWhite:
		f.Sun = SunWhite
	case CmdSunRed:
		f.Sun = SunRed
	case CmdSunYellow:
		f.Sun = SunYellow
	case CmdSunDim:
		f.Sun = SunDim
	default:
		return false
	}
	s.Set(f)
	return true
}
