package config

import (
	"flag"
	"strconv"
)

// optionalBool is a bool flag that remembers whether it was given, so that
// -car=false can override a config file.
type optionalBool struct {
	value bool
	set   bool
}

func (b *optionalBool) String() string {
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value, b.set = v, true
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSun        = flag.String("sun", "", "Sun color: white, red, yellow or dim")
	flagUI         = flag.String("ui", "", "Controls: panel or keys")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory")

	flagCar     optionalBool
	flagUFO     optionalBool
	flagAnimate optionalBool
)

func init() {
	flag.Var(&flagCar, "car", "Show the car")
	flag.Var(&flagUFO, "ufo", "Show the UFO")
	flag.Var(&flagAnimate, "animate", "Start with the animation running")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSun != "" {
		cfg.Scene.SunColor = *flagSun
	}
	if *flagUI != "" {
		cfg.UI.Mode = *flagUI
	}
	if flagCar.set {
		cfg.Scene.Car = flagCar.value
	}
	if flagUFO.set {
		cfg.Scene.UFO = flagUFO.value
	}
	if flagAnimate.set {
		cfg.Scene.Animate = flagAnimate.value
	}
}
