// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Scene       SceneConfig       `yaml:"scene"`
	Camera      CameraConfig      `yaml:"camera"`
	UI          UIConfig          `yaml:"ui"`
	Logging     LoggingConfig     `yaml:"logging"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"` // vertical field of view
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// SceneConfig holds the initial state of the scene controls.
type SceneConfig struct {
	Animate   bool   `yaml:"animate"`
	Car       bool   `yaml:"car"`
	UFO       bool   `yaml:"ufo"`
	SunColor  string `yaml:"sun_color"`  // white, red, yellow or dim
	FrameRate int    `yaml:"frame_rate"` // frame cap when vsync is off
}

// CameraConfig holds the trackball camera settings.
type CameraConfig struct {
	Distance        float32    `yaml:"distance"`
	ViewDirection   [3]float32 `yaml:"view_direction"`
	DragSensitivity float32    `yaml:"drag_sensitivity"` // radians per pixel
	Inertia         bool       `yaml:"inertia"`
}

// UIConfig selects how the scene is controlled.
type UIConfig struct {
	Mode string `yaml:"mode"` // panel or keys
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotsConfig holds where screenshots are written.
type ScreenshotsConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// UI modes.
const (
	UIModePanel = "panel"
	UIModeKeys  = "keys"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       1,
			Far:        50,
		},
		Scene: SceneConfig{
			Animate:   false,
			Car:       true,
			UFO:       false,
			SunColor:  "white",
			FrameRate: 60,
		},
		Camera: CameraConfig{
			Distance:        17,
			ViewDirection:   [3]float32{0, 1, 2},
			DragSensitivity: 0.01,
			Inertia:         true,
		},
		UI: UIConfig{
			Mode: UIModePanel,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotsConfig{
			Dir:    "screenshots",
			Prefix: "carscene",
		},
	}
}
