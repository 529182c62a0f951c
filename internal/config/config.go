// Package config handles visualizer configuration loading and management.
package config

// Config holds all visualizer settings.
type Config struct {
	Window    WindowConfig      `yaml:"window"`
	Render    RenderConfig      `yaml:"render"`
	Mesh      MeshConfig        `yaml:"mesh"`
	Animation AnimationConfig   `yaml:"animation"`
	Controls  ControlsConfig    `yaml:"controls"`
	Keys      map[string]string `yaml:"keys"` // action name -> SDL key name
	Logging   LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds shading and camera settings.
type RenderConfig struct {
	Projection      string     `yaml:"projection"` // perspective | orthographic
	FOV             float32    `yaml:"fov"`        // vertical, degrees
	CameraDist      float32    `yaml:"camera_distance"`
	ReduceW         string     `yaml:"reduce_w"` // drop | divide
	Background      [3]float32 `yaml:"background"`
	Lighting        bool       `yaml:"lighting"`
	Texturing       bool       `yaml:"texturing"`
	TexturePath     string     `yaml:"texture"`
	ShaderDir       string     `yaml:"shader_dir"` // optional override of the embedded shaders
	SolidColor      [3]float32 `yaml:"solid_color"`
	WireColor       [3]float32 `yaml:"wire_color"`
	GhostBrightness float32    `yaml:"ghost_brightness"` // color multiplier of the before/after instances
	Screenshots     string     `yaml:"screenshot_dir"`

	Light    LightConfig    `yaml:"light"`
	Material MaterialConfig `yaml:"material"`
}

// LightConfig describes the single point light.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// MaterialConfig holds Blinn-Phong coefficients.
type MaterialConfig struct {
	Ambient   float32 `yaml:"ambient"`
	Diffuse   float32 `yaml:"diffuse"`
	Specular  float32 `yaml:"specular"`
	Shininess float32 `yaml:"shininess"`
}

// MeshConfig selects what gets built at startup.
type MeshConfig struct {
	Size      float32  `yaml:"size"`
	Variants  []string `yaml:"variants"`  // drawn sub-meshes, see hypercube.ParseVariant
	Instances []string `yaml:"instances"` // before | current | after
}

// AnimationConfig holds the initial motion.
type AnimationConfig struct {
	SpeedMultiplier float32            `yaml:"speed_multiplier"`
	Paused          bool               `yaml:"paused"`
	Velocities      map[string]float32 `yaml:"velocities"` // plane name -> rad/s
	WVelocity       float32            `yaml:"w_velocity"`
}

// ControlsConfig holds input ranges and step sizes.
type ControlsConfig struct {
	MaxAngularVelocity float32 `yaml:"max_angular_velocity"`
	MaxOffset          float32 `yaml:"max_offset"`
	MinCenterW         float32 `yaml:"min_center_w"`
	MaxCenterW         float32 `yaml:"max_center_w"`
	MinScale           float32 `yaml:"min_scale"`
	MaxScale           float32 `yaml:"max_scale"`
	VelocityStep       float32 `yaml:"velocity_step"`
	OffsetStep         float32 `yaml:"offset_step"`
	ScaleStep          float32 `yaml:"scale_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "hyperview",
			Width:      1024,
			Height:     1024,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			Projection:      "perspective",
			FOV:             45,
			CameraDist:      8,
			ReduceW:         "drop",
			Background:      [3]float32{0, 0, 0},
			Lighting:        true,
			Texturing:       true,
			SolidColor:      [3]float32{1, 1, 1},
			WireColor:       [3]float32{0.2, 0.9, 1.0},
			GhostBrightness: 0.35,
			Screenshots:     "screenshots",
			Light: LightConfig{
				Position: [3]float32{4, 6, 8},
				Color:    [3]float32{1, 1, 1},
			},
			Material: MaterialConfig{
				Ambient:   0.2,
				Diffuse:   0.7,
				Specular:  0.4,
				Shininess: 32,
			},
		},
		Mesh: MeshConfig{
			Size:      1,
			Variants:  []string{"solid-textured", "wire-overlay"},
			Instances: []string{"current"},
		},
		Animation: AnimationConfig{
			SpeedMultiplier: 1,
			Velocities: map[string]float32{
				"xw": 0.3,
				"zw": 0.2,
			},
		},
		Controls: ControlsConfig{
			MaxAngularVelocity: 3,
			MaxOffset:          5,
			MinCenterW:         1,
			MaxCenterW:         5,
			MinScale:           0.1,
			MaxScale:           3,
			VelocityStep:       0.1,
			OffsetStep:         0.1,
			ScaleStep:          0.05,
		},
		Keys: DefaultKeys(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultKeys returns the keyboard bindings of the SDL frontend.
func DefaultKeys() map[string]string {
	return map[string]string{
		"reset":         "R",
		"pause":         "Space",
		"quit":          "Escape",
		"plane_xy":      "1",
		"plane_xz":      "2",
		"plane_yz":      "3",
		"plane_xw":      "4",
		"plane_yw":      "5",
		"plane_zw":      "6",
		"velocity_up":   "Up",
		"velocity_down": "Down",
		"move_left":     "A",
		"move_right":    "D",
		"move_up":       "W",
		"move_down":     "S",
		"w_in":          "Q",
		"w_out":         "E",
		"scale_up":      "=",
		"scale_down":    "-",

		"toggle_wireframe": "F",
		"toggle_lighting":  "L",
		"toggle_texture":   "T",
		"toggle_ghosts":    "G",
		"screenshot":       "F12",
	}
}
