package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1024 || cfg.Window.Height != 1024 {
		t.Errorf("expected 1024x1024, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Render.ReduceW != "drop" {
		t.Errorf("expected reduce_w 'drop', got %s", cfg.Render.ReduceW)
	}
	if cfg.Render.Projection != "perspective" {
		t.Errorf("expected perspective projection, got %s", cfg.Render.Projection)
	}

	if cfg.Mesh.Size != 1 {
		t.Errorf("expected mesh size 1, got %f", cfg.Mesh.Size)
	}
	if cfg.Controls.MinCenterW != 1 {
		t.Errorf("expected min_center_w 1, got %f", cfg.Controls.MinCenterW)
	}
	if cfg.Animation.Velocities["xw"] != 0.3 {
		t.Errorf("expected xw velocity 0.3, got %f", cfg.Animation.Velocities["xw"])
	}
	if cfg.Keys["reset"] != "R" {
		t.Errorf("expected reset bound to R, got %q", cfg.Keys["reset"])
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 800
  height: 600
  fullscreen: true
render:
  reduce_w: divide
  texture: crate.png
  material:
    shininess: 64
mesh:
  size: 2
  variants: [wireframe]
  instances: [before, current, after]
animation:
  paused: true
  velocities:
    xy: 1.5
logging:
  level: debug
  log_file: hyperview.log
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Render.ReduceW != "divide" {
		t.Errorf("expected reduce_w 'divide', got %s", cfg.Render.ReduceW)
	}
	if cfg.Render.TexturePath != "crate.png" {
		t.Errorf("expected texture crate.png, got %s", cfg.Render.TexturePath)
	}
	if cfg.Render.Material.Shininess != 64 {
		t.Errorf("expected shininess 64, got %f", cfg.Render.Material.Shininess)
	}
	// Untouched nested fields keep their defaults.
	if cfg.Render.Material.Diffuse != 0.7 {
		t.Errorf("expected diffuse default 0.7, got %f", cfg.Render.Material.Diffuse)
	}
	if cfg.Mesh.Size != 2 {
		t.Errorf("expected size 2, got %f", cfg.Mesh.Size)
	}
	if len(cfg.Mesh.Variants) != 1 || cfg.Mesh.Variants[0] != "wireframe" {
		t.Errorf("expected variants [wireframe], got %v", cfg.Mesh.Variants)
	}
	if len(cfg.Mesh.Instances) != 3 {
		t.Errorf("expected 3 instances, got %v", cfg.Mesh.Instances)
	}
	if !cfg.Animation.Paused {
		t.Error("expected paused to be true")
	}
	if cfg.Animation.Velocities["xy"] != 1.5 {
		t.Errorf("expected xy velocity 1.5, got %f", cfg.Animation.Velocities["xy"])
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hyperview.log" {
		t.Errorf("expected log file 'hyperview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "syntax",
			content: `
window:
  width: not a number
  invalid syntax here
`,
		},
		{
			name: "unknown key",
			content: `
window:
  widht: 800
`,
		},
		{
			name: "unknown section",
			content: `
graphics:
  width: 800
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load cleanly, got %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("expected defaults to survive, got width %d", cfg.Window.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errs   int
	}{
		{"defaults", func(*Config) {}, 0},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, 1},
		{"bad projection", func(c *Config) { c.Render.Projection = "fisheye" }, 1},
		{"bad reduce_w", func(c *Config) { c.Render.ReduceW = "slice" }, 1},
		{"fov too wide", func(c *Config) { c.Render.FOV = 180 }, 1},
		{"orthographic ignores fov", func(c *Config) {
			c.Render.Projection = "orthographic"
			c.Render.FOV = 0
		}, 0},
		{"negative size", func(c *Config) { c.Mesh.Size = -1 }, 1},
		{"no variants", func(c *Config) { c.Mesh.Variants = nil }, 1},
		{"unknown variant", func(c *Config) { c.Mesh.Variants = []string{"solid", "glass"} }, 1},
		{"unknown instance", func(c *Config) { c.Mesh.Instances = []string{"later"} }, 1},
		{"unknown plane", func(c *Config) { c.Animation.Velocities["xq"] = 1 }, 1},
		{"center w below one", func(c *Config) { c.Controls.MinCenterW = 0.5 }, 1},
		{"inverted w range", func(c *Config) { c.Controls.MaxCenterW = 0.5 }, 1},
		{"inverted scale range", func(c *Config) { c.Controls.MaxScale = 0.01 }, 1},
		{"ghost brightness above one", func(c *Config) { c.Render.GhostBrightness = 1.5 }, 1},
		{"zero scale step", func(c *Config) { c.Controls.ScaleStep = 0 }, 1},
		{"several problems", func(c *Config) {
			c.Window.Height = -1
			c.Render.ReduceW = ""
			c.Mesh.Size = 0
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if got := len(multierr.Errors(err)); got != tt.errs {
				t.Errorf("expected %d errors, got %d: %v", tt.errs, got, err)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	orig := Default()
	orig.Window.Title = "round trip"
	orig.Mesh.Variants = []string{"solid", "wireframe"}
	orig.Controls.MaxCenterW = 4

	if err := orig.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}

	if cfg.Window.Title != "round trip" {
		t.Errorf("expected title 'round trip', got %q", cfg.Window.Title)
	}
	if len(cfg.Mesh.Variants) != 2 || cfg.Mesh.Variants[1] != "wireframe" {
		t.Errorf("expected variants [solid wireframe], got %v", cfg.Mesh.Variants)
	}
	if cfg.Controls.MaxCenterW != 4 {
		t.Errorf("expected max_center_w 4, got %f", cfg.Controls.MaxCenterW)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" && filepath.Dir(path) != ConfigDir() {
		t.Errorf("expected no config in fresh directory, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path != "./config.yaml" {
		t.Errorf("expected ./config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "texture flag",
			setup: func() { *flagTexture = "stone.bmp" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.TexturePath != "stone.bmp" {
					t.Errorf("expected texture stone.bmp, got %s", cfg.Render.TexturePath)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
		{
			name:  "size flag",
			setup: func() { *flagSize = 3 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.Size != 3 {
					t.Errorf("expected size 3, got %f", cfg.Mesh.Size)
				}
			},
			teardown: func() { *flagSize = 0 },
		},
		{
			name: "paused and reduce-w flags",
			setup: func() {
				*flagPaused = true
				*flagReduceW = "divide"
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Animation.Paused {
					t.Error("expected paused")
				}
				if cfg.Render.ReduceW != "divide" {
					t.Errorf("expected reduce_w divide, got %s", cfg.Render.ReduceW)
				}
			},
			teardown: func() {
				*flagPaused = false
				*flagReduceW = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag wins over the file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  size: -2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative size")
	}
}
