package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagTexture    = flag.String("texture", "", "Texture image for the textured variants")
	flagSize       = flag.Float64("size", 0, "Tesseract edge length")
	flagPaused     = flag.Bool("paused", false, "Start with the animation paused")
	flagReduceW    = flag.String("reduce-w", "", "4D to 3D reduction: drop or divide")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagTexture != "" {
		cfg.Render.TexturePath = *flagTexture
	}
	if *flagSize > 0 {
		cfg.Mesh.Size = float32(*flagSize)
	}
	if *flagPaused {
		cfg.Animation.Paused = true
	}
	if *flagReduceW != "" {
		cfg.Render.ReduceW = *flagReduceW
	}
}
