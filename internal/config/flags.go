package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagFormat      = flag.String("format", "", "Output image format (png or webp)")
	flagSupersample = flag.Int("supersample", 0, "Supersampling factor")
	flagSeed        = flag.Int64("seed", 0, "Random seed (0 = time-based)")
)

// ParseFlags parses command-line flags. Commands register their own job
// flags first, then call this early in main().
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
	if *flagFormat != "" {
		cfg.Render.Format = *flagFormat
	}
	if *flagSupersample > 0 {
		cfg.Render.Supersample = *flagSupersample
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
}
