package config

const (
	defaultDataDir          = "~/.local/share/fridgescan"
	defaultLogDir           = "~/.local/share/fridgescan/logs"
	defaultRevealIntervalMS = 600
	defaultCaptureSubsystem = "video4linux"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Detection: Detection{
			RevealIntervalMS: defaultRevealIntervalMS,
		},
		Capture: Capture{
			Enabled:   false,
			Subsystem: defaultCaptureSubsystem,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
