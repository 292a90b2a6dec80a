// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	NearClip   float32 `yaml:"near_clip"`
}

// WorldConfig holds simulation settings.
type WorldConfig struct {
	// StartHour is the initial time of day in hours [0, 24).
	StartHour float32 `yaml:"start_hour"`
	// TimeScale is game minutes advanced per real second.
	TimeScale float32 `yaml:"time_scale"`
	// TickRate is the fixed simulation rate in Hz.
	TickRate int `yaml:"tick_rate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 60,
			NearClip:   0.1,
		},
		World: WorldConfig{
			StartHour: 12,
			TimeScale: 1,
			TickRate:  60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
