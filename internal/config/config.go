package config

type Config struct {
	Log LogConfig `toml:"log"`
	IB  IBConfig  `toml:"ib"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=trace debug info warn error"`
}

type IBConfig struct {
	// ConfigPath overrides the futures configuration embedded into the binary.
	ConfigPath string `toml:"config_path"`
}

// Default is used when no config file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}
