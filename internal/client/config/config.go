package config

import "time"

// Config holds runtime settings for the notevault CLI.
type Config struct {
	ServerEndpointAddr string
	// DataDir holds the local sqlite database. Relative paths are resolved
	// against the working directory.
	DataDir        string
	DeviceID       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. An empty DeviceID means
// one is generated and kept in the local database.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DataDir = "notevault-data"
	c.DeviceID = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
