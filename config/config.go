// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ServerConfig is settings for the local HTTP API
type ServerConfig struct {
	// the interface the server binds to; loopback only by default
	Host string `mapstructure:"host"`

	// the port the server listens on
	Port int `mapstructure:"port"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a config file and those available from the command line
type Config struct {
	// path to the library database
	DB string `mapstructure:"db"`

	// whether to log verbosely
	Verbose bool `mapstructure:"verbose"`

	// server settings
	Server ServerConfig `mapstructure:"server"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments
func New() *Config {
	viper.SetDefault("db", defaultDBPath())
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8000)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return &c
}

// defaultDBPath is the library database under the user's config dir.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "codonlib", "libraries.db")
}
