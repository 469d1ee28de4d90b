// Package config provides file-based configuration for the parity service.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
	Classifier ClassifierConfig `yaml:"classifier,omitempty"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr            string `yaml:"addr,omitempty"`
	ReadTimeoutSec  int    `yaml:"readTimeoutSec,omitempty"`
	WriteTimeoutSec int    `yaml:"writeTimeoutSec,omitempty"`
	IdleTimeoutSec  int    `yaml:"idleTimeoutSec,omitempty"`
	EnableDebug     bool   `yaml:"enableDebug"`
	TLSCertFile     string `yaml:"tlsCertFile,omitempty"`
	TLSKeyFile      string `yaml:"tlsKeyFile,omitempty"`
}

// LogConfig contains result-log settings.
type LogConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	FileName string `yaml:"fileName,omitempty"`
	Stdout   bool   `yaml:"stdout"`
}

// ClassifierConfig contains classifier settings.
type ClassifierConfig struct {
	EmitReason bool `yaml:"emitReason"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeoutSec:  5,
			WriteTimeoutSec: 10,
			IdleTimeoutSec:  120,
			EnableDebug:     true,
		},
		Log: LogConfig{
			Dir:      "logs",
			FileName: "classifications.jsonl",
		},
		Classifier: ClassifierConfig{
			EmitReason: true,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		candidates := []string{".parityd.yaml", ".parityd.yml"}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate

				break
			}
		}
	}

	// If config file exists, load it
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Validate and set defaults
	cfg.validate()

	return cfg, nil
}

// validate fills empty fields back in with default values.
func (c *Config) validate() {
	d := Default()

	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = d.Server.ReadTimeoutSec
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = d.Server.WriteTimeoutSec
	}
	if c.Server.IdleTimeoutSec <= 0 {
		c.Server.IdleTimeoutSec = d.Server.IdleTimeoutSec
	}
	if c.Log.Dir == "" {
		c.Log.Dir = d.Log.Dir
	}
	if c.Log.FileName == "" {
		c.Log.FileName = d.Log.FileName
	}
}
