package main

import (
	"encoding/json"
	"log"
	"os"
)

// Config holds the generator configuration.
type Config struct {
	Output       string `json:"output"`
	Preview      string `json:"preview,omitempty"`
	PreviewScale int    `json:"preview_scale"`
	Syso         string `json:"syso,omitempty"`
	SysoArch     string `json:"syso_arch"`
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Output:       "app.ico",
		PreviewScale: 8,
		SysoArch:     "amd64",
	}
}

// loadConfig loads config from path. An empty path yields the defaults.
// Missing fields keep their defaults via json.Unmarshal into a pre-populated struct.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read config %s: %v", path, err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config %s: %v", path, err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if cfg.Output == "" {
		log.Printf("Empty output in config, using default %q", defaults.Output)
		cfg.Output = defaults.Output
	}
	if !validPreviewScale(cfg.PreviewScale) {
		log.Printf("Invalid preview_scale %d in config, using default %d", cfg.PreviewScale, defaults.PreviewScale)
		cfg.PreviewScale = defaults.PreviewScale
	}
	if !ValidSysoArch(cfg.SysoArch) {
		log.Printf("Unknown syso_arch %q in config, using default %q", cfg.SysoArch, defaults.SysoArch)
		cfg.SysoArch = defaults.SysoArch
	}

	return cfg
}
