package app

import (
	"fmt"

	"github.com/vk/rangeeval/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath   string // empty selects manual entry
	RenderFormat string // optional; echo the loaded record in this format

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RenderFormat != "" && config.ParseFormat(cfg.RenderFormat) == config.FormatUnknown {
		return nil, fmt.Errorf("invalid render format %q: must be one of json, yaml, xml, csv, txt, hcl", cfg.RenderFormat)
	}
	return &cfg, nil
}
