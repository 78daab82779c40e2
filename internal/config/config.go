package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/corey/seam/internal/domain/textmatch"
)

// MatchSettings tunes position matching. A zero (or omitted) field means
// "use the engine default": 0 is not a valid value for any of these
// knobs, so it doubles as the unset marker.
type MatchSettings struct {
	TrigramThreshold   float64 `yaml:"trigram_threshold"`
	MinConfidence      float64 `yaml:"min_confidence"`
	StridePercent      float64 `yaml:"stride_percent"`
	ContextWindowChars int     `yaml:"context_window_chars"`
}

// StitchSettings tunes overlap detection and batch stitching. As with
// MatchSettings, zero means "use the engine default".
type StitchSettings struct {
	MinOverlapLength   int     `yaml:"min_overlap_length"`
	MaxOverlapPercent  float64 `yaml:"max_overlap_percent"`
	OverlapThreshold   float64 `yaml:"overlap_threshold"`
	NoOverlapSeparator string  `yaml:"no_overlap_separator"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Match  MatchSettings  `yaml:"match"`
	Stitch StitchSettings `yaml:"stitch"`
}

// Load reads a config from the given path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MatchConfig converts the settings into engine parameters.
func (c *AppConfig) MatchConfig() textmatch.MatchConfig {
	return textmatch.MatchConfig{
		TrigramThreshold:   c.Match.TrigramThreshold,
		MinConfidence:      c.Match.MinConfidence,
		StridePercent:      c.Match.StridePercent,
		ContextWindowChars: c.Match.ContextWindowChars,
	}
}

// StitchConfig converts the settings into engine parameters.
func (c *AppConfig) StitchConfig() textmatch.StitchConfig {
	return textmatch.StitchConfig{
		MinOverlapLength:   c.Stitch.MinOverlapLength,
		MaxOverlapPercent:  c.Stitch.MaxOverlapPercent,
		OverlapThreshold:   c.Stitch.OverlapThreshold,
		NoOverlapSeparator: c.Stitch.NoOverlapSeparator,
	}
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults backfills zero-valued fields with the engine defaults so a
// partial config file only overrides what it names.
func applyDefaults(cfg *AppConfig) {
	m := textmatch.DefaultMatchConfig()
	if cfg.Match.TrigramThreshold == 0 {
		cfg.Match.TrigramThreshold = m.TrigramThreshold
	}
	if cfg.Match.MinConfidence == 0 {
		cfg.Match.MinConfidence = m.MinConfidence
	}
	if cfg.Match.StridePercent == 0 {
		cfg.Match.StridePercent = m.StridePercent
	}
	if cfg.Match.ContextWindowChars == 0 {
		cfg.Match.ContextWindowChars = m.ContextWindowChars
	}

	s := textmatch.DefaultStitchConfig()
	if cfg.Stitch.MinOverlapLength == 0 {
		cfg.Stitch.MinOverlapLength = s.MinOverlapLength
	}
	if cfg.Stitch.MaxOverlapPercent == 0 {
		cfg.Stitch.MaxOverlapPercent = s.MaxOverlapPercent
	}
	if cfg.Stitch.OverlapThreshold == 0 {
		cfg.Stitch.OverlapThreshold = s.OverlapThreshold
	}
	if cfg.Stitch.NoOverlapSeparator == "" {
		cfg.Stitch.NoOverlapSeparator = s.NoOverlapSeparator
	}
}
