// Package config holds run configuration. The image provider priority order
// lives here, not in code: reordering the fallback chain is a config change.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "sitewright.yml"

// Known provider names, in the default priority order (generative first).
var defaultProviderOrder = []string{"gemini", "openai", "pexels", "pixabay", "websearch"}

var knownProviders = map[string]bool{
	"gemini":    true,
	"openai":    true,
	"pexels":    true,
	"pixabay":   true,
	"websearch": true,
}

// Config is the run configuration for site generation.
type Config struct {
	// Providers is the per-slot fallback chain, tried first to last.
	Providers []string `yaml:"providers"`
	// ContentProvider selects the text-content generator: gemini or ollama.
	ContentProvider string `yaml:"content_provider"`
	// SearchCount is how many hits to request from each search provider.
	SearchCount int `yaml:"search_count"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Providers:       append([]string(nil), defaultProviderOrder...),
		ContentProvider: "gemini",
		SearchCount:     12,
	}
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	lookupPath := path
	if lookupPath == "" {
		lookupPath = DefaultPath
	}
	data, err := os.ReadFile(lookupPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", lookupPath, err)
		}
	case os.IsNotExist(err) && path == "":
		// No config file is fine; defaults apply.
	default:
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", lookupPath, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if order := os.Getenv("SITEWRIGHT_PROVIDER_ORDER"); order != "" {
		cfg.Providers = nil
		for _, name := range strings.Split(order, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Providers = append(cfg.Providers, name)
			}
		}
	}
	if provider := os.Getenv("SITEWRIGHT_CONTENT_PROVIDER"); provider != "" {
		cfg.ContentProvider = provider
	}
}

func (c Config) validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("provider order must not be empty")
	}
	for _, name := range c.Providers {
		if !knownProviders[name] {
			return fmt.Errorf("unknown image provider: %s", name)
		}
	}
	if c.ContentProvider != "gemini" && c.ContentProvider != "ollama" {
		return fmt.Errorf("unknown content provider: %s", c.ContentProvider)
	}
	if c.SearchCount <= 0 {
		return fmt.Errorf("search_count must be positive")
	}
	return nil
}
