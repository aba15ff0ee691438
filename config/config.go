// Package config defines the configuration surface for the site build hooks:
// which extra URLs the sitemap gains, which share targets the page trailer
// renders, the optional newsletter embed, and the page eligibility rule.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the read-only site record supplied by the build orchestrator.
type SiteConfig struct {
	// BaseURL is the absolute site URL, trailing-slash-terminated
	// (e.g. "https://x.io/").
	BaseURL string `yaml:"base_url"`
	// OutputDir is the directory the site was generated into.
	OutputDir string `yaml:"output_dir"`
}

// ParamSource selects what value a share-target query parameter carries.
type ParamSource string

const (
	// SourceTitle substitutes the percent-encoded page title.
	SourceTitle ParamSource = "title"
	// SourceURL substitutes the absolute page URL.
	SourceURL ParamSource = "url"
)

// ShareParam is one query parameter in a share target's intent URL.
type ShareParam struct {
	Key   string      `yaml:"key"`
	Value ParamSource `yaml:"value"`
}

// ShareTarget describes one share button appended to eligible pages.
type ShareTarget struct {
	// Name is the rendered label, typically a theme icon shortcode
	// such as ":simple-x:".
	Name     string       `yaml:"name"`
	Endpoint string       `yaml:"endpoint"`
	Params   []ShareParam `yaml:"params"`
}

// NewsletterEmbed configures the optional subscription frame rendered
// ahead of the share buttons.
type NewsletterEmbed struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// Eligibility drives which page paths receive the share trailer.
type Eligibility struct {
	// Prefixes anchor at the start of the page path ("blogs/").
	Prefixes []string `yaml:"prefixes"`
	// ExcludedSegments reject paths whose remainder after the prefix
	// starts with one of these ("archive", "category").
	ExcludedSegments []string `yaml:"excluded_segments"`
}

// Config is the full hook configuration.
type Config struct {
	ExtraSitemapPaths []string        `yaml:"extra_sitemap_paths"`
	ShareTargets      []ShareTarget   `yaml:"share_targets"`
	NewsletterEmbed   NewsletterEmbed `yaml:"newsletter_embed"`
	Eligibility       Eligibility     `yaml:"eligibility"`
}

// Load loads hook configuration from a YAML file, applies defaults and
// validates the result.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the ready-to-use default configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
