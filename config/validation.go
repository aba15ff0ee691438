package config

import (
	"errors"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitehooks/internal/util/sets"
)

// Validate validates the complete hook configuration. Validation failures
// are fatal: a broken share link or sitemap entry is worse than a halted
// build.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config must not be nil")
	}
	if err := validateSitemapPaths(cfg); err != nil {
		return err
	}
	if err := validateShareTargets(cfg); err != nil {
		return err
	}
	if err := validateNewsletterEmbed(cfg); err != nil {
		return err
	}
	return validateEligibility(cfg)
}

// ValidateSite checks the orchestrator-supplied site record.
func ValidateSite(site SiteConfig) error {
	if site.BaseURL == "" {
		return errors.New("site base_url must not be empty")
	}
	if !strings.HasSuffix(site.BaseURL, "/") {
		return fmt.Errorf("site base_url %q must end with a slash", site.BaseURL)
	}
	if site.OutputDir == "" {
		return errors.New("site output_dir must not be empty")
	}
	return nil
}

func validateSitemapPaths(cfg *Config) error {
	seen := sets.New[string]()
	for i, p := range cfg.ExtraSitemapPaths {
		if p == "" {
			return fmt.Errorf("extra_sitemap_paths[%d]: path must not be empty", i)
		}
		if strings.HasPrefix(p, "/") {
			return fmt.Errorf("extra_sitemap_paths[%d]: %q must be relative to the site base URL", i, p)
		}
		if seen.Has(p) {
			return fmt.Errorf("extra_sitemap_paths[%d]: duplicate path %q", i, p)
		}
		seen.Add(p)
	}
	return nil
}

func validateShareTargets(cfg *Config) error {
	names := sets.New[string]()
	for i, t := range cfg.ShareTargets {
		if t.Name == "" {
			return fmt.Errorf("share_targets[%d]: name must not be empty", i)
		}
		if names.Has(t.Name) {
			return fmt.Errorf("share_targets[%d]: duplicate name %q", i, t.Name)
		}
		names.Add(t.Name)
		if !strings.HasPrefix(t.Endpoint, "https://") && !strings.HasPrefix(t.Endpoint, "http://") {
			return fmt.Errorf("share_targets[%d] %s: endpoint %q must be an absolute http(s) URL", i, t.Name, t.Endpoint)
		}
		if len(t.Params) == 0 {
			return fmt.Errorf("share_targets[%d] %s: at least one query parameter is required", i, t.Name)
		}
		for j, p := range t.Params {
			if p.Key == "" {
				return fmt.Errorf("share_targets[%d] %s: params[%d] key must not be empty", i, t.Name, j)
			}
			if p.Value != SourceTitle && p.Value != SourceURL {
				return fmt.Errorf("share_targets[%d] %s: params[%d] value must be %q or %q, got %q",
					i, t.Name, j, SourceTitle, SourceURL, p.Value)
			}
		}
	}
	return nil
}

func validateNewsletterEmbed(cfg *Config) error {
	ne := cfg.NewsletterEmbed
	if !ne.Enabled {
		return nil
	}
	if ne.Endpoint == "" {
		return errors.New("newsletter_embed: endpoint is required when enabled")
	}
	if ne.Width <= 0 || ne.Height <= 0 {
		return fmt.Errorf("newsletter_embed: width and height must be positive, got %dx%d", ne.Width, ne.Height)
	}
	return nil
}

func validateEligibility(cfg *Config) error {
	for i, p := range cfg.Eligibility.Prefixes {
		if p == "" {
			return fmt.Errorf("eligibility.prefixes[%d]: prefix must not be empty", i)
		}
	}
	for i, s := range cfg.Eligibility.ExcludedSegments {
		if s == "" {
			return fmt.Errorf("eligibility.excluded_segments[%d]: segment must not be empty", i)
		}
	}
	return nil
}
