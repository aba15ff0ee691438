// Package hooks is the orchestrator-facing surface of the build hooks.
//
// A static-site build orchestrator constructs one Hooks value per build and
// invokes OnPageMarkdown once per rendered page and OnPostBuild once after
// the full site is written. Both calls are stateless between invocations;
// OnPageMarkdown is safe for concurrent use when page rendering is
// parallelized.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitehooks/config"
	"git.home.luguber.info/inful/sitehooks/internal/logfields"
	"git.home.luguber.info/inful/sitehooks/internal/metrics"
	"git.home.luguber.info/inful/sitehooks/sharelinks"
	"git.home.luguber.info/inful/sitehooks/sitemap"
)

// Hook names used in logs and metrics.
const (
	HookPostBuild    = "post_build"
	HookPageMarkdown = "page_markdown"
)

// SitemapFileName is the well-known sitemap location inside the output
// directory.
const SitemapFileName = "sitemap.xml"

// PageTransformer applies one transformation to a page's markdown.
type PageTransformer interface {
	Name() string
	Transform(baseURL string, page sharelinks.Page, markdown string) (string, error)
}

// Hooks bundles configuration, logging and metrics for the two build hooks.
type Hooks struct {
	cfg       *config.Config
	log       *slog.Logger
	rec       metrics.Recorder
	augmenter *sitemap.Augmenter
	pipeline  []PageTransformer
}

// Option customizes Hooks construction.
type Option func(*Hooks)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(log *slog.Logger) Option {
	return func(h *Hooks) { h.log = log }
}

// WithRecorder sets the metrics recorder (default NoopRecorder).
func WithRecorder(rec metrics.Recorder) Option {
	return func(h *Hooks) { h.rec = rec }
}

// New constructs the hook set. A nil cfg uses config.Default(); a non-nil
// cfg must already be validated (config.Load validates, config.Validate for
// hand-built values).
func New(cfg *config.Config, opts ...Option) *Hooks {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &Hooks{
		cfg: cfg,
		log: slog.Default(),
		rec: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.augmenter = sitemap.NewAugmenter(h.log)
	h.pipeline = []PageTransformer{
		&injectorTransformer{injector: sharelinks.NewInjector(cfg)},
	}
	return h
}

// OnPostBuild runs the sitemap augmenter once against
// <output dir>/sitemap.xml. A missing sitemap is a no-op; malformed XML
// aborts the build.
func (h *Hooks) OnPostBuild(ctx context.Context, site config.SiteConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := config.ValidateSite(site); err != nil {
		return err
	}

	runID := uuid.NewString()
	path := filepath.Join(site.OutputDir, SitemapFileName)
	extras := sitemap.ExtraURLs(site.BaseURL, h.cfg.ExtraSitemapPaths)

	start := time.Now()
	appended, err := h.augmenter.Augment(path, extras)
	elapsed := time.Since(start)
	h.rec.ObserveHookDuration(HookPostBuild, elapsed)

	if err != nil {
		h.rec.IncHookResult(HookPostBuild, metrics.ResultFatal)
		h.log.Error("post-build hook failed",
			logfields.Hook(HookPostBuild),
			logfields.RunID(runID),
			logfields.Path(path),
			logfields.Error(err))
		return fmt.Errorf("post-build hook: %w", err)
	}

	h.rec.AddSitemapURLsAppended(appended)
	h.rec.IncHookResult(HookPostBuild, metrics.ResultSuccess)
	h.log.Info("post-build hook completed",
		logfields.Hook(HookPostBuild),
		logfields.RunID(runID),
		logfields.Path(path),
		logfields.Count(appended),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000.0))
	return nil
}

// OnPageMarkdown runs the page transformer pipeline over one page's
// markdown and returns the (possibly unchanged) body.
func (h *Hooks) OnPageMarkdown(site config.SiteConfig, page sharelinks.Page, markdown string) (string, error) {
	start := time.Now()
	out := markdown
	for _, tr := range h.pipeline {
		next, err := tr.Transform(site.BaseURL, page, out)
		if err != nil {
			h.rec.IncHookResult(HookPageMarkdown, metrics.ResultFatal)
			return "", fmt.Errorf("transform %s failed for page %s: %w", tr.Name(), page.URL, err)
		}
		out = next
	}
	h.rec.ObserveHookDuration(HookPageMarkdown, time.Since(start))

	if out == markdown {
		h.rec.IncPageSkipped()
		h.rec.IncHookResult(HookPageMarkdown, metrics.ResultSkipped)
		return out, nil
	}
	h.rec.IncPageInjected()
	h.rec.IncHookResult(HookPageMarkdown, metrics.ResultSuccess)
	h.log.Debug("page markdown transformed",
		logfields.Hook(HookPageMarkdown),
		logfields.Page(page.URL),
		logfields.Title(page.Title))
	return out, nil
}

// injectorTransformer adapts the share-link injector to the pipeline.
type injectorTransformer struct {
	injector *sharelinks.Injector
}

func (t *injectorTransformer) Name() string { return t.injector.Name() }

func (t *injectorTransformer) Transform(baseURL string, page sharelinks.Page, markdown string) (string, error) {
	return t.injector.Inject(baseURL, page, markdown), nil
}
