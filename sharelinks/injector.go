// Package sharelinks appends a social-sharing trailer (and optional
// newsletter embed) to the markdown of eligible content pages. The injector
// is a pure function of its inputs: identical page, configuration and body
// always produce identical output, and ineligible pages pass through
// unchanged.
package sharelinks

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitehooks/config"
)

// Page describes one content page being rendered. Owned by the build
// orchestrator; read-only here.
type Page struct {
	// URL is the site-relative path, e.g. "blogs/my-post".
	URL string
	// Title is the plain-text page title, no markup.
	Title string
}

// Injector builds the share trailer for eligible pages.
type Injector struct {
	eligibility Eligibility
	targets     []config.ShareTarget
	embed       config.NewsletterEmbed
}

// NewInjector constructs an Injector from hook configuration.
func NewInjector(cfg *config.Config) *Injector {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Injector{
		eligibility: NewEligibility(cfg.Eligibility),
		targets:     cfg.ShareTargets,
		embed:       cfg.NewsletterEmbed,
	}
}

// Name identifies the transformer in logs and metrics.
func (in *Injector) Name() string { return "share_link_injector" }

// Eligible reports whether page would receive the trailer.
func (in *Injector) Eligible(page Page) bool {
	return in.eligibility.Eligible(page.URL)
}

// Inject returns markdown with the share trailer appended when page is
// eligible, or markdown unchanged otherwise. The absolute page URL is the
// base URL concatenated with the page path; no slash normalization.
func (in *Injector) Inject(baseURL string, page Page, markdown string) string {
	if !in.eligibility.Eligible(page.URL) {
		return markdown
	}

	pageURL := baseURL + page.URL
	encodedTitle := EncodeTitle(page.Title)

	var b strings.Builder
	b.WriteString(markdown)
	b.WriteString("\n\n---\n")
	if in.embed.Enabled {
		b.WriteString("**Subscribe to the newsletter:**\n\n")
		fmt.Fprintf(&b, "<iframe src=%q width=\"%d\" height=\"%d\" frameborder=\"0\" scrolling=\"no\"></iframe>\n\n",
			in.embed.Endpoint, in.embed.Width, in.embed.Height)
	}
	b.WriteString("**Share this post:**\n\n")
	for _, target := range in.targets {
		b.WriteString(shareButton(target, encodedTitle, pageURL))
		b.WriteByte('\n')
	}
	return b.String()
}

// shareButton renders one styled share link, e.g.
//
//	[Share on :simple-x:](https://x.com/intent/tweet?text=T%0A&url=U){ .md-button }
func shareButton(target config.ShareTarget, encodedTitle, pageURL string) string {
	var query strings.Builder
	for i, p := range target.Params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(p.Key)
		query.WriteByte('=')
		switch p.Value {
		case config.SourceTitle:
			query.WriteString(encodedTitle)
		case config.SourceURL:
			query.WriteString(pageURL)
		}
	}
	return fmt.Sprintf("[Share on %s](%s?%s){ .md-button }", target.Name, target.Endpoint, query.String())
}
