package config

// Well-known share intent endpoints. LinkedIn is kept addressable for
// configurations that opt in; the default target list omits it.
const (
	XIntentEndpoint        = "https://x.com/intent/tweet"
	FacebookSharerEndpoint = "https://www.facebook.com/sharer/sharer.php"
	LinkedInShareEndpoint  = "https://www.linkedin.com/shareArticle"
)

func applyDefaults(cfg *Config) {
	if len(cfg.ExtraSitemapPaths) == 0 {
		cfg.ExtraSitemapPaths = []string{"llms.txt", "robots.txt"}
	}
	if len(cfg.ShareTargets) == 0 {
		cfg.ShareTargets = []ShareTarget{
			{
				Name:     ":simple-x:",
				Endpoint: XIntentEndpoint,
				Params: []ShareParam{
					{Key: "text", Value: SourceTitle},
					{Key: "url", Value: SourceURL},
				},
			},
			{
				Name:     ":material-facebook:",
				Endpoint: FacebookSharerEndpoint,
				Params: []ShareParam{
					{Key: "u", Value: SourceURL},
				},
			},
		}
	}
	if cfg.NewsletterEmbed.Width == 0 {
		cfg.NewsletterEmbed.Width = 480
	}
	if cfg.NewsletterEmbed.Height == 0 {
		cfg.NewsletterEmbed.Height = 320
	}
	if len(cfg.Eligibility.Prefixes) == 0 {
		cfg.Eligibility.Prefixes = []string{"blogs/", "projects/"}
	}
	if len(cfg.Eligibility.ExcludedSegments) == 0 {
		cfg.Eligibility.ExcludedSegments = []string{"archive", "category"}
	}
}
