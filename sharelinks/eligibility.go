package sharelinks

import (
	"strings"

	"git.home.luguber.info/inful/sitehooks/config"
)

// Eligibility decides which page paths receive the share trailer.
//
// A path is eligible when it starts with one of the configured prefixes,
// something follows the prefix, and the remainder does not start with an
// excluded segment. Listing roots ("blogs/") and archive/category pages are
// therefore excluded while individual content pages match. Matching is
// anchored at the start of the path.
type Eligibility struct {
	prefixes []string
	excluded []string
}

// NewEligibility builds the predicate from configuration.
func NewEligibility(cfg config.Eligibility) Eligibility {
	return Eligibility{
		prefixes: append([]string(nil), cfg.Prefixes...),
		excluded: append([]string(nil), cfg.ExcludedSegments...),
	}
}

// Eligible reports whether the page at path receives the trailer.
func (e Eligibility) Eligible(path string) bool {
	for _, prefix := range e.prefixes {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[len(prefix):]
		if rest == "" {
			continue
		}
		if e.restExcluded(rest) {
			continue
		}
		return true
	}
	return false
}

func (e Eligibility) restExcluded(rest string) bool {
	for _, seg := range e.excluded {
		if strings.HasPrefix(rest, seg) {
			return true
		}
	}
	return false
}
