package sitemap

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitehooks/internal/logfields"
	"git.home.luguber.info/inful/sitehooks/internal/util/sets"
)

// Augmenter ensures a configured set of extra URLs is present in a
// generated sitemap file. Dedup is exact string equality against existing
// loc values; no URL normalization is performed.
type Augmenter struct {
	log *slog.Logger
}

// NewAugmenter constructs an Augmenter. A nil logger falls back to
// slog.Default().
func NewAugmenter(log *slog.Logger) *Augmenter {
	if log == nil {
		log = slog.Default()
	}
	return &Augmenter{log: log}
}

// ExtraURLs derives the absolute candidate URLs by concatenating each
// relative path onto the site base URL. No slash normalization: the base
// URL is expected to be trailing-slash-terminated.
func ExtraURLs(baseURL string, paths []string) []string {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, baseURL+p)
	}
	return urls
}

// Augment rewrites the sitemap at path so every URL in extraURLs appears
// exactly once as a loc value, appending absent ones in declared order at
// the end of the document. Existing entries are never reordered, altered or
// removed, so running Augment on its own output changes nothing.
//
// A missing file is a silent no-op: the build may legitimately have sitemap
// generation disabled. Malformed XML is fatal and propagates, since it
// signals a corrupted build artifact upstream.
//
// Returns the number of URLs appended.
func (a *Augmenter) Augment(path string, extraURLs []string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		a.log.Debug("sitemap file not present, skipping augmentation", logfields.Path(path))
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read sitemap %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse sitemap %s: %w", path, err)
	}

	existing := sets.New[string]()
	for _, u := range doc.URLs {
		existing.Add(u.Loc)
	}

	appended := 0
	for _, u := range extraURLs {
		if existing.Has(u) {
			continue
		}
		doc.URLs = append(doc.URLs, URL{Loc: u})
		existing.Add(u)
		appended++
		a.log.Debug("appending sitemap entry", logfields.URL(u))
	}

	out, err := Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("serialize sitemap %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, fmt.Errorf("write sitemap %s: %w", path, err)
	}

	a.log.Info("sitemap augmented",
		logfields.Path(path),
		logfields.Count(appended),
		slog.Int("total_entries", len(doc.URLs)))
	return appended, nil
}
