package sitemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const seedSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://x.io/</loc>
    <lastmod>2025-08-01</lastmod>
    <changefreq>daily</changefreq>
  </url>
</urlset>
`

func writeSitemap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func locs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := Parse(data)
	require.NoError(t, err)
	out := make([]string, 0, len(doc.URLs))
	for _, u := range doc.URLs {
		out = append(out, u.Loc)
	}
	return out
}

func TestAugment_AppendsAbsentURLsInDeclaredOrder(t *testing.T) {
	path := writeSitemap(t, seedSitemap)
	extras := ExtraURLs("https://x.io/", []string{"llms.txt", "robots.txt"})

	n, err := NewAugmenter(nil).Augment(path, extras)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []string{
		"https://x.io/",
		"https://x.io/llms.txt",
		"https://x.io/robots.txt",
	}, locs(t, path))
}

func TestAugment_SecondRunIsIdempotent(t *testing.T) {
	path := writeSitemap(t, seedSitemap)
	extras := ExtraURLs("https://x.io/", []string{"llms.txt", "robots.txt"})
	aug := NewAugmenter(nil)

	_, err := aug.Augment(path, extras)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	n, err := aug.Augment(path, extras)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
	require.Len(t, locs(t, path), 3)
}

func TestAugment_PreservesExistingEntriesAndFields(t *testing.T) {
	path := writeSitemap(t, seedSitemap)

	n, err := NewAugmenter(nil).Augment(path, ExtraURLs("https://x.io/", []string{"llms.txt"}))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.URLs, 2)
	require.Equal(t, "https://x.io/", doc.URLs[0].Loc)
	require.Equal(t, "2025-08-01", doc.URLs[0].LastMod)
	require.Equal(t, "daily", doc.URLs[0].ChangeFreq)
	require.Equal(t, "https://x.io/llms.txt", doc.URLs[1].Loc)
	require.Empty(t, doc.URLs[1].LastMod)
}

func TestAugment_SkipsAlreadyPresentURL(t *testing.T) {
	seed := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://x.io/llms.txt</loc></url>
</urlset>
`
	path := writeSitemap(t, seed)

	n, err := NewAugmenter(nil).Augment(path, ExtraURLs("https://x.io/", []string{"llms.txt", "robots.txt"}))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []string{"https://x.io/llms.txt", "https://x.io/robots.txt"}, locs(t, path))
}

func TestAugment_MissingFileIsSilentNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	n, err := NewAugmenter(nil).Augment(path, []string{"https://x.io/llms.txt"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestAugment_MalformedXMLIsFatal(t *testing.T) {
	path := writeSitemap(t, "<urlset><url><loc>unclosed")

	_, err := NewAugmenter(nil).Augment(path, []string{"https://x.io/llms.txt"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse sitemap")
}

func TestAugment_OutputCarriesDeclarationAndNamespace(t *testing.T) {
	path := writeSitemap(t, seedSitemap)

	_, err := NewAugmenter(nil).Augment(path, ExtraURLs("https://x.io/", []string{"llms.txt"}))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, text, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
}

func TestExtraURLs_ConcatenatesWithoutNormalization(t *testing.T) {
	urls := ExtraURLs("https://x.io/", []string{"llms.txt", "a/b.txt"})
	require.Equal(t, []string{"https://x.io/llms.txt", "https://x.io/a/b.txt"}, urls)
}
