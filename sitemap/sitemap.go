// Package sitemap reads and rewrites Sitemap 0.9 documents so a build can
// advertise extra well-known URLs (llms.txt, robots.txt) alongside the
// generated page entries.
package sitemap

import "encoding/xml"

// Namespace is the Sitemap 0.9 schema namespace, emitted as the default
// (no-prefix) namespace on the document root.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root element of a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry. The optional fields round-trip untouched for
// entries written by the upstream generator.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Parse decodes a sitemap document.
func Parse(data []byte) (*URLSet, error) {
	var doc URLSet
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal serializes the document with an XML declaration, UTF-8 encoded,
// with the Sitemap 0.9 namespace declared on the root.
func Marshal(doc *URLSet) ([]byte, error) {
	// Clear any parsed-in namespace so the encoder does not emit a second
	// xmlns attribute alongside the explicit one.
	doc.XMLName = xml.Name{Local: "urlset"}
	doc.Xmlns = Namespace
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
