package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Hook", KeyHook, "post_build", Hook("post_build")},
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Path", KeyPath, "/tmp/site/sitemap.xml", Path("/tmp/site/sitemap.xml")},
		{"URL", KeyURL, "https://x.io/llms.txt", URL("https://x.io/llms.txt")},
		{"Page", KeyPage, "blogs/my-post", Page("blogs/my-post")},
		{"Title", KeyTitle, "Hello World", Title("Hello World")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestError_NilAndNonNil(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("expected empty value for nil error, got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
}
