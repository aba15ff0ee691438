package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyHook       = "hook"
	KeyRunID      = "run_id"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyPage       = "page"
	KeyTitle      = "title"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Hook(name string) slog.Attr      { return slog.String(KeyHook, name) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
