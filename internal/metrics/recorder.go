package metrics

import "time"

// ResultLabel enumerates hook result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
	ResultSkipped ResultLabel = "skipped"
)

// Recorder defines observability hooks for build-hook metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for nil receivers
// when using the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveHookDuration(hook string, d time.Duration)
	IncHookResult(hook string, result ResultLabel)
	AddSitemapURLsAppended(n int)
	IncPageInjected()
	IncPageSkipped()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveHookDuration(string, time.Duration) {}
func (NoopRecorder) IncHookResult(string, ResultLabel)         {}
func (NoopRecorder) AddSitemapURLsAppended(int)                {}
func (NoopRecorder) IncPageInjected()                          {}
func (NoopRecorder) IncPageSkipped()                           {}
