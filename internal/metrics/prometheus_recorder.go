package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once         sync.Once
	hookDuration *prom.HistogramVec
	hookResults  *prom.CounterVec
	urlsAppended prom.Counter
	pageOutcomes *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.hookDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitehooks",
			Name:      "hook_duration_seconds",
			Help:      "Duration of individual build-hook invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"hook"})
		pr.hookResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "hook_results_total",
			Help:      "Hook result counts by outcome",
		}, []string{"hook", "result"})
		pr.urlsAppended = prom.NewCounter(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "sitemap_urls_appended_total",
			Help:      "Extra URLs appended to the sitemap across builds",
		})
		pr.pageOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "page_outcomes_total",
			Help:      "Per-page injector outcomes (injected vs skipped)",
		}, []string{"outcome"})
		reg.MustRegister(pr.hookDuration, pr.hookResults, pr.urlsAppended, pr.pageOutcomes)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveHookDuration(hook string, d time.Duration) {
	if p == nil || p.hookDuration == nil {
		return
	}
	p.hookDuration.WithLabelValues(hook).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHookResult(hook string, result ResultLabel) {
	if p == nil || p.hookResults == nil {
		return
	}
	p.hookResults.WithLabelValues(hook, string(result)).Inc()
}

func (p *PrometheusRecorder) AddSitemapURLsAppended(n int) {
	if p == nil || p.urlsAppended == nil || n <= 0 {
		return
	}
	p.urlsAppended.Add(float64(n))
}

func (p *PrometheusRecorder) IncPageInjected() {
	if p == nil || p.pageOutcomes == nil {
		return
	}
	p.pageOutcomes.WithLabelValues("injected").Inc()
}

func (p *PrometheusRecorder) IncPageSkipped() {
	if p == nil || p.pageOutcomes == nil {
		return
	}
	p.pageOutcomes.WithLabelValues("skipped").Inc()
}
