package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Collector holds the service counters
type Collector struct {
	registry *prometheus.Registry

	AssessmentsScored prometheus.Counter
	ScoringFailures   *prometheus.CounterVec
	ContextCache      *prometheus.CounterVec
}

// NewCollector registers the service counters on a fresh registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		AssessmentsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bondhu",
			Name:      "assessments_scored_total",
			Help:      "Personality assessments scored successfully.",
		}),
		ScoringFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bondhu",
			Name:      "scoring_failures_total",
			Help:      "Rejected assessment submissions by failure kind.",
		}, []string{"kind"}),
		ContextCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bondhu",
			Name:      "context_cache_total",
			Help:      "LLM context cache lookups by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		c.AssessmentsScored,
		c.ScoringFailures,
		c.ContextCache,
		collectors.NewGoCollector(),
	)
	return c
}

// Handler exposes the registry for scraping
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
