package finder

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	queries   prometheus.Counter
	cacheHits prometheus.Counter
	failures  prometheus.Counter
	terminals prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lowpoint",
			Name:      "queries_total",
			Help:      "Searches run to completion (cache misses).",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lowpoint",
			Name:      "cache_hits_total",
			Help:      "Queries answered from the result cache.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lowpoint",
			Name:      "query_failures_total",
			Help:      "Queries rejected before or during search.",
		}),
		terminals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lowpoint",
			Name:      "terminals_evaluated",
			Help:      "Terminal candidates evaluated per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.queries, m.cacheHits, m.failures, m.terminals} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "finder: registering metrics")
		}
	}
	return m, nil
}
