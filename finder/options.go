package finder

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lowpoint/lowpoint"
)

// Option configures a Finder.
type Option func(*options)

type options struct {
	workers    int
	cacheSize  int64
	tieBreak   lowpoint.TieBreak
	registerer prometheus.Registerer
}

func defaultOptions() options {
	return options{
		workers:   4,
		cacheSize: 1 << 20,
		tieBreak:  lowpoint.Manhattan,
	}
}

// WithWorkers bounds the number of concurrent searches in FindAll.
// n <= 0 removes the bound.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCacheSize sets the cache capacity in results. n <= 0 disables caching.
func WithCacheSize(n int64) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithTieBreak selects the distance rule passed to every search.
func WithTieBreak(rule lowpoint.TieBreak) Option {
	return func(o *options) {
		o.tieBreak = rule
	}
}

// WithRegisterer registers the Finder's metrics on r.
// Without it metrics are collected but not exported.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}
