package resolver

import (
	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// Option defines a functional option for configuring a Resolver.
type Option func(*Resolver) error

// WithLogger sets the logger for the Resolver.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: per-zone matching details like unreadable offset pairs (development use)
// Info level: search outcomes, candidate counts, durations (production-safe)
// Warn level: non-critical issues
// Error level: provider failures that cause search failures.
func WithLogger(logger tzsearch.Logger) Option {
	return func(r *Resolver) error {
		r.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Resolver.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger tzsearch.ContextualLogger) Option {
	return func(r *Resolver) error {
		r.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Resolver.
// The metrics collector will receive performance and operational metrics including
// search/localize durations, cache hits and misses, and search errors.
func WithMetrics(collector tzsearch.MetricsCollector) Option {
	return func(r *Resolver) error {
		r.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Resolver.
// The tracing collector will receive distributed tracing information including
// span creation for search/localize operations, context propagation, and error tracking.
func WithTracing(collector tzsearch.TracingCollector) Option {
	return func(r *Resolver) error {
		r.tracingCollector = collector
		return nil
	}
}

// WithTraceSink sets the default debug trace sink for the Resolver.
// Every search without a per-search sink records its trace here.
func WithTraceSink(sink tzsearch.TraceSink) Option {
	return func(r *Resolver) error {
		r.traceSink = sink
		return nil
	}
}

// WithCacheCapacity sets the capacity of the instance-scoped search cache.
func WithCacheCapacity(capacity int) Option {
	return func(r *Resolver) error {
		if capacity <= 0 {
			return tzsearch.ErrInvalidCacheCapacity
		}

		r.cache = newSearchCache(capacity)

		return nil
	}
}
