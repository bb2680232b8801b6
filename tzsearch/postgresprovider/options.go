package postgresprovider

import (
	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// Option defines a functional option for configuring a Provider.
type Option func(*Provider) error

// WithTransitionsTableName sets the table the zone transitions are read from.
func WithTransitionsTableName(tableName string) Option {
	return func(p *Provider) error {
		if tableName == "" {
			return tzsearch.ErrEmptyTableName
		}

		p.transitionsTableName = tableName

		return nil
	}
}

// WithCountriesTableName sets the table the zone-to-country mapping is read from.
func WithCountriesTableName(tableName string) Option {
	return func(p *Provider) error {
		if tableName == "" {
			return tzsearch.ErrEmptyTableName
		}

		p.countriesTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Provider.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Error level: query, scan, and cleanup failures.
func WithLogger(logger tzsearch.Logger) Option {
	return func(p *Provider) error {
		p.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Provider. It is
// preferred over the plain logger when both are configured, so log records
// carry trace correlation.
func WithContextualLogger(logger tzsearch.ContextualLogger) Option {
	return func(p *Provider) error {
		p.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Provider. It receives
// query durations and database error counts.
func WithMetrics(collector tzsearch.MetricsCollector) Option {
	return func(p *Provider) error {
		p.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Provider. It receives one
// span per rules query.
func WithTracing(collector tzsearch.TracingCollector) Option {
	return func(p *Provider) error {
		p.tracingCollector = collector
		return nil
	}
}
