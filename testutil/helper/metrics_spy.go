package helper

import (
	"context"
	"sync"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// SpyDurationRecord represents a recorded duration metric.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// MetricsSpy is a tzsearch.MetricsCollector implementation that captures
// metric calls for testing. It also implements ContextualMetricsCollector,
// so resolver code that prefers the context-aware methods exercises the
// same record slices.
type MetricsSpy struct {
	durations []SpyDurationRecord
	counters  []SpyCounterRecord
	values    []SpyCounterRecord
	mu        sync.Mutex
}

// NewMetricsSpy creates a new MetricsSpy instance.
func NewMetricsSpy() *MetricsSpy {
	return &MetricsSpy{}
}

// RecordDuration implements the MetricsCollector interface for testing.
func (s *MetricsSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, SpyDurationRecord{Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements the MetricsCollector interface for testing.
func (s *MetricsSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, SpyCounterRecord{Metric: metric, Labels: labels})
}

// RecordValue implements the MetricsCollector interface for testing.
func (s *MetricsSpy) RecordValue(metric string, _ float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, SpyCounterRecord{Metric: metric, Labels: labels})
}

// RecordDurationContext implements the ContextualMetricsCollector interface for testing.
func (s *MetricsSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements the ContextualMetricsCollector interface for testing.
func (s *MetricsSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.IncrementCounter(metric, labels)
}

// RecordValueContext implements the ContextualMetricsCollector interface for testing.
func (s *MetricsSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.RecordValue(metric, value, labels)
}

// Durations returns a copy of all recorded duration metrics.
func (s *MetricsSpy) Durations() []SpyDurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyDurationRecord(nil), s.durations...)
}

// Counters returns a copy of all recorded counter increments.
func (s *MetricsSpy) Counters() []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyCounterRecord(nil), s.counters...)
}

// CountersForMetric returns a copy of the counter increments for one metric name.
func (s *MetricsSpy) CountersForMetric(metric string) []SpyCounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	matching := make([]SpyCounterRecord, 0)
	for _, c := range s.counters {
		if c.Metric == metric {
			matching = append(matching, c)
		}
	}

	return matching
}

// Reset clears all recorded metrics.
func (s *MetricsSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = s.durations[:0]
	s.counters = s.counters[:0]
	s.values = s.values[:0]
}

// Ensure MetricsSpy implements both metrics interfaces.
var (
	_ tzsearch.MetricsCollector           = (*MetricsSpy)(nil)
	_ tzsearch.ContextualMetricsCollector = (*MetricsSpy)(nil)
)
