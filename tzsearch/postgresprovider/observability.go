package postgresprovider

import (
	"context"
	"math"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

const (
	metricRulesQueryDuration = "tzsearch_rules_query_duration"
	metricRulesQueryErrors   = "tzsearch_rules_query_errors"
	spanNameRulesQuery       = "tzsearch.rules_query"
	spanAttrOperation        = "operation"
	statusSuccess            = "success"
	statusError              = "error"
)

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (p Provider) logQueryWithDuration(ctx context.Context, query, action string, duration time.Duration) {
	if p.contextualLogger != nil {
		p.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action,
			logAttrDurationMS, toMilliseconds(duration), logAttrQuery, query)
		return
	}

	if p.logger != nil {
		p.logger.Debug(logMsgSQLExecuted+action,
			logAttrDurationMS, toMilliseconds(duration), logAttrQuery, query)
	}
}

// logError logs error information at the error level if a logger is configured.
func (p Provider) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if p.contextualLogger != nil {
		p.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if p.logger != nil {
		p.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordQueryDuration records a query duration metric, using the context-aware
// collector method when available.
func (p Provider) recordQueryDuration(ctx context.Context, action string, duration time.Duration) {
	if p.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: action,
		"status":          statusSuccess,
	}

	if contextualCollector, ok := p.metricsCollector.(tzsearch.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricRulesQueryDuration, duration, labels)
	} else {
		p.metricsCollector.RecordDuration(metricRulesQueryDuration, duration, labels)
	}
}

// recordQueryError counts a failed query, using the context-aware collector
// method when available.
func (p Provider) recordQueryError(ctx context.Context, action string) {
	if p.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: action,
		"status":          statusError,
	}

	if contextualCollector, ok := p.metricsCollector.(tzsearch.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricRulesQueryErrors, labels)
	} else {
		p.metricsCollector.IncrementCounter(metricRulesQueryErrors, labels)
	}
}

// startQuerySpan starts a tracing span for one rules query if a tracing collector is configured.
func (p Provider) startQuerySpan(ctx context.Context, action string) (context.Context, tzsearch.SpanContext) {
	if p.tracingCollector == nil {
		return ctx, nil
	}

	return p.tracingCollector.StartSpan(ctx, spanNameRulesQuery, map[string]string{
		spanAttrOperation: action,
	})
}

// finishQuerySpan finishes a rules query span with its outcome.
func (p Provider) finishQuerySpan(span tzsearch.SpanContext, err error) {
	if p.tracingCollector == nil || span == nil {
		return
	}

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	span.SetStatus(status)
	p.tracingCollector.FinishSpan(span, status, nil)
}
