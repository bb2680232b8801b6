package resolver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// logOperation logs operational information at info level, preferring the
// contextual logger for trace correlation when both loggers are configured.
func (r *Resolver) logOperation(ctx context.Context, action string, args ...any) {
	if r.contextualLogger != nil {
		r.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if r.logger != nil {
		r.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (r *Resolver) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if r.contextualLogger != nil {
		r.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if r.logger != nil {
		r.logger.Error(message, allArgs...)
	}
}

// logDebug logs matching details at debug level if a logger is configured.
func (r *Resolver) logDebug(ctx context.Context, message string, args ...any) {
	if r.contextualLogger != nil {
		r.contextualLogger.DebugContext(ctx, message, args...)
		return
	}

	if r.logger != nil {
		r.logger.Debug(message, args...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDurationContext records a duration metric, using the context-aware
// collector method when available.
func (r *Resolver) recordDurationContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {
	if r.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := r.metricsCollector.(tzsearch.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		r.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// incrementCounterContext increments a counter metric, using the context-aware
// collector method when available.
func (r *Resolver) incrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	if r.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := r.metricsCollector.(tzsearch.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
	} else {
		r.metricsCollector.IncrementCounter(metricName, labels)
	}
}

// recordSearchSuccess records duration metrics for a successful search.
func (r *Resolver) recordSearchSuccess(ctx context.Context, duration time.Duration) {
	r.recordDurationContext(ctx, metricSearchDuration, duration, operationSearch, statusSuccess)
}

// recordSearchError records duration and error metrics for a failed search.
func (r *Resolver) recordSearchError(ctx context.Context, err error, duration time.Duration) {
	r.recordDurationContext(ctx, metricSearchDuration, duration, operationSearch, statusError)
	r.incrementCounterContext(ctx, metricSearchErrors, map[string]string{
		spanAttrOperation: operationSearch,
		"status":          statusError,
		spanAttrErrorType: errorTypeOf(err),
	})
}

// recordCacheHit counts a search answered from the instance cache.
func (r *Resolver) recordCacheHit(ctx context.Context) {
	r.incrementCounterContext(ctx, metricCacheHits, map[string]string{spanAttrOperation: operationSearch})
}

// recordCacheMiss counts a search that had to run the narrowing stages.
func (r *Resolver) recordCacheMiss(ctx context.Context) {
	r.incrementCounterContext(ctx, metricCacheMisses, map[string]string{spanAttrOperation: operationSearch})
}

// startSearchSpan starts a tracing span for search operations if a tracing collector is configured.
func (r *Resolver) startSearchSpan(ctx context.Context, inputs tzsearch.SearchInputs) (context.Context, tzsearch.SpanContext) {
	if r.tracingCollector == nil {
		return ctx, nil
	}

	return r.tracingCollector.StartSpan(ctx, spanNameSearch, map[string]string{
		spanAttrOperation: operationSearch,
		"constraints":     inputs.Constraints.Serialize(),
		"countries":       inputs.Countries.Signature(),
		"dst_hint":        inputs.Hint.String(),
	})
}

// startLocalizeSpan starts a tracing span for localize operations if a tracing collector is configured.
func (r *Resolver) startLocalizeSpan(ctx context.Context, zone tzsearch.ZoneIDString) (context.Context, tzsearch.SpanContext) {
	if r.tracingCollector == nil {
		return ctx, nil
	}

	return r.tracingCollector.StartSpan(ctx, spanNameLocalize, map[string]string{
		spanAttrOperation: operationLocalize,
		spanAttrZone:      zone,
	})
}

// finishSpanSuccess finishes a span with the resolution outcome.
func (r *Resolver) finishSpanSuccess(span tzsearch.SpanContext, resolution tzsearch.Resolution, candidates int) {
	if r.tracingCollector == nil || span == nil {
		return
	}

	span.SetStatus(statusSuccess)
	span.AddAttribute(spanAttrResolution, resolution.String())
	span.AddAttribute(spanAttrCandidates, fmt.Sprintf("%d", candidates))

	r.tracingCollector.FinishSpan(span, statusSuccess, map[string]string{
		spanAttrResolution: resolution.String(),
	})
}

// finishSpanError finishes a span with error details.
func (r *Resolver) finishSpanError(span tzsearch.SpanContext, err error) {
	if r.tracingCollector == nil || span == nil {
		return
	}

	span.SetStatus(statusError)
	span.AddAttribute(spanAttrErrorType, errorTypeOf(err))

	r.tracingCollector.FinishSpan(span, statusError, map[string]string{
		spanAttrErrorType: errorTypeOf(err),
	})
}

// errorTypeOf maps search failures onto stable label values for metrics and spans.
func errorTypeOf(err error) string {
	switch {
	case errors.Is(err, tzsearch.ErrNoZoneFound):
		return "no_zone_found"
	case errors.Is(err, tzsearch.ErrAmbiguousTimezone):
		return "ambiguous_timezone"
	case errors.Is(err, tzsearch.ErrUnknownCountry):
		return "unknown_country"
	case errors.Is(err, tzsearch.ErrUnknownZone):
		return "unknown_zone"
	case errors.Is(err, tzsearch.ErrNonexistentLocalTime):
		return "nonexistent_local_time"
	case errors.Is(err, tzsearch.ErrAmbiguousLocalTime):
		return "ambiguous_local_time"
	case errors.Is(err, tzsearch.ErrListingZonesFailed):
		return "listing_zones_failed"
	default:
		return "provider_error"
	}
}
