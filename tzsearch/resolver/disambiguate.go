package resolver

import (
	"context"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// Localize maps a local wall-clock time in a zone onto the UTC instant it
// denotes. The Location of local is ignored, only its wall-clock fields count.
//
// DST transitions are resolved by the hint:
//   - overlap (clocks fell back): DSTOff picks the standard-time reading, the
//     later instant; DSTOn picks the daylight reading, one hour (or whatever
//     the zone's shift is) earlier in UTC; DSTUnset fails with
//     AmbiguousLocalTimeError.
//   - gap (clocks sprang forward): DSTOff and DSTOn pick the corresponding
//     one-sided interpretation; DSTUnset fails with NonexistentLocalTimeError.
func (r *Resolver) Localize(
	ctx context.Context,
	zone tzsearch.ZoneIDString,
	local time.Time,
	hint tzsearch.DSTHint,
) (time.Time, error) {

	start := time.Now()
	ctx, span := r.startLocalizeSpan(ctx, zone)

	pair, err := r.provider.OffsetAt(ctx, zone, local, hint)
	if err != nil {
		r.logError(ctx, logMsgLocalizeFailed, err, logAttrZone, zone)
		r.recordDurationContext(ctx, metricLocalizeDuration, time.Since(start), operationLocalize, statusError)
		r.finishSpanError(span, err)

		return time.Time{}, err
	}

	instant := wallClockUTC(local).Add(-time.Duration(pair.OffsetMinutes()) * time.Minute)

	duration := time.Since(start)
	r.logOperation(ctx,
		logMsgLocalizeCompleted,
		logAttrZone, zone,
		logAttrDurationMS, toMilliseconds(duration))
	r.recordDurationContext(ctx, metricLocalizeDuration, duration, operationLocalize, statusSuccess)
	r.finishSpanSuccess(span, tzsearch.UniqueResolution(zone), 1)

	return instant, nil
}

// ResolveAndLocalize resolves the constraint set at the anchor and immediately
// maps the anchor wall-clock time onto a UTC instant in the resolved zone.
// It is the one-call form of Search followed by Localize, honoring the
// single-instant case where no further provider lookup is needed.
func (r *Resolver) ResolveAndLocalize(
	ctx context.Context,
	constraints tzsearch.ConstraintSet,
	anchor time.Time,
	opts SearchOptions,
) (time.Time, error) {

	resolution, err := r.Search(ctx, constraints, anchor, opts)
	if err != nil {
		return time.Time{}, err
	}

	if resolution.Kind() == tzsearch.ResolvedSingleInstant {
		// the anchor of a single-instant zone IS the localized instant
		return resolution.SingleInstant().Anchor(), nil
	}

	return r.Localize(ctx, resolution.Zone(), anchor, opts.Hint)
}
