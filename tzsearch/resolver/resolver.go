package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

const (
	logMsgSeedingCandidatesFailed = "seeding candidate zones failed"
	logMsgReadingPairFailed       = "reading offset pair for candidate zone failed"
	logMsgNoZoneFound             = "no zone satisfies the constraints"
	logMsgAmbiguousTimezone       = "constraints resolve to multiple offset clusters"
	logMsgLocalizeFailed          = "localizing wall-clock time failed"
	logMsgSearchCompleted         = "search completed"
	logMsgLocalizeCompleted       = "localize completed"
	logMsgOperation               = "resolver operation: "
	logAttrError                  = "error"
	logAttrSearchID               = "search_id"
	logAttrZone                   = "zone"
	logAttrCandidates             = "candidates"
	logAttrClusters               = "clusters"
	logAttrResolution             = "resolution"
	logAttrDurationMS             = "duration_ms"
	logAttrInputs                 = "inputs"
)

const (
	metricSearchDuration   = "tzsearch_search_duration"
	metricLocalizeDuration = "tzsearch_localize_duration"
	metricSearchErrors     = "tzsearch_search_errors"
	metricCacheHits        = "tzsearch_cache_hits"
	metricCacheMisses      = "tzsearch_cache_misses"
	spanNameSearch         = "tzsearch.search"
	spanNameLocalize       = "tzsearch.localize"
	spanAttrOperation      = "operation"
	spanAttrErrorType      = "error_type"
	spanAttrResolution     = "resolution"
	spanAttrCandidates     = "candidates"
	spanAttrZone           = "zone"
	operationSearch        = "search"
	operationLocalize      = "localize"
	statusSuccess          = "success"
	statusError            = "error"
)

// Resolver resolves constraint sets against a rules provider.
//
// A Resolver is NOT safe for concurrent use; its search cache is unsynchronized
// on purpose. Create one Resolver per goroutine or context (see Pool), sharing
// the rules provider between them.
type Resolver struct {
	provider         tzsearch.RulesProvider
	cache            *searchCache
	logger           tzsearch.Logger
	metricsCollector tzsearch.MetricsCollector
	tracingCollector tzsearch.TracingCollector
	contextualLogger tzsearch.ContextualLogger
	traceSink        tzsearch.TraceSink
}

// SearchOptions carries the per-search knobs. The zero value is a safe
// default: unrestricted countries, standard-time DST interpretation, strict
// ambiguity handling, no tracing.
type SearchOptions struct {
	// Countries restricts and orders the zone universe the search is seeded from.
	Countries tzsearch.CountryFilter

	// Hint steers abbreviation matching and localization across DST transitions.
	Hint tzsearch.DSTHint

	// Unsafe makes a multi-cluster outcome resolve to the first cluster in
	// candidate order instead of failing with AmbiguousTimezoneError.
	Unsafe bool

	// Trace receives the debug trace of this search; nil falls back to the
	// Resolver's configured sink, if any.
	Trace tzsearch.TraceSink
}

// New creates a Resolver for the given rules provider with optional configuration.
func New(provider tzsearch.RulesProvider, options ...Option) (*Resolver, error) {
	if provider == nil {
		return nil, tzsearch.ErrNilRulesProvider
	}

	r := &Resolver{
		provider: provider,
		cache:    newSearchCache(defaultCacheCapacity),
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search resolves the constraint set at the anchor wall-clock time.
//
// The anchor's Location is ignored; only its wall-clock fields count, because
// abbreviations and offsets are compared as each candidate zone would display
// that wall-clock time.
//
// It returns a Resolution on success and one of NoZoneFoundError,
// AmbiguousTimezoneError or UnknownCountryError on failure, each carrying the
// complete input set. Provider failures (anything other than a per-zone DST
// gap, DST overlap, or unknown zone) abort the search and propagate unmodified.
func (r *Resolver) Search(
	ctx context.Context,
	constraints tzsearch.ConstraintSet,
	anchor time.Time,
	opts SearchOptions,
) (tzsearch.Resolution, error) {

	var empty tzsearch.Resolution

	inputs := tzsearch.SearchInputs{
		Constraints: constraints,
		Anchor:      anchor,
		Countries:   opts.Countries,
		Hint:        opts.Hint,
		Unsafe:      opts.Unsafe,
	}

	searchID := uuid.NewString()
	sink := r.sinkFor(opts)
	start := time.Now()
	ctx, span := r.startSearchSpan(ctx, inputs)

	entry, searchErr := r.candidatesFor(ctx, inputs, searchID, sink)
	if searchErr != nil {
		duration := time.Since(start)
		r.recordSearchError(ctx, searchErr, duration)
		r.finishSpanError(span, searchErr)

		return empty, searchErr
	}

	resolution, classifyErr := r.classify(entry, inputs, searchID, sink)
	duration := time.Since(start)

	if classifyErr != nil {
		r.recordSearchError(ctx, classifyErr, duration)
		r.finishSpanError(span, classifyErr)

		return empty, classifyErr
	}

	r.logOperation(ctx,
		logMsgSearchCompleted,
		logAttrSearchID, searchID,
		logAttrCandidates, len(entry.candidates),
		logAttrClusters, len(entry.clusters),
		logAttrResolution, resolution.String(),
		logAttrDurationMS, toMilliseconds(duration))
	r.recordSearchSuccess(ctx, duration)
	r.finishSpanSuccess(span, resolution, len(entry.candidates))

	return resolution, nil
}

// candidatesFor returns the narrowed candidate set and its clusters, from the
// cache when the same question was asked before.
func (r *Resolver) candidatesFor(
	ctx context.Context,
	inputs tzsearch.SearchInputs,
	searchID string,
	sink tzsearch.TraceSink,
) (cacheEntry, error) {

	key := cacheKeyFor(inputs)

	if entry, ok := r.cache.get(key); ok {
		r.trace(sink, searchID, tzsearch.TraceStageCacheHit, key, len(entry.candidates))
		r.recordCacheHit(ctx)

		return entry, nil
	}

	r.trace(sink, searchID, tzsearch.TraceStageCacheMiss, key, 0)
	r.recordCacheMiss(ctx)

	candidates, seedErr := r.seedCandidates(ctx, inputs, searchID, sink)
	if seedErr != nil {
		return cacheEntry{}, seedErr
	}

	pairs := r.newPairMemo(inputs)

	candidates, narrowErr := r.narrowCandidates(ctx, inputs, candidates, pairs, searchID, sink)
	if narrowErr != nil {
		return cacheEntry{}, narrowErr
	}

	clusters, clusterErr := r.clusterCandidates(ctx, candidates, pairs, searchID, sink)
	if clusterErr != nil {
		return cacheEntry{}, clusterErr
	}

	entry := cacheEntry{
		candidates: candidates,
		clusters:   clusters,
	}
	r.cache.put(key, entry)

	return entry, nil
}

// seedCandidates builds the initial candidate set: the full zone universe for
// an unrestricted filter, otherwise the zones of the filtered countries in
// filter order, deduplicated with order kept.
func (r *Resolver) seedCandidates(
	ctx context.Context,
	inputs tzsearch.SearchInputs,
	searchID string,
	sink tzsearch.TraceSink,
) ([]tzsearch.ZoneIDString, error) {

	if inputs.Countries.IsUnrestricted() {
		zones, err := r.provider.AllZones(ctx)
		if err != nil {
			r.logError(ctx, logMsgSeedingCandidatesFailed, err, logAttrSearchID, searchID)

			return nil, errors.Join(tzsearch.ErrListingZonesFailed, err)
		}

		r.trace(sink, searchID, tzsearch.TraceStageSeed, "seeded from full zone universe", len(zones))

		return zones, nil
	}

	candidates := make([]tzsearch.ZoneIDString, 0)
	seen := make(map[tzsearch.ZoneIDString]struct{})

	for _, code := range inputs.Countries.Codes() {
		zones, err := r.provider.ZonesForCountry(ctx, code)
		if err != nil {
			r.logError(ctx, logMsgSeedingCandidatesFailed, err, logAttrSearchID, searchID)

			var unknownCountry *tzsearch.UnknownCountryError
			if errors.As(err, &unknownCountry) {
				unknownCountry.Inputs = inputs
				return nil, unknownCountry
			}

			return nil, errors.Join(tzsearch.ErrListingZonesFailed, err)
		}

		for _, zone := range zones {
			if _, dup := seen[zone]; dup {
				continue
			}

			seen[zone] = struct{}{}
			candidates = append(candidates, zone)
		}
	}

	r.trace(sink, searchID, tzsearch.TraceStageSeed,
		fmt.Sprintf("seeded from %s", inputs.Countries.Signature()), len(candidates))

	return candidates, nil
}

// narrowCandidates applies the constraints in order, keeping a candidate when
// any alternative of the current constraint matches it at the anchor. An empty
// survivor set short-circuits with NoZoneFoundError.
func (r *Resolver) narrowCandidates(
	ctx context.Context,
	inputs tzsearch.SearchInputs,
	candidates []tzsearch.ZoneIDString,
	pairs *pairMemo,
	searchID string,
	sink tzsearch.TraceSink,
) ([]tzsearch.ZoneIDString, error) {

	for i, constraint := range inputs.Constraints.Constraints() {
		if len(constraint.Alternatives()) == 0 {
			continue // fully sanitized away, matches everything
		}

		survivors := make([]tzsearch.ZoneIDString, 0, len(candidates))
		for _, zone := range candidates {
			matched, matchErr := r.matchesAny(ctx, constraint, zone, pairs, searchID)
			if matchErr != nil {
				return nil, matchErr
			}

			if matched {
				survivors = append(survivors, zone)
			}
		}

		candidates = survivors
		r.trace(sink, searchID, tzsearch.TraceStageConstraint,
			fmt.Sprintf("applied constraint %d", i), len(candidates))

		if len(candidates) == 0 {
			noZone := &tzsearch.NoZoneFoundError{Inputs: inputs}
			r.logOperation(ctx, logMsgNoZoneFound, logAttrSearchID, searchID, logAttrInputs, inputs.String())

			return nil, noZone
		}
	}

	if len(candidates) == 0 {
		return nil, &tzsearch.NoZoneFoundError{Inputs: inputs}
	}

	return candidates, nil
}

// matchesAny reports whether any alternative of the constraint matches the
// zone at the anchor. A zone-local pair failure (DST gap, DST overlap, unknown
// zone) only rules out pair-based matching for that zone; any other pair
// failure is a provider failure and is returned to abort the search.
func (r *Resolver) matchesAny(
	ctx context.Context,
	constraint tzsearch.Constraint,
	zone tzsearch.ZoneIDString,
	pairs *pairMemo,
	searchID string,
) (bool, error) {

	for _, literal := range constraint.Alternatives() {
		switch literal.Kind() {
		case tzsearch.ZoneLiteral:
			if zone == literal.Name() {
				return true, nil
			}

		case tzsearch.AbbrevLiteral:
			if zone == literal.Name() {
				return true, nil
			}

			pair, err := pairs.pairFor(ctx, zone)
			if err != nil {
				if !zoneLocalPairError(err) {
					r.logError(ctx, logMsgReadingPairFailed, err, logAttrSearchID, searchID, logAttrZone, zone)
					return false, err
				}

				r.logDebug(ctx, logMsgReadingPairFailed, logAttrSearchID, searchID, logAttrZone, zone, logAttrError, err.Error())
				continue // a zone without a pair at the anchor can only match by identifier
			}

			if pair.Abbrev() == literal.Name() {
				return true, nil
			}

		case tzsearch.OffsetLiteral:
			pair, err := pairs.pairFor(ctx, zone)
			if err != nil {
				if !zoneLocalPairError(err) {
					r.logError(ctx, logMsgReadingPairFailed, err, logAttrSearchID, searchID, logAttrZone, zone)
					return false, err
				}

				r.logDebug(ctx, logMsgReadingPairFailed, logAttrSearchID, searchID, logAttrZone, zone, logAttrError, err.Error())
				continue
			}

			if pair.OffsetMinutes() == literal.OffsetMinutes() {
				return true, nil
			}
		}
	}

	return false, nil
}

// zoneLocalPairError reports whether a pair lookup failure is a property of the
// zone at the anchor rather than of the provider: the anchor falls in a DST gap
// or overlap, or the zone is unknown to the rules. Those make the zone a
// non-match; everything else must propagate to the caller.
func zoneLocalPairError(err error) bool {
	return errors.Is(err, tzsearch.ErrNonexistentLocalTime) ||
		errors.Is(err, tzsearch.ErrAmbiguousLocalTime) ||
		errors.Is(err, tzsearch.ErrUnknownZone)
}

// clusterCandidates groups the survivors by their (offset, abbreviation) pair
// at the anchor, in first-seen candidate order. Zones whose pair cannot be
// read at the anchor form their own marker clusters keyed by zone identifier,
// so they never silently merge with real pairs.
func (r *Resolver) clusterCandidates(
	ctx context.Context,
	candidates []tzsearch.ZoneIDString,
	pairs *pairMemo,
	searchID string,
	sink tzsearch.TraceSink,
) ([]offsetCluster, error) {

	clusters := make([]offsetCluster, 0)
	indexByPair := make(map[tzsearch.OffsetName]int)

	for _, zone := range candidates {
		marker := false

		pair, err := pairs.pairFor(ctx, zone)
		if err != nil {
			if !zoneLocalPairError(err) {
				r.logError(ctx, logMsgReadingPairFailed, err, logAttrSearchID, searchID, logAttrZone, zone)
				return nil, err
			}

			r.logDebug(ctx, logMsgReadingPairFailed, logAttrSearchID, searchID, logAttrZone, zone, logAttrError, err.Error())
			pair = markerPairFor(zone)
			marker = true
		}

		if idx, ok := indexByPair[pair]; ok {
			clusters[idx].zones = append(clusters[idx].zones, zone)
			continue
		}

		indexByPair[pair] = len(clusters)
		clusters = append(clusters, offsetCluster{pair: pair, zones: []tzsearch.ZoneIDString{zone}, marker: marker})
	}

	r.trace(sink, searchID, tzsearch.TraceStageCluster,
		fmt.Sprintf("formed %d offset clusters", len(clusters)), len(candidates))

	return clusters, nil
}

// markerPairFor builds the synthetic pair keying the marker cluster of a zone
// whose anchor falls in a DST gap or overlap. The "?" prefix cannot occur in a
// real abbreviation, so marker clusters never merge with real pairs, and they
// are excluded from the pairs an AmbiguousTimezoneError reports.
func markerPairFor(zone tzsearch.ZoneIDString) tzsearch.OffsetName {
	return tzsearch.NewOffsetName(0, "?"+zone)
}

// classify turns the narrowed candidates and clusters into the final outcome.
func (r *Resolver) classify(
	entry cacheEntry,
	inputs tzsearch.SearchInputs,
	searchID string,
	sink tzsearch.TraceSink,
) (tzsearch.Resolution, error) {

	var empty tzsearch.Resolution

	if len(entry.candidates) == 0 {
		return empty, &tzsearch.NoZoneFoundError{Inputs: inputs}
	}

	if len(entry.clusters) == 1 {
		cluster := entry.clusters[0]

		if len(cluster.zones) == 1 {
			r.trace(sink, searchID, tzsearch.TraceStageClassify, "unique zone "+cluster.zones[0], 1)

			return tzsearch.UniqueResolution(cluster.zones[0]), nil
		}

		resolution := tzsearch.SingleInstantResolution(r.singleInstantFor(cluster, inputs))
		r.trace(sink, searchID, tzsearch.TraceStageClassify,
			"single cluster "+cluster.pair.String(), len(cluster.zones))

		return resolution, nil
	}

	if inputs.Unsafe {
		// candidate order already encodes the country preference order
		cluster := entry.clusters[0]
		r.trace(sink, searchID, tzsearch.TraceStageClassify,
			"unsafe pick of first cluster "+cluster.pair.String(), len(cluster.zones))

		if len(cluster.zones) == 1 {
			return tzsearch.UniqueResolution(cluster.zones[0]), nil
		}

		return tzsearch.SingleInstantResolution(r.singleInstantFor(cluster, inputs)), nil
	}

	pairs := make([]tzsearch.OffsetName, 0, len(entry.clusters))
	for _, cluster := range entry.clusters {
		if cluster.marker {
			continue // synthetic key, not a pair any zone displays
		}

		pairs = append(pairs, cluster.pair)
	}

	r.trace(sink, searchID, tzsearch.TraceStageClassify,
		fmt.Sprintf("ambiguous across %d clusters", len(entry.clusters)), len(entry.candidates))

	return empty, &tzsearch.AmbiguousTimezoneError{
		Pairs:  pairs,
		Zones:  entry.candidates,
		Inputs: inputs,
	}
}

// singleInstantFor converts a cluster at the anchor wall-clock time into a
// SingleInstantZone anchored at the corresponding UTC instant.
func (r *Resolver) singleInstantFor(cluster offsetCluster, inputs tzsearch.SearchInputs) *tzsearch.SingleInstantZone {
	instant := wallClockUTC(inputs.Anchor).Add(-time.Duration(cluster.pair.OffsetMinutes()) * time.Minute)

	return tzsearch.NewSingleInstantZone(cluster.pair, instant, cluster.zones)
}

// sinkFor picks the per-search sink, falling back to the Resolver's configured one.
func (r *Resolver) sinkFor(opts SearchOptions) tzsearch.TraceSink {
	if opts.Trace != nil {
		return opts.Trace
	}

	return r.traceSink
}

// trace records a step if a sink is configured.
func (r *Resolver) trace(sink tzsearch.TraceSink, searchID, stage, message string, zones int) {
	if sink == nil {
		return
	}

	sink.Record(tzsearch.TraceStep{
		SearchID: searchID,
		Stage:    stage,
		Message:  message,
		Zones:    zones,
		At:       time.Now().UTC(),
	})
}

/***** pairMemo *****/

// pairMemo caches provider pair lookups for the duration of one search:
// a zone's pair at the anchor does not change between constraints.
type pairMemo struct {
	provider tzsearch.RulesProvider
	anchor   time.Time
	hint     tzsearch.DSTHint
	pairs    map[tzsearch.ZoneIDString]tzsearch.OffsetName
	failures map[tzsearch.ZoneIDString]error
}

func (r *Resolver) newPairMemo(inputs tzsearch.SearchInputs) *pairMemo {
	return &pairMemo{
		provider: r.provider,
		anchor:   inputs.Anchor,
		hint:     inputs.Hint,
		pairs:    make(map[tzsearch.ZoneIDString]tzsearch.OffsetName),
		failures: make(map[tzsearch.ZoneIDString]error),
	}
}

func (m *pairMemo) pairFor(ctx context.Context, zone tzsearch.ZoneIDString) (tzsearch.OffsetName, error) {
	if pair, ok := m.pairs[zone]; ok {
		return pair, nil
	}

	if err, ok := m.failures[zone]; ok {
		return tzsearch.OffsetName{}, err
	}

	pair, err := m.provider.OffsetAt(ctx, zone, m.anchor, m.hint)
	if err != nil {
		m.failures[zone] = err
		return tzsearch.OffsetName{}, err
	}

	m.pairs[zone] = pair

	return pair, nil
}

// wallClockUTC reinterprets the wall-clock fields of t in UTC, discarding its Location.
func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
