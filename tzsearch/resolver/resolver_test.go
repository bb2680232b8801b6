package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzsearch/timezone-search-go/testutil/fixtures"
	"github.com/tzsearch/timezone-search-go/testutil/helper"
	"github.com/tzsearch/timezone-search-go/tzsearch"
	"github.com/tzsearch/timezone-search-go/tzsearch/resolver"
)

// anchor is an arbitrary wall-clock time; the fixture provider reports the
// same pairs at every anchor.
var anchor = time.Date(2013, time.June, 17, 12, 0, 0, 0, time.UTC)

// fixtureWorld scripts a small zone universe with the interesting shapes:
// one abbreviation shared across three distinct offsets, countries with one
// and with several zones, and a zone whose anchor falls in a DST gap.
func fixtureWorld() []fixtures.Zone {
	return []fixtures.Zone{
		{ID: "America/New_York", Countries: []tzsearch.CountryCodeString{"US"}, Pair: tzsearch.NewOffsetName(-300, "EST")},
		{ID: "America/Detroit", Countries: []tzsearch.CountryCodeString{"US"}, Pair: tzsearch.NewOffsetName(-300, "EST")},
		{ID: "America/Jamaica", Countries: []tzsearch.CountryCodeString{"JM"}, Pair: tzsearch.NewOffsetName(-300, "EST")},
		{ID: "Australia/Sydney", Countries: []tzsearch.CountryCodeString{"AU"}, Pair: tzsearch.NewOffsetName(600, "EST")},
		{ID: "Australia/Brisbane", Countries: []tzsearch.CountryCodeString{"AU"}, Pair: tzsearch.NewOffsetName(600, "EST")},
		{ID: "Australia/Hobart", Countries: []tzsearch.CountryCodeString{"AU"}, Pair: tzsearch.NewOffsetName(660, "EST")},
		{ID: "Europe/London", Countries: []tzsearch.CountryCodeString{"GB"}, Pair: tzsearch.NewOffsetName(0, "GMT")},
		{ID: "UTC", Pair: tzsearch.NewOffsetName(0, "UTC")},
		{ID: "America/Troubled", Countries: []tzsearch.CountryCodeString{"US"}, Err: &tzsearch.NonexistentLocalTimeError{Zone: "America/Troubled"}},
	}
}

func givenResolver(t *testing.T, options ...resolver.Option) *resolver.Resolver {
	t.Helper()

	r, err := resolver.New(fixtures.NewProvider(fixtureWorld()...), options...)
	require.NoError(t, err)

	return r
}

func abbrevSet(names ...tzsearch.AbbrevString) tzsearch.ConstraintSet {
	builder := tzsearch.BuildConstraintSet().Matching()

	literals := make([]tzsearch.ConstraintLiteral, 0, len(names))
	for _, name := range names {
		literals = append(literals, tzsearch.Abbrev(name))
	}

	return builder.AnyOf(literals[0], literals[1:]...).Finalize()
}

func Test_Search_UniqueZone(t *testing.T) {
	r := givenResolver(t)

	resolution, err := r.Search(context.Background(), abbrevSet("GMT"), anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedUnique, resolution.Kind())
	assert.Equal(t, tzsearch.ZoneIDString("Europe/London"), resolution.Zone())
}

func Test_Search_SingleInstantWhenOneClusterHoldsManyZones(t *testing.T) {
	r := givenResolver(t)

	resolution, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("US"),
	})

	require.NoError(t, err)
	require.Equal(t, tzsearch.ResolvedSingleInstant, resolution.Kind())

	single := resolution.SingleInstant()
	assert.Equal(t, tzsearch.NewOffsetName(-300, "EST"), single.Pair())
	assert.Equal(t,
		[]tzsearch.ZoneIDString{"America/New_York", "America/Detroit"},
		single.Zones())
	// wall-clock 12:00 at UTC-05:00 is 17:00 UTC
	assert.True(t, single.Anchor().Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_Search_UniqueWhenCountryFilterLeavesOneZone(t *testing.T) {
	r := givenResolver(t)

	resolution, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("JM"),
	})

	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedUnique, resolution.Kind())
	assert.Equal(t, tzsearch.ZoneIDString("America/Jamaica"), resolution.Zone())
}

func Test_Search_AmbiguousAcrossOffsetClusters(t *testing.T) {
	r := givenResolver(t)

	_, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)

	var ambiguous *tzsearch.AmbiguousTimezoneError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []tzsearch.OffsetName{
		tzsearch.NewOffsetName(-300, "EST"),
		tzsearch.NewOffsetName(600, "EST"),
		tzsearch.NewOffsetName(660, "EST"),
	}, ambiguous.Pairs)
	assert.Len(t, ambiguous.Zones, 6)
	assert.True(t, ambiguous.Inputs.Anchor.Equal(anchor))
}

func Test_Search_NoZoneFound(t *testing.T) {
	r := givenResolver(t)

	_, err := r.Search(context.Background(), abbrevSet("XYZ"), anchor, resolver.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrNoZoneFound)

	var noZone *tzsearch.NoZoneFoundError
	require.ErrorAs(t, err, &noZone)
	assert.True(t, noZone.Inputs.Anchor.Equal(anchor))
	assert.False(t, noZone.Inputs.Unsafe)
}

func Test_Search_UnknownCountry(t *testing.T) {
	r := givenResolver(t)

	_, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("QQ"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrUnknownCountry)

	var unknown *tzsearch.UnknownCountryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, tzsearch.CountryCodeString("QQ"), unknown.Code)
	assert.True(t, unknown.Inputs.Anchor.Equal(anchor))
}

func Test_Search_UnsafePicksFirstClusterInCountryOrder(t *testing.T) {
	r := givenResolver(t)

	auFirst, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("AU", "US"),
		Unsafe:    true,
	})
	require.NoError(t, err)
	require.Equal(t, tzsearch.ResolvedSingleInstant, auFirst.Kind())
	assert.Equal(t, tzsearch.NewOffsetName(600, "EST"), auFirst.SingleInstant().Pair())

	usFirst, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("US", "AU"),
		Unsafe:    true,
	})
	require.NoError(t, err)
	require.Equal(t, tzsearch.ResolvedSingleInstant, usFirst.Kind())
	assert.Equal(t, tzsearch.NewOffsetName(-300, "EST"), usFirst.SingleInstant().Pair())
}

func Test_Search_UnsafeFirstClusterWithOneZoneIsUnique(t *testing.T) {
	r := givenResolver(t)

	resolution, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("JM", "AU"),
		Unsafe:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedUnique, resolution.Kind())
	assert.Equal(t, tzsearch.ZoneIDString("America/Jamaica"), resolution.Zone())
}

func Test_Search_SafeModeIgnoresCountryOrder(t *testing.T) {
	r := givenResolver(t)

	for _, codes := range [][]tzsearch.CountryCodeString{{"AU", "US"}, {"US", "AU"}} {
		_, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
			Countries: tzsearch.Countries(codes...),
		})

		assert.ErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)
	}
}

func Test_Search_ZoneLiteralMatchesByIdentifier(t *testing.T) {
	r := givenResolver(t)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Zone("Australia/Hobart")).
		Finalize()

	resolution, err := r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedUnique, resolution.Kind())
	assert.Equal(t, tzsearch.ZoneIDString("Australia/Hobart"), resolution.Zone())
}

func Test_Search_ZoneLiteralResolvesEvenWhenAnchorFallsInGap(t *testing.T) {
	r := givenResolver(t)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Zone("America/Troubled")).
		Finalize()

	resolution, err := r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedUnique, resolution.Kind())
	assert.Equal(t, tzsearch.ZoneIDString("America/Troubled"), resolution.Zone())
}

func Test_Search_ProviderFailurePropagates(t *testing.T) {
	rulesErr := errors.Join(tzsearch.ErrReadingZoneRulesFailed, errors.New("connection refused"))
	provider := fixtures.NewProvider(
		fixtures.Zone{ID: "America/New_York", Countries: []tzsearch.CountryCodeString{"US"}, Pair: tzsearch.NewOffsetName(-300, "EST")},
		fixtures.Zone{ID: "America/Broken", Countries: []tzsearch.CountryCodeString{"US"}, Err: rulesErr},
	)
	r, err := resolver.New(provider)
	require.NoError(t, err)

	_, err = r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrReadingZoneRulesFailed)
	assert.NotErrorIs(t, err, tzsearch.ErrNoZoneFound)
}

func Test_Search_ProviderFailurePropagatesFromClustering(t *testing.T) {
	rulesErr := errors.Join(tzsearch.ErrReadingZoneRulesFailed, errors.New("connection refused"))
	provider := fixtures.NewProvider(
		fixtures.Zone{ID: "America/New_York", Countries: []tzsearch.CountryCodeString{"US"}, Pair: tzsearch.NewOffsetName(-300, "EST")},
		fixtures.Zone{ID: "America/Broken", Countries: []tzsearch.CountryCodeString{"US"}, Err: rulesErr},
	)
	r, err := resolver.New(provider)
	require.NoError(t, err)

	// zone literals match without reading pairs, so the failure only hits clustering
	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Zone("America/New_York"), tzsearch.Zone("America/Broken")).
		Finalize()

	_, err = r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrReadingZoneRulesFailed)
	assert.NotErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)
}

func Test_Search_AmbiguousPairsExcludeZonesWithoutReadablePair(t *testing.T) {
	r := givenResolver(t)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Zone("America/Troubled"), tzsearch.Zone("Europe/London"), tzsearch.Zone("Australia/Hobart")).
		Finalize()

	_, err := r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	var ambiguous *tzsearch.AmbiguousTimezoneError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []tzsearch.OffsetName{
		tzsearch.NewOffsetName(660, "EST"),
		tzsearch.NewOffsetName(0, "GMT"),
	}, ambiguous.Pairs)
	assert.Equal(t,
		[]tzsearch.ZoneIDString{"Australia/Hobart", "Europe/London", "America/Troubled"},
		ambiguous.Zones)
}

func Test_Search_OffsetLiteral(t *testing.T) {
	r := givenResolver(t)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Offset(-300)).
		Finalize()

	resolution, err := r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	require.Equal(t, tzsearch.ResolvedSingleInstant, resolution.Kind())
	assert.Equal(t,
		[]tzsearch.ZoneIDString{"America/New_York", "America/Detroit", "America/Jamaica"},
		resolution.SingleInstant().Zones())
}

func Test_Search_ConstraintsIntersect(t *testing.T) {
	r := givenResolver(t)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(tzsearch.Abbrev("EST")).
		AndMatching().
		AnyOf(tzsearch.Offset(600)).
		Finalize()

	resolution, err := r.Search(context.Background(), constraints, anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	require.Equal(t, tzsearch.ResolvedSingleInstant, resolution.Kind())
	assert.Equal(t,
		[]tzsearch.ZoneIDString{"Australia/Sydney", "Australia/Brisbane"},
		resolution.SingleInstant().Zones())
}

func Test_Search_EmptyConstraintSetKeepsWholeUniverse(t *testing.T) {
	r := givenResolver(t)

	// unrestricted: the universe spans several clusters
	_, err := r.Search(context.Background(), tzsearch.BuildConstraintSet().MatchingAnyZone(), anchor, resolver.SearchOptions{})
	assert.ErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)

	// a one-zone country collapses it to a unique zone
	resolution, err := r.Search(context.Background(), tzsearch.BuildConstraintSet().MatchingAnyZone(), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("GB"),
	})
	require.NoError(t, err)
	assert.Equal(t, tzsearch.ZoneIDString("Europe/London"), resolution.Zone())
}

func Test_Search_CacheHitOnRepeatedSearch(t *testing.T) {
	metrics := helper.NewMetricsSpy()
	sink := &tzsearch.CollectingTraceSink{}
	r := givenResolver(t, resolver.WithMetrics(metrics), resolver.WithTraceSink(sink))

	opts := resolver.SearchOptions{Countries: tzsearch.Countries("US")}

	first, err := r.Search(context.Background(), abbrevSet("EST"), anchor, opts)
	require.NoError(t, err)

	second, err := r.Search(context.Background(), abbrevSet("EST"), anchor, opts)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Len(t, sink.StepsForStage(tzsearch.TraceStageCacheMiss), 1)
	assert.Len(t, sink.StepsForStage(tzsearch.TraceStageCacheHit), 1)
	assert.Len(t, metrics.CountersForMetric("tzsearch_cache_misses"), 1)
	assert.Len(t, metrics.CountersForMetric("tzsearch_cache_hits"), 1)
}

func Test_Search_UnsafeFlagDoesNotSplitTheCache(t *testing.T) {
	metrics := helper.NewMetricsSpy()
	r := givenResolver(t, resolver.WithMetrics(metrics))

	_, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{})
	assert.ErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)

	// same question with unsafe set reuses the cached clusters and succeeds
	resolution, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{Unsafe: true})
	require.NoError(t, err)
	assert.Equal(t, tzsearch.ResolvedSingleInstant, resolution.Kind())
	assert.Len(t, metrics.CountersForMetric("tzsearch_cache_hits"), 1)
}

func Test_Search_TraceRecordsPipelineStages(t *testing.T) {
	sink := &tzsearch.CollectingTraceSink{}
	r := givenResolver(t)

	_, err := r.Search(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("US"),
		Trace:     sink,
	})
	require.NoError(t, err)

	require.Len(t, sink.StepsForStage(tzsearch.TraceStageSeed), 1)
	assert.Equal(t, 3, sink.StepsForStage(tzsearch.TraceStageSeed)[0].Zones)

	require.Len(t, sink.StepsForStage(tzsearch.TraceStageConstraint), 1)
	assert.Equal(t, 2, sink.StepsForStage(tzsearch.TraceStageConstraint)[0].Zones)

	assert.Len(t, sink.StepsForStage(tzsearch.TraceStageCluster), 1)
	assert.Len(t, sink.StepsForStage(tzsearch.TraceStageClassify), 1)

	// one search, one search identifier
	for _, step := range sink.Steps() {
		assert.Equal(t, sink.Steps()[0].SearchID, step.SearchID)
	}
}

func Test_Search_ObservabilityOnFailure(t *testing.T) {
	logger := helper.NewLoggerSpy()
	metrics := helper.NewMetricsSpy()
	tracing := helper.NewTracingSpy()
	r := givenResolver(t,
		resolver.WithLogger(logger),
		resolver.WithMetrics(metrics),
		resolver.WithTracing(tracing))

	_, err := r.Search(context.Background(), abbrevSet("XYZ"), anchor, resolver.SearchOptions{})
	require.ErrorIs(t, err, tzsearch.ErrNoZoneFound)

	errorCounters := metrics.CountersForMetric("tzsearch_search_errors")
	require.Len(t, errorCounters, 1)
	assert.Equal(t, "no_zone_found", errorCounters[0].Labels["error_type"])

	spans := tracing.SpansForName("tzsearch.search")
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Finished)
	assert.Equal(t, "error", spans[0].Status)

	assert.NotEmpty(t, logger.Records())
}

func Test_New_Validation(t *testing.T) {
	_, err := resolver.New(nil)
	assert.ErrorIs(t, err, tzsearch.ErrNilRulesProvider)

	_, err = resolver.New(fixtures.NewProvider(fixtureWorld()...), resolver.WithCacheCapacity(0))
	assert.ErrorIs(t, err, tzsearch.ErrInvalidCacheCapacity)
}
