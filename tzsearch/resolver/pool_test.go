package resolver_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzsearch/timezone-search-go/testutil/fixtures"
	"github.com/tzsearch/timezone-search-go/tzsearch"
	"github.com/tzsearch/timezone-search-go/tzsearch/resolver"
)

var errUnparsable = errors.New("unparsable date text")

// scriptedParser maps raw input strings to canned parse results.
type scriptedParser struct {
	results map[string]tzsearch.ParsedDate
}

func (p *scriptedParser) Parse(raw string, _ ...string) (tzsearch.ParsedDate, error) {
	parsed, ok := p.results[raw]
	if !ok {
		return tzsearch.ParsedDate{}, errUnparsable
	}

	return parsed, nil
}

var _ tzsearch.DateParser = (*scriptedParser)(nil)

func givenParser() *scriptedParser {
	wall := time.Date(2013, time.June, 17, 12, 0, 0, 0, time.UTC)

	return &scriptedParser{results: map[string]tzsearch.ParsedDate{
		"2013-06-17 12:00": {
			WallClock: wall,
		},
		"2013-06-17 12:00 EST": {
			WallClock: wall,
			Literals:  []tzsearch.ConstraintLiteral{tzsearch.Abbrev("EST")},
		},
		"2013-06-17 12:00 GMT": {
			WallClock: wall,
			Literals:  []tzsearch.ConstraintLiteral{tzsearch.Abbrev("GMT")},
		},
	}}
}

func givenPool(t *testing.T, options ...resolver.PoolOption) *resolver.Pool {
	t.Helper()

	p, err := resolver.NewPool(fixtures.NewProvider(fixtureWorld()...), givenParser(), nil, options...)
	require.NoError(t, err)

	return p
}

func Test_NewPool_Validation(t *testing.T) {
	_, err := resolver.NewPool(nil, givenParser(), nil)
	assert.ErrorIs(t, err, tzsearch.ErrNilRulesProvider)

	_, err = resolver.NewPool(fixtures.NewProvider(fixtureWorld()...), nil, nil)
	assert.ErrorIs(t, err, tzsearch.ErrNilDateParser)
}

func Test_NewPool_SurfacesResolverConfigurationErrors(t *testing.T) {
	_, err := resolver.NewPool(
		fixtures.NewProvider(fixtureWorld()...),
		givenParser(),
		[]resolver.Option{resolver.WithCacheCapacity(-1)})

	assert.ErrorIs(t, err, tzsearch.ErrInvalidCacheCapacity)
}

func Test_NormalizeToUTC_TextWithoutLiteralsIsUTCWallClock(t *testing.T) {
	p := givenPool(t)

	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00")

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 12, 0, 0, 0, time.UTC)))
}

func Test_NormalizeToUTC_ResolvesWithPreferredCountries(t *testing.T) {
	p := givenPool(t, resolver.WithPreferredCountries(tzsearch.Countries("US")))

	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 EST")

	require.NoError(t, err)
	// EST restricted to the US is UTC-05:00
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_NormalizeToUTC_FallsBackUnsafeWhenPreferredFindsNothing(t *testing.T) {
	p := givenPool(t,
		resolver.WithPreferredCountries(tzsearch.Countries("GB")),
		resolver.WithFallbackCountries(tzsearch.Countries("AU", "US")))

	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 EST")

	require.NoError(t, err)
	// GB has no EST; the unsafe retry picks the first Australian cluster, UTC+10:00
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 2, 0, 0, 0, time.UTC)))
}

func Test_NormalizeToUTC_FallsBackUnsafeWhenPreferredStaysAmbiguous(t *testing.T) {
	p := givenPool(t, resolver.WithFallbackCountries(tzsearch.Countries("US")))

	// unrestricted EST is ambiguous; the fallback collapses it to UTC-05:00
	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 EST")

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_NormalizeToUTC_UniqueLiteralNeedsNoFallback(t *testing.T) {
	p := givenPool(t)

	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 GMT")

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 12, 0, 0, 0, time.UTC)))
}

func Test_NormalizeToUTC_ConcurrentCallers(t *testing.T) {
	p := givenPool(t, resolver.WithPreferredCountries(tzsearch.Countries("US")))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 EST")

			assert.NoError(t, err)
			assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
		}()
	}
	wg.Wait()
}

func Test_NormalizeToUTC_ParserErrorsPropagate(t *testing.T) {
	p := givenPool(t)

	_, err := p.NormalizeToUTC(context.Background(), "not a date")

	assert.ErrorIs(t, err, errUnparsable)
}

func Test_NormalizeToUTC_HintAppliesToLocalization(t *testing.T) {
	p := givenPool(t,
		resolver.WithPreferredCountries(tzsearch.Countries("US")),
		resolver.WithPoolDSTHint(tzsearch.DSTOn))

	// the fixture provider ignores the hint; this pins down that a hinted
	// pool still resolves and localizes through the same path
	instant, err := p.NormalizeToUTC(context.Background(), "2013-06-17 12:00 EST")

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}
