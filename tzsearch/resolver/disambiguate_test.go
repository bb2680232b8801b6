package resolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzsearch/timezone-search-go/tzsearch"
	"github.com/tzsearch/timezone-search-go/tzsearch/resolver"
)

func Test_Localize_MapsWallClockOntoUTCInstant(t *testing.T) {
	r := givenResolver(t)

	instant, err := r.Localize(context.Background(), "America/New_York", anchor, tzsearch.DSTOff)

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_Localize_IgnoresLocationOfLocalTime(t *testing.T) {
	r := givenResolver(t)

	located := time.Date(2013, time.June, 17, 12, 0, 0, 0, time.FixedZone("X", 9*3600))

	instant, err := r.Localize(context.Background(), "America/New_York", located, tzsearch.DSTOff)

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_Localize_UnknownZone(t *testing.T) {
	r := givenResolver(t)

	_, err := r.Localize(context.Background(), "Mars/Olympus", anchor, tzsearch.DSTOff)

	assert.ErrorIs(t, err, tzsearch.ErrUnknownZone)
}

func Test_ResolveAndLocalize_UniqueZone(t *testing.T) {
	r := givenResolver(t)

	instant, err := r.ResolveAndLocalize(context.Background(), abbrevSet("GMT"), anchor, resolver.SearchOptions{})

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 12, 0, 0, 0, time.UTC)))
}

func Test_ResolveAndLocalize_SingleInstantNeedsNoSecondLookup(t *testing.T) {
	r := givenResolver(t)

	instant, err := r.ResolveAndLocalize(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{
		Countries: tzsearch.Countries("US"),
	})

	require.NoError(t, err)
	assert.True(t, instant.Equal(time.Date(2013, time.June, 17, 17, 0, 0, 0, time.UTC)))
}

func Test_ResolveAndLocalize_PropagatesSearchFailure(t *testing.T) {
	r := givenResolver(t)

	_, err := r.ResolveAndLocalize(context.Background(), abbrevSet("EST"), anchor, resolver.SearchOptions{})

	assert.ErrorIs(t, err, tzsearch.ErrAmbiguousTimezone)
}
