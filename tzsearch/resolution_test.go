package tzsearch_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

func Test_Resolution_Unique(t *testing.T) {
	res := tzsearch.UniqueResolution("America/New_York")

	assert.Equal(t, tzsearch.ResolvedUnique, res.Kind())
	assert.Equal(t, "America/New_York", res.Zone())
	assert.Nil(t, res.SingleInstant())
	assert.Equal(t, "unique:America/New_York", res.String())
}

func Test_Resolution_SingleInstant(t *testing.T) {
	anchor := time.Date(2013, 6, 17, 16, 0, 0, 0, time.UTC)
	pair := tzsearch.NewOffsetName(-240, "EDT")
	zone := tzsearch.NewSingleInstantZone(pair, anchor, []string{"America/New_York", "America/Detroit"})

	res := tzsearch.SingleInstantResolution(zone)

	assert.Equal(t, tzsearch.ResolvedSingleInstant, res.Kind())
	assert.Empty(t, res.Zone())
	require.NotNil(t, res.SingleInstant())
	assert.Equal(t, pair, res.SingleInstant().Pair())
}

func Test_SingleInstantZone_OffsetAt_AnchorInstant(t *testing.T) {
	anchor := time.Date(2013, 6, 17, 16, 0, 0, 0, time.UTC)
	pair := tzsearch.NewOffsetName(-240, "EDT")
	zone := tzsearch.NewSingleInstantZone(pair, anchor, []string{"America/New_York"})

	got, err := zone.OffsetAt(anchor)

	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func Test_SingleInstantZone_OffsetAt_AcceptsEqualInstantInOtherLocation(t *testing.T) {
	anchor := time.Date(2013, 6, 17, 16, 0, 0, 0, time.UTC)
	pair := tzsearch.NewOffsetName(-240, "EDT")
	zone := tzsearch.NewSingleInstantZone(pair, anchor, []string{"America/New_York"})

	sameInstant := anchor.In(time.FixedZone("EDT", -240*60))
	got, err := zone.OffsetAt(sameInstant)

	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func Test_SingleInstantZone_OffsetAt_OtherInstantFails(t *testing.T) {
	anchor := time.Date(2013, 6, 17, 16, 0, 0, 0, time.UTC)
	pair := tzsearch.NewOffsetName(-240, "EDT")
	zone := tzsearch.NewSingleInstantZone(pair, anchor, []string{"America/New_York"})

	_, err := zone.OffsetAt(anchor.Add(time.Second))

	require.Error(t, err)
	assert.ErrorIs(t, err, tzsearch.ErrOutsideSingleInstant)

	var sizErr *tzsearch.SingleInstantZoneError
	require.True(t, errors.As(err, &sizErr))
	assert.Equal(t, anchor, sizErr.Valid)
	assert.Equal(t, anchor.Add(time.Second), sizErr.Requested)
	assert.Equal(t, pair, sizErr.Pair)
}

func Test_SingleInstantZone_Location_AlwaysAvailable(t *testing.T) {
	anchor := time.Date(2013, 6, 17, 16, 0, 0, 0, time.UTC)
	pair := tzsearch.NewOffsetName(-240, "EDT")
	zone := tzsearch.NewSingleInstantZone(pair, anchor, []string{"America/New_York"})

	loc := zone.Location()

	require.NotNil(t, loc)
	name, offsetSeconds := anchor.In(loc).Zone()
	assert.Equal(t, "EDT", name)
	assert.Equal(t, -240*60, offsetSeconds)
}

func Test_OffsetName_String(t *testing.T) {
	tests := []struct {
		name     string
		pair     tzsearch.OffsetName
		expected string
	}{
		{name: "negative_offset", pair: tzsearch.NewOffsetName(-300, "EST"), expected: "EST(-05:00)"},
		{name: "positive_offset", pair: tzsearch.NewOffsetName(600, "AEST"), expected: "AEST(+10:00)"},
		{name: "half_hour_offset", pair: tzsearch.NewOffsetName(570, "ACST"), expected: "ACST(+09:30)"},
		{name: "zero_offset", pair: tzsearch.NewOffsetName(0, "UTC"), expected: "UTC(+00:00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pair.String())
		})
	}
}
