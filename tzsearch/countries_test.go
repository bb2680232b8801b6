package tzsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

func Test_Countries_SanitizesInput(t *testing.T) {
	filter := tzsearch.Countries("us", "", "AU", "US")

	assert.Equal(t, []string{"US", "AU"}, filter.Codes())
	assert.False(t, filter.IsUnrestricted())
}

func Test_Countries_ZeroValueIsUnrestricted(t *testing.T) {
	var filter tzsearch.CountryFilter

	assert.True(t, filter.IsUnrestricted())
	assert.Equal(t, "countries:*", filter.Signature())
}

func Test_CountryFilter_Signature(t *testing.T) {
	filter := tzsearch.Countries("AU", "US")

	assert.Equal(t, "countries:AU,US", filter.Signature())
}

func Test_CountryFilter_Signature_DependsOnOrder(t *testing.T) {
	first := tzsearch.Countries("US", "AU")
	second := tzsearch.Countries("AU", "US")

	assert.NotEqual(t, first.Signature(), second.Signature())
}

func Test_PreferCountries_MovesPreferredToFront(t *testing.T) {
	all := []string{"AU", "GB", "JM", "US"}

	filter := tzsearch.PreferCountries(all, "US")

	assert.Equal(t, []string{"US", "AU", "GB", "JM"}, filter.Codes())
}

func Test_PreferCountries_IgnoresCodesOutsideUniverse(t *testing.T) {
	all := []string{"AU", "US"}

	filter := tzsearch.PreferCountries(all, "XX", "US")

	assert.Equal(t, []string{"US", "AU"}, filter.Codes())
}

func Test_ExcludeCountries_RemovesCodes(t *testing.T) {
	all := []string{"AU", "GB", "JM", "US"}

	filter := tzsearch.ExcludeCountries(all, "US", "JM")

	assert.Equal(t, []string{"AU", "GB"}, filter.Codes())
}

func Test_ExcludeCountries_NothingExcludedKeepsUniverseOrder(t *testing.T) {
	all := []string{"AU", "GB", "US"}

	filter := tzsearch.ExcludeCountries(all)

	assert.Equal(t, all, filter.Codes())
}
