package tzsearch

import (
	"slices"
	"strings"
)

/***** CountryFilter *****/

// CountryFilter restricts and orders the zone universe a search is seeded from.
// It holds an ordered list of ISO-3166 alpha-2 country codes; the order is the
// preference order used by unsafe searches. The zero value is unrestricted.
//
// A country filter only ever narrows a candidate set, it never adds zones the
// provider would not have enumerated.
type CountryFilter struct {
	codes []CountryCodeString
}

// Countries creates a CountryFilter from an ordered list of country codes.
//
// It sanitizes the input:
//   - uppercasing the codes
//   - removing empty codes
//   - removing duplicate codes, keeping the first occurrence
func Countries(codes ...CountryCodeString) CountryFilter {
	sanitized := make([]CountryCodeString, 0, len(codes))

	for _, code := range codes {
		code = strings.ToUpper(code)
		if code == "" {
			continue
		}

		if !slices.Contains(sanitized, code) {
			sanitized = append(sanitized, code)
		}
	}

	return CountryFilter{codes: slices.Clip(sanitized)}
}

func (cf CountryFilter) Codes() []CountryCodeString {
	return cf.codes
}

// IsUnrestricted reports whether the filter leaves the zone universe untouched.
func (cf CountryFilter) IsUnrestricted() bool {
	return len(cf.codes) == 0
}

// Signature returns a deterministic text form of the filter for cache keys and logging.
func (cf CountryFilter) Signature() string {
	if cf.IsUnrestricted() {
		return "countries:*"
	}

	return "countries:" + strings.Join(cf.codes, ",")
}

// PreferCountries creates a CountryFilter covering the full country universe
// with the given codes moved to the front, in the given order. Codes not
// present in the universe are ignored. The result still spans all countries,
// so it reorders rather than restricts.
func PreferCountries(all []CountryCodeString, preferred ...CountryCodeString) CountryFilter {
	head := Countries(preferred...).codes
	head = slices.DeleteFunc(head, func(code CountryCodeString) bool {
		return !slices.Contains(all, code)
	})

	ordered := make([]CountryCodeString, 0, len(all))
	ordered = append(ordered, head...)

	for _, code := range all {
		if !slices.Contains(head, code) {
			ordered = append(ordered, code)
		}
	}

	return Countries(ordered...)
}

// ExcludeCountries creates a CountryFilter covering the full country universe
// minus the given codes, preserving the universe order.
func ExcludeCountries(all []CountryCodeString, excluded ...CountryCodeString) CountryFilter {
	banned := Countries(excluded...).codes

	ordered := make([]CountryCodeString, 0, len(all))
	for _, code := range all {
		if !slices.Contains(banned, code) {
			ordered = append(ordered, code)
		}
	}

	return Countries(ordered...)
}
