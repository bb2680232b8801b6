package tzsearch

import (
	"context"
	"time"
)

// RulesProvider is the external source of timezone rules a Resolver consumes.
// It owns the zone universe, the country mapping, and the offset rules;
// the search logic never reads tzdata itself.
//
// Implementations must be safe for concurrent use: a single provider is
// typically shared by many Resolvers.
type RulesProvider interface {
	// OffsetAt returns the (offset, abbreviation) pair in force in the zone at
	// the given local wall-clock time. The Location of local is ignored, only
	// its wall-clock fields count.
	//
	// Local times falling into a DST gap or overlap are resolved by the hint;
	// with DSTUnset they fail with NonexistentLocalTimeError or
	// AmbiguousLocalTimeError. Unknown zones fail with UnknownZoneError.
	OffsetAt(ctx context.Context, zone ZoneIDString, local time.Time, hint DSTHint) (OffsetName, error)

	// ZonesForCountry returns the zones of one ISO-3166 alpha-2 country code
	// in the provider's stable enumeration order.
	// Unknown codes fail with UnknownCountryError.
	ZonesForCountry(ctx context.Context, code CountryCodeString) ([]ZoneIDString, error)

	// AllZones returns the complete zone universe in a stable enumeration order.
	AllZones(ctx context.Context) ([]ZoneIDString, error)

	// AllCountries returns the complete country universe in a stable
	// enumeration order, for use with PreferCountries and ExcludeCountries.
	AllCountries(ctx context.Context) ([]CountryCodeString, error)
}
