// Package tzsearch provides core abstractions and types for resolving
// underspecified timezone descriptions into concrete timezones.
//
// This package defines the fundamental interfaces and value types used by the
// resolver engine and the rules providers, including constraints, resolutions,
// country filters, and common error definitions.
//
// A timezone description is a set of constraints evaluated at an anchor point
// in time, because offsets and abbreviations are time-dependent:
//   - abbreviations ("EST"), which may name several unrelated zones
//   - exact zone identifiers ("America/New_York")
//   - UTC offsets in minutes east
//
// Key types:
//   - ConstraintSet: Ordered AND-list of OR-groups describing a timezone
//   - Resolution: Unique zone or single-instant (offset, abbreviation) answer
//   - SingleInstantZone: A zone value only valid at the anchor it was resolved at
//   - RulesProvider: External source of zone rules, country mapping, and enumeration
//
// Common usage pattern:
//
//	// Describe "EST, and the offset is -05:00" at a given anchor
//	constraints := BuildConstraintSet().
//		Matching().
//		AnyOf(Abbrev("EST")).
//		AndMatching().
//		AnyOf(Offset(-300)).
//		Finalize()
//
//	res, err := r.Search(ctx, constraints, anchor, resolver.SearchOptions{
//		Countries: Countries("US"),
//	})
//	if err != nil {
//		// handle NoZoneFoundError / AmbiguousTimezoneError / UnknownCountryError
//	}
//
//	switch res.Kind() {
//	case ResolvedUnique:
//		// res.Zone() is valid at every instant
//	case ResolvedSingleInstant:
//		// res.SingleInstant() is only valid at the anchor
//	}
package tzsearch
