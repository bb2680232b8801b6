package tzsearch

import (
	"fmt"
	"strings"
	"time"
)

/***** Resolution *****/

// ResolutionKind discriminates the successful outcomes of a timezone search.
type ResolutionKind int

const (
	// ResolvedUnique means exactly one zone satisfied all constraints; the
	// resolution is a full zone identifier, valid at every instant.
	ResolvedUnique ResolutionKind = iota

	// ResolvedSingleInstant means several zones satisfied the constraints but
	// all agreed on one (offset, abbreviation) pair at the anchor; the
	// resolution is only valid at that single instant.
	ResolvedSingleInstant
)

// String provides a string representation of ResolutionKind for logging and debugging.
func (k ResolutionKind) String() string {
	switch k {
	case ResolvedUnique:
		return "unique"
	case ResolvedSingleInstant:
		return "single_instant"
	default:
		return "unknown"
	}
}

// Resolution is the successful outcome of a timezone search. The kind must be
// inspected before use: a single-instant resolution carries a zone whose
// queries are only valid at the search anchor.
type Resolution struct {
	kind          ResolutionKind
	zone          ZoneIDString
	singleInstant *SingleInstantZone
}

// UniqueResolution creates a Resolution for exactly one surviving zone.
func UniqueResolution(zone ZoneIDString) Resolution {
	return Resolution{kind: ResolvedUnique, zone: zone}
}

// SingleInstantResolution creates a Resolution for a single offset cluster with several members.
func SingleInstantResolution(zone *SingleInstantZone) Resolution {
	return Resolution{kind: ResolvedSingleInstant, singleInstant: zone}
}

func (r Resolution) Kind() ResolutionKind {
	return r.kind
}

// Zone returns the resolved zone identifier for ResolvedUnique resolutions, "" otherwise.
func (r Resolution) Zone() ZoneIDString {
	return r.zone
}

// SingleInstant returns the bounded-validity zone for ResolvedSingleInstant resolutions, nil otherwise.
func (r Resolution) SingleInstant() *SingleInstantZone {
	return r.singleInstant
}

// String renders the resolution for logging and debugging.
func (r Resolution) String() string {
	if r.kind == ResolvedUnique {
		return "unique:" + r.zone
	}

	if r.singleInstant != nil {
		return "single_instant:" + r.singleInstant.String()
	}

	return "single_instant:<nil>"
}

/***** SingleInstantZone *****/

// SingleInstantZone is a timezone value that is only known to be correct at a
// single instant: the anchor of the search that produced it. It remembers the
// (offset, abbreviation) pair its member zones agreed on and the zones themselves.
//
// OffsetAt refuses to answer for any other instant, so a stale resolution can
// never silently produce a wrong offset.
type SingleInstantZone struct {
	pair   OffsetName
	anchor time.Time
	zones  []ZoneIDString
}

// NewSingleInstantZone creates a SingleInstantZone for the given pair, the UTC
// instant it was observed at, and the zones that agreed on it.
func NewSingleInstantZone(pair OffsetName, anchor time.Time, zones []ZoneIDString) *SingleInstantZone {
	return &SingleInstantZone{pair: pair, anchor: anchor.UTC(), zones: zones}
}

func (z *SingleInstantZone) Pair() OffsetName {
	return z.pair
}

// Anchor returns the single UTC instant this zone is valid at.
func (z *SingleInstantZone) Anchor() time.Time {
	return z.anchor
}

// Zones returns the member zones that agreed on the pair at the anchor.
func (z *SingleInstantZone) Zones() []ZoneIDString {
	return z.zones
}

// OffsetAt returns the pair when instant equals the anchor and a
// SingleInstantZoneError for every other instant.
func (z *SingleInstantZone) OffsetAt(instant time.Time) (OffsetName, error) {
	if !instant.Equal(z.anchor) {
		return OffsetName{}, &SingleInstantZoneError{
			Requested: instant.UTC(),
			Valid:     z.anchor,
			Pair:      z.pair,
		}
	}

	return z.pair, nil
}

// Location returns a fixed-offset time.Location for the pair. Unlike OffsetAt
// it is always available: the fixed location is exactly what the pair encodes,
// with no claim about other instants.
func (z *SingleInstantZone) Location() *time.Location {
	return z.pair.Location()
}

// String renders the zone as e.g. "EST(-05:00)@2013-06-17T16:00:00Z[America/New_York America/Detroit]".
func (z *SingleInstantZone) String() string {
	return fmt.Sprintf("%s@%s[%s]",
		z.pair.String(),
		z.anchor.Format(time.RFC3339),
		strings.Join(z.zones, " "),
	)
}
