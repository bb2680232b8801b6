package tzsearch

import (
	"fmt"
	"time"
)

type ZoneIDString = string
type CountryCodeString = string
type AbbrevString = string

/***** OffsetName *****/

// OffsetName is the observable face of a timezone at one instant:
// the UTC offset in minutes east and the abbreviation in force.
// Two zones with equal OffsetName values are indistinguishable at that instant.
type OffsetName struct {
	offsetMinutes int
	abbrev        AbbrevString
}

// NewOffsetName creates an OffsetName from an offset in minutes east of UTC and an abbreviation.
func NewOffsetName(offsetMinutes int, abbrev AbbrevString) OffsetName {
	return OffsetName{offsetMinutes: offsetMinutes, abbrev: abbrev}
}

func (on OffsetName) OffsetMinutes() int {
	return on.offsetMinutes
}

func (on OffsetName) Abbrev() AbbrevString {
	return on.abbrev
}

// Location returns a fixed-offset time.Location carrying the abbreviation.
// It encodes only this single (offset, abbreviation) pair, no transition rules.
func (on OffsetName) Location() *time.Location {
	return time.FixedZone(on.abbrev, on.offsetMinutes*60)
}

// String renders the pair as e.g. "EST(-05:00)" or "AEST(+10:00)".
func (on OffsetName) String() string {
	sign := "+"
	minutes := on.offsetMinutes

	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}

	return fmt.Sprintf("%s(%s%02d:%02d)", on.abbrev, sign, minutes/60, minutes%60)
}

/***** DSTHint *****/

// DSTHint steers the interpretation of local wall-clock times that fall into
// a DST gap or overlap. The zero value DSTOff (standard time) is the
// package-wide default, so callers who never think about DST get a
// predictable, non-failing interpretation.
type DSTHint int

const (
	// DSTOff selects the standard-time interpretation.
	DSTOff DSTHint = iota

	// DSTOn selects the daylight-saving interpretation.
	DSTOn

	// DSTUnset makes gap and overlap local times hard errors
	// (NonexistentLocalTimeError / AmbiguousLocalTimeError).
	DSTUnset
)

// String provides a string representation of DSTHint for logging and cache keys.
func (h DSTHint) String() string {
	switch h {
	case DSTOff:
		return "off"
	case DSTOn:
		return "on"
	case DSTUnset:
		return "unset"
	default:
		return "unknown"
	}
}
