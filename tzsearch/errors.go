package tzsearch

import (
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrNilRulesProvider is returned when a Resolver is constructed without a rules provider.
	ErrNilRulesProvider = errors.New("nil rules provider supplied")

	// ErrNilDateParser is returned when a Pool is constructed without a date parser.
	ErrNilDateParser = errors.New("nil date parser supplied")

	// ErrInvalidCacheCapacity is returned when a non-positive cache capacity is configured.
	ErrInvalidCacheCapacity = errors.New("cache capacity must be positive")

	// ErrUnknownZone is returned when a zone identifier is not known to the rules provider.
	ErrUnknownZone = errors.New("unknown timezone identifier")

	// ErrUnknownCountry is returned when a country code is not known to the rules provider.
	ErrUnknownCountry = errors.New("unknown country code")

	// ErrNoZoneFound is returned when no zone satisfies the given constraints at the anchor.
	ErrNoZoneFound = errors.New("no timezone satisfies the given constraints")

	// ErrAmbiguousTimezone is returned when the surviving zones split into
	// multiple distinct (offset, abbreviation) clusters at the anchor.
	ErrAmbiguousTimezone = errors.New("constraints match multiple distinct offset clusters")

	// ErrOutsideSingleInstant is returned when a SingleInstantZone is queried
	// at any instant other than its anchor.
	ErrOutsideSingleInstant = errors.New("single-instant zone queried outside its anchor instant")

	// ErrNonexistentLocalTime is returned for local wall-clock times skipped by
	// a DST gap when no DST hint is given.
	ErrNonexistentLocalTime = errors.New("local time does not exist in this zone")

	// ErrAmbiguousLocalTime is returned for local wall-clock times repeated by
	// a DST overlap when no DST hint is given.
	ErrAmbiguousLocalTime = errors.New("local time occurs twice in this zone")

	// ErrListingZonesFailed is returned when the rules provider cannot enumerate its zone universe.
	ErrListingZonesFailed = errors.New("listing zones failed")

	// ErrListingCountriesFailed is returned when the rules provider cannot enumerate its country universe.
	ErrListingCountriesFailed = errors.New("listing countries failed")

	// ErrReadingZoneRulesFailed is returned when the rules provider cannot read offset rules for a zone.
	ErrReadingZoneRulesFailed = errors.New("reading zone rules failed")

	// ErrNilDatabaseConnection is returned when a database-backed provider is constructed without a connection.
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")

	// ErrEmptyTableName is returned when a database-backed provider is configured with an empty table name.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrBuildingQueryFailed is returned when a rules query cannot be rendered to SQL.
	ErrBuildingQueryFailed = errors.New("building rules query failed")

	// ErrScanningRowFailed is returned when a rules query result row cannot be scanned.
	ErrScanningRowFailed = errors.New("scanning rules row failed")
)

/***** SearchInputs *****/

// SearchInputs captures the complete input set of one search so that every
// failure can report exactly what was asked.
type SearchInputs struct {
	Constraints ConstraintSet
	Anchor      time.Time
	Countries   CountryFilter
	Hint        DSTHint
	Unsafe      bool
}

// String renders the inputs in one line for error messages.
func (si SearchInputs) String() string {
	return fmt.Sprintf("constraints=[%s] anchor=%s %s dst_hint=%s unsafe=%t",
		si.Constraints.Serialize(),
		si.Anchor.Format("2006-01-02T15:04:05"),
		si.Countries.Signature(),
		si.Hint.String(),
		si.Unsafe,
	)
}

// JSON renders the inputs as a JSON object for structured logs and trace payloads.
func (si SearchInputs) JSON() []byte {
	data, err := jsoniter.ConfigFastest.Marshal(map[string]any{
		"constraints": si.Constraints.Serialize(),
		"anchor":      si.Anchor.Format("2006-01-02T15:04:05"),
		"countries":   si.Countries.Signature(),
		"dst_hint":    si.Hint.String(),
		"unsafe":      si.Unsafe,
	})
	if err != nil {
		return []byte("{}")
	}

	return data
}

/***** error types *****/

// UnknownCountryError reports a country code the rules provider does not know.
// Inputs is filled in by the Resolver when the code was part of a search.
type UnknownCountryError struct {
	Code   CountryCodeString
	Inputs SearchInputs
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrUnknownCountry.Error(), e.Code, e.Inputs.String())
}

func (e *UnknownCountryError) Unwrap() error {
	return ErrUnknownCountry
}

// UnknownZoneError reports a zone identifier the rules provider does not know.
type UnknownZoneError struct {
	Zone  ZoneIDString
	Cause error
}

func (e *UnknownZoneError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q: %s", ErrUnknownZone.Error(), e.Zone, e.Cause.Error())
	}

	return fmt.Sprintf("%s: %q", ErrUnknownZone.Error(), e.Zone)
}

func (e *UnknownZoneError) Unwrap() error {
	return ErrUnknownZone
}

// NoZoneFoundError reports that the candidate set became empty, carrying the
// complete input set of the failed search.
type NoZoneFoundError struct {
	Inputs SearchInputs
}

func (e *NoZoneFoundError) Error() string {
	return fmt.Sprintf("%s (%s)", ErrNoZoneFound.Error(), e.Inputs.String())
}

func (e *NoZoneFoundError) Unwrap() error {
	return ErrNoZoneFound
}

// AmbiguousTimezoneError reports that the surviving zones split into multiple
// distinct (offset, abbreviation) clusters at the anchor. Pairs holds the
// distinct pairs in first-seen candidate order, Zones the surviving zones.
type AmbiguousTimezoneError struct {
	Pairs  []OffsetName
	Zones  []ZoneIDString
	Inputs SearchInputs
}

func (e *AmbiguousTimezoneError) Error() string {
	pairs := make([]string, 0, len(e.Pairs))
	for _, pair := range e.Pairs {
		pairs = append(pairs, pair.String())
	}

	return fmt.Sprintf("%s: %v (%s)", ErrAmbiguousTimezone.Error(), pairs, e.Inputs.String())
}

func (e *AmbiguousTimezoneError) Unwrap() error {
	return ErrAmbiguousTimezone
}

// SingleInstantZoneError reports a SingleInstantZone query outside its anchor.
type SingleInstantZoneError struct {
	Requested time.Time
	Valid     time.Time
	Pair      OffsetName
}

func (e *SingleInstantZoneError) Error() string {
	return fmt.Sprintf("%s: requested %s, only valid at %s (%s)",
		ErrOutsideSingleInstant.Error(),
		e.Requested.Format(time.RFC3339),
		e.Valid.Format(time.RFC3339),
		e.Pair.String(),
	)
}

func (e *SingleInstantZoneError) Unwrap() error {
	return ErrOutsideSingleInstant
}

// NonexistentLocalTimeError reports a local wall-clock time skipped by a DST gap.
// Before and After are the pairs in force on either side of the transition.
type NonexistentLocalTimeError struct {
	Zone   ZoneIDString
	Local  time.Time
	Before OffsetName
	After  OffsetName
}

func (e *NonexistentLocalTimeError) Error() string {
	return fmt.Sprintf("%s: %s in %s (between %s and %s)",
		ErrNonexistentLocalTime.Error(),
		e.Local.Format("2006-01-02T15:04:05"),
		e.Zone,
		e.Before.String(),
		e.After.String(),
	)
}

func (e *NonexistentLocalTimeError) Unwrap() error {
	return ErrNonexistentLocalTime
}

// AmbiguousLocalTimeError reports a local wall-clock time repeated by a DST
// overlap. Daylight is the pair of the earlier (daylight) interpretation,
// Standard the pair of the later (standard) one.
type AmbiguousLocalTimeError struct {
	Zone     ZoneIDString
	Local    time.Time
	Daylight OffsetName
	Standard OffsetName
}

func (e *AmbiguousLocalTimeError) Error() string {
	return fmt.Sprintf("%s: %s in %s (%s or %s)",
		ErrAmbiguousLocalTime.Error(),
		e.Local.Format("2006-01-02T15:04:05"),
		e.Zone,
		e.Daylight.String(),
		e.Standard.String(),
	)
}

func (e *AmbiguousLocalTimeError) Unwrap() error {
	return ErrAmbiguousLocalTime
}
