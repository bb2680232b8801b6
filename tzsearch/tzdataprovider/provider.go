// Package tzdataprovider implements tzsearch.RulesProvider on top of the IANA
// timezone database embedded in the Go runtime.
//
// The zone universe and country mapping come from a generated snapshot of the
// IANA zone.tab file (see zones.go); offset rules come from time.LoadLocation
// with the time/tzdata fallback compiled in, so the provider works without an
// OS zoneinfo directory.
//
// The provider is safe for concurrent use and is meant to be shared by many
// Resolvers.
package tzdataprovider

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // embedded IANA database fallback

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

//go:generate go run gen_zones.go /usr/share/zoneinfo/zone.tab

const (
	logMsgLoadedLocation = "loaded location for zone"
	logAttrZone          = "zone"

	// transitionProbe is how far around the wall-clock time offsets are
	// sampled when detecting DST gaps and overlaps. It exceeds one day plus
	// the widest real-world offset, so both sides of any transition touching
	// the wall-clock time are seen.
	transitionProbe = 30 * time.Hour
)

// Provider resolves zone rules from the embedded IANA database.
type Provider struct {
	mu             sync.RWMutex
	locations      map[tzsearch.ZoneIDString]*time.Location
	zones          []tzsearch.ZoneIDString
	countries      []tzsearch.CountryCodeString
	zonesByCountry map[tzsearch.CountryCodeString][]tzsearch.ZoneIDString
	logger         tzsearch.Logger
}

// Option defines a functional option for configuring a Provider.
type Option func(*Provider) error

// WithLogger sets the logger for the Provider. It only receives debug messages
// about location cache fills.
func WithLogger(logger tzsearch.Logger) Option {
	return func(p *Provider) error {
		p.logger = logger
		return nil
	}
}

// New creates a Provider over the generated zone.tab snapshot with optional configuration.
func New(options ...Option) (*Provider, error) {
	p := &Provider{
		locations:      make(map[tzsearch.ZoneIDString]*time.Location),
		zonesByCountry: make(map[tzsearch.CountryCodeString][]tzsearch.ZoneIDString),
	}

	for _, entry := range zoneCountryTable {
		p.zones = append(p.zones, entry.zone)

		if _, known := p.zonesByCountry[entry.country]; !known {
			p.countries = append(p.countries, entry.country)
		}

		p.zonesByCountry[entry.country] = append(p.zonesByCountry[entry.country], entry.zone)
	}

	p.zones = append(p.zones, extraZones...)

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AllZones returns the zone universe in zone.tab order, extras last.
func (p *Provider) AllZones(_ context.Context) ([]tzsearch.ZoneIDString, error) {
	zones := make([]tzsearch.ZoneIDString, len(p.zones))
	copy(zones, p.zones)

	return zones, nil
}

// AllCountries returns the country universe in zone.tab order.
func (p *Provider) AllCountries(_ context.Context) ([]tzsearch.CountryCodeString, error) {
	countries := make([]tzsearch.CountryCodeString, len(p.countries))
	copy(countries, p.countries)

	return countries, nil
}

// ZonesForCountry returns the zones of one country in zone.tab order.
func (p *Provider) ZonesForCountry(_ context.Context, code tzsearch.CountryCodeString) ([]tzsearch.ZoneIDString, error) {
	zones, known := p.zonesByCountry[strings.ToUpper(code)]
	if !known {
		return nil, &tzsearch.UnknownCountryError{Code: code}
	}

	result := make([]tzsearch.ZoneIDString, len(zones))
	copy(result, zones)

	return result, nil
}

// OffsetAt returns the (offset, abbreviation) pair in force in the zone at the
// given local wall-clock time, resolving DST gaps and overlaps by the hint.
func (p *Provider) OffsetAt(
	_ context.Context,
	zone tzsearch.ZoneIDString,
	local time.Time,
	hint tzsearch.DSTHint,
) (tzsearch.OffsetName, error) {

	var empty tzsearch.OffsetName

	loc, err := p.location(zone)
	if err != nil {
		return empty, &tzsearch.UnknownZoneError{Zone: zone, Cause: err}
	}

	wall := time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)

	candidates := validInterpretations(wall, loc)

	switch len(candidates) {
	case 1:
		return candidates[0].pair, nil

	case 2:
		daylight, standard := splitOverlap(candidates)

		switch hint {
		case tzsearch.DSTOn:
			return daylight.pair, nil
		case tzsearch.DSTOff:
			return standard.pair, nil
		default:
			return empty, &tzsearch.AmbiguousLocalTimeError{
				Zone:     zone,
				Local:    wall,
				Daylight: daylight.pair,
				Standard: standard.pair,
			}
		}

	default: // the wall-clock time was skipped by a gap
		before, after := gapSides(wall, loc)

		switch hint {
		case tzsearch.DSTOn:
			return daylightOf(before, after).pair, nil
		case tzsearch.DSTOff:
			return standardOf(before, after).pair, nil
		default:
			return empty, &tzsearch.NonexistentLocalTimeError{
				Zone:   zone,
				Local:  wall,
				Before: before.pair,
				After:  after.pair,
			}
		}
	}
}

// location loads and caches the time.Location of a zone.
func (p *Provider) location(zone tzsearch.ZoneIDString) (*time.Location, error) {
	p.mu.RLock()
	loc, cached := p.locations[zone]
	p.mu.RUnlock()

	if cached {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.locations[zone] = loc
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Debug(logMsgLoadedLocation, logAttrZone, zone)
	}

	return loc, nil
}

/***** wall-clock interpretation *****/

// interpretation is one way of reading a wall-clock time in a zone: the UTC
// instant it maps to and the pair in force there.
type interpretation struct {
	instant time.Time
	pair    tzsearch.OffsetName
	isDST   bool
}

// validInterpretations finds every UTC instant that displays as the given
// wall-clock time in the location: one for normal times, two across an
// overlap, none inside a gap.
//
// The wall-clock time read as UTC, shifted back by each offset in force
// around it, is a candidate instant; a candidate is valid when its offset
// round-trips.
func validInterpretations(wall time.Time, loc *time.Location) []interpretation {
	probes := []time.Time{wall.Add(-transitionProbe), wall, wall.Add(transitionProbe)}

	offsets := make([]int, 0, len(probes))
	for _, probe := range probes {
		_, offsetSeconds := probe.In(loc).Zone()
		if !slices.Contains(offsets, offsetSeconds) {
			offsets = append(offsets, offsetSeconds)
		}
	}

	candidates := make([]interpretation, 0, 2)
	for _, offsetSeconds := range offsets {
		instant := wall.Add(-time.Duration(offsetSeconds) * time.Second)
		localized := instant.In(loc)

		name, roundTripped := localized.Zone()
		if roundTripped != offsetSeconds {
			continue
		}

		candidates = append(candidates, interpretation{
			instant: instant,
			pair:    tzsearch.NewOffsetName(offsetSeconds/60, name),
			isDST:   localized.IsDST(),
		})
	}

	return candidates
}

// splitOverlap separates the two overlap interpretations into the daylight one
// (the earlier instant, the larger offset) and the standard one.
func splitOverlap(candidates []interpretation) (daylight, standard interpretation) {
	first, second := candidates[0], candidates[1]

	if first.isDST != second.isDST {
		if first.isDST {
			return first, second
		}

		return second, first
	}

	// both sides claim the same DST flag (offset realignments); the larger
	// offset is the earlier instant and plays the daylight role
	if first.pair.OffsetMinutes() > second.pair.OffsetMinutes() {
		return first, second
	}

	return second, first
}

// gapSides samples the pairs in force just before and just after the gap the
// wall-clock time fell into.
func gapSides(wall time.Time, loc *time.Location) (before, after interpretation) {
	before = interpretationAt(wall.Add(-transitionProbe), loc)
	after = interpretationAt(wall.Add(transitionProbe), loc)

	return before, after
}

func interpretationAt(instant time.Time, loc *time.Location) interpretation {
	localized := instant.In(loc)
	name, offsetSeconds := localized.Zone()

	return interpretation{
		instant: instant,
		pair:    tzsearch.NewOffsetName(offsetSeconds/60, name),
		isDST:   localized.IsDST(),
	}
}

func daylightOf(before, after interpretation) interpretation {
	if before.isDST == after.isDST {
		if before.pair.OffsetMinutes() > after.pair.OffsetMinutes() {
			return before
		}

		return after
	}

	if before.isDST {
		return before
	}

	return after
}

func standardOf(before, after interpretation) interpretation {
	daylight := daylightOf(before, after)
	if daylight.instant.Equal(before.instant) {
		return after
	}

	return before
}

// Ensure Provider implements tzsearch.RulesProvider.
var _ tzsearch.RulesProvider = (*Provider)(nil)
