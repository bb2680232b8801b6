// Package fixtures provides a deterministic in-memory rules provider for
// testing search logic without depending on the installed IANA database,
// whose abbreviations and rules drift between releases.
package fixtures

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// Zone scripts one zone of the fixture world: its identifier, the countries it
// belongs to, the pair it reports at every anchor, and an optional error that
// OffsetAt returns instead.
type Zone struct {
	ID        tzsearch.ZoneIDString
	Countries []tzsearch.CountryCodeString
	Pair      tzsearch.OffsetName
	Err       error
}

// Provider is a scripted tzsearch.RulesProvider. Zones are enumerated in the
// order they were given, countries in first-seen order.
type Provider struct {
	zones []Zone
}

// NewProvider creates a fixture provider over the given scripted zones.
func NewProvider(zones ...Zone) *Provider {
	return &Provider{zones: zones}
}

// AllZones returns the scripted zones in declaration order.
func (p *Provider) AllZones(_ context.Context) ([]tzsearch.ZoneIDString, error) {
	ids := make([]tzsearch.ZoneIDString, 0, len(p.zones))
	for _, zone := range p.zones {
		ids = append(ids, zone.ID)
	}

	return ids, nil
}

// AllCountries returns the scripted countries in first-seen order.
func (p *Provider) AllCountries(_ context.Context) ([]tzsearch.CountryCodeString, error) {
	countries := make([]tzsearch.CountryCodeString, 0)
	for _, zone := range p.zones {
		for _, country := range zone.Countries {
			if !slices.Contains(countries, country) {
				countries = append(countries, country)
			}
		}
	}

	return countries, nil
}

// ZonesForCountry returns the scripted zones of one country in declaration order.
func (p *Provider) ZonesForCountry(
	ctx context.Context,
	code tzsearch.CountryCodeString,
) ([]tzsearch.ZoneIDString, error) {

	code = strings.ToUpper(code)

	countries, _ := p.AllCountries(ctx)
	if !slices.Contains(countries, code) {
		return nil, &tzsearch.UnknownCountryError{Code: code}
	}

	ids := make([]tzsearch.ZoneIDString, 0)
	for _, zone := range p.zones {
		if slices.Contains(zone.Countries, code) {
			ids = append(ids, zone.ID)
		}
	}

	return ids, nil
}

// OffsetAt returns the scripted pair (or error) of the zone, for every anchor and hint.
func (p *Provider) OffsetAt(
	_ context.Context,
	zone tzsearch.ZoneIDString,
	_ time.Time,
	_ tzsearch.DSTHint,
) (tzsearch.OffsetName, error) {

	for _, scripted := range p.zones {
		if scripted.ID != zone {
			continue
		}

		if scripted.Err != nil {
			return tzsearch.OffsetName{}, scripted.Err
		}

		return scripted.Pair, nil
	}

	return tzsearch.OffsetName{}, &tzsearch.UnknownZoneError{Zone: zone}
}

// Ensure Provider implements tzsearch.RulesProvider.
var _ tzsearch.RulesProvider = (*Provider)(nil)
