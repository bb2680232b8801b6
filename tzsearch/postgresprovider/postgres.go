package postgresprovider

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/tzsearch/timezone-search-go/tzsearch"
	"github.com/tzsearch/timezone-search-go/tzsearch/postgresprovider/internal/adapters"
)

const (
	defaultTransitionsTableName = "zone_transitions"
	defaultCountriesTableName   = "zone_countries"

	logMsgBuildQueryFailed  = "failed to build rules query"
	logMsgDBQueryFailed     = "database query execution failed"
	logMsgCloseRowsFailed   = "failed to close database rows"
	logMsgScanRowFailed     = "failed to scan database row"
	logMsgSQLExecuted       = "executed sql for: "
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrZone             = "zone"
	logAttrDurationMS       = "duration_ms"
	logActionOffsetAt       = "offset_at"
	logActionZonesByCountry = "zones_for_country"
	logActionAllZones       = "all_zones"
	logActionAllCountries   = "all_countries"

	colZone          = "zone"
	colTransitionAt  = "transition_at"
	colOffsetMinutes = "offset_minutes"
	colAbbrev        = "abbrev"
	colIsDST         = "is_dst"
	colCountryCode   = "country_code"

	dialectPostgres = "postgres"

	// transitionProbe is how far around the wall-clock time the transition
	// window is fetched when detecting DST gaps and overlaps. It exceeds one
	// day plus the widest real-world offset, so both sides of any transition
	// touching the wall-clock time are in the window.
	transitionProbe = 30 * time.Hour
)

type sqlQueryString = string

// Provider implements tzsearch.RulesProvider on top of externally maintained
// rules tables: zone_transitions holds the (offset, abbreviation, DST flag)
// regime that starts at each transition instant, zone_countries maps zones to
// ISO country codes.
//
// The Provider is stateless apart from its connection and is safe for
// concurrent use; share one between many Resolvers.
type Provider struct {
	db                   adapters.DBAdapter
	transitionsTableName string
	countriesTableName   string
	logger               tzsearch.Logger
	contextualLogger     tzsearch.ContextualLogger
	metricsCollector     tzsearch.MetricsCollector
	tracingCollector     tzsearch.TracingCollector
}

// NewFromPGXPool creates a Provider using a pgx pool with optional configuration.
func NewFromPGXPool(db *pgxpool.Pool, options ...Option) (Provider, error) {
	if db == nil {
		return Provider{}, tzsearch.ErrNilDatabaseConnection
	}

	return newProvider(adapters.NewPGXAdapter(db), options...)
}

// NewFromPGXPoolWithReplica creates a Provider that reads from the replica pool.
func NewFromPGXPoolWithReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (Provider, error) {
	if db == nil || replica == nil {
		return Provider{}, tzsearch.ErrNilDatabaseConnection
	}

	return newProvider(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewFromSQLDB creates a Provider using a sql.DB with optional configuration.
func NewFromSQLDB(db *sql.DB, options ...Option) (Provider, error) {
	if db == nil {
		return Provider{}, tzsearch.ErrNilDatabaseConnection
	}

	return newProvider(adapters.NewSQLAdapter(db), options...)
}

// NewFromSQLX creates a Provider using a sqlx.DB with optional configuration.
func NewFromSQLX(db *sqlx.DB, options ...Option) (Provider, error) {
	if db == nil {
		return Provider{}, tzsearch.ErrNilDatabaseConnection
	}

	return newProvider(adapters.NewSQLXAdapter(db), options...)
}

func newProvider(db adapters.DBAdapter, options ...Option) (Provider, error) {
	p := Provider{
		db:                   db,
		transitionsTableName: defaultTransitionsTableName,
		countriesTableName:   defaultCountriesTableName,
	}

	for _, option := range options {
		if err := option(&p); err != nil {
			return Provider{}, err
		}
	}

	return p, nil
}

// OffsetAt returns the (offset, abbreviation) pair in force in the zone at the
// given local wall-clock time, resolving DST gaps and overlaps by the hint.
// The Location of local is ignored, only its wall-clock fields count.
func (p Provider) OffsetAt(
	ctx context.Context,
	zone tzsearch.ZoneIDString,
	local time.Time,
	hint tzsearch.DSTHint,
) (tzsearch.OffsetName, error) {

	var empty tzsearch.OffsetName

	wall := time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)

	segments, err := p.segmentsAround(ctx, zone, wall)
	if err != nil {
		return empty, err
	}

	if len(segments) == 0 {
		return empty, &tzsearch.UnknownZoneError{Zone: zone}
	}

	candidates := interpretationsFor(segments, wall)

	switch len(candidates) {
	case 1:
		return candidates[0].pair, nil

	case 0: // the wall-clock time was skipped by a gap
		before := sideAt(segments, wall.Add(-transitionProbe))
		after := sideAt(segments, wall.Add(transitionProbe))

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

	default: // the wall-clock time occurs twice across an overlap
		daylight, standard := splitOverlap(candidates[0], candidates[1])

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
	}
}

// ZonesForCountry returns the zones of one country in zone identifier order.
func (p Provider) ZonesForCountry(
	ctx context.Context,
	code tzsearch.CountryCodeString,
) ([]tzsearch.ZoneIDString, error) {

	query, buildErr := p.buildZonesForCountryQuery(code)
	if buildErr != nil {
		return nil, buildErr
	}

	zones, err := p.queryStrings(ctx, query, logActionZonesByCountry)
	if err != nil {
		return nil, errors.Join(tzsearch.ErrListingZonesFailed, err)
	}

	if len(zones) == 0 {
		return nil, &tzsearch.UnknownCountryError{Code: code}
	}

	return zones, nil
}

// AllZones returns the full zone universe in zone identifier order.
func (p Provider) AllZones(ctx context.Context) ([]tzsearch.ZoneIDString, error) {
	query, buildErr := p.buildAllZonesQuery()
	if buildErr != nil {
		return nil, buildErr
	}

	zones, err := p.queryStrings(ctx, query, logActionAllZones)
	if err != nil {
		return nil, errors.Join(tzsearch.ErrListingZonesFailed, err)
	}

	return zones, nil
}

// AllCountries returns the country universe in country code order.
func (p Provider) AllCountries(ctx context.Context) ([]tzsearch.CountryCodeString, error) {
	query, buildErr := p.buildAllCountriesQuery()
	if buildErr != nil {
		return nil, buildErr
	}

	countries, err := p.queryStrings(ctx, query, logActionAllCountries)
	if err != nil {
		return nil, errors.Join(tzsearch.ErrListingCountriesFailed, err)
	}

	return countries, nil
}

/***** transition segments *****/

// segment is one regime of a zone: the pair in force from start until the
// start of the next segment.
type segment struct {
	start time.Time
	end   time.Time
	pair  tzsearch.OffsetName
	isDST bool
}

// interpretation is one way of reading a wall-clock time in a zone: the UTC
// instant it maps to and the pair in force there.
type interpretation struct {
	instant time.Time
	pair    tzsearch.OffsetName
	isDST   bool
}

// segmentsAround fetches the regimes covering the window around the wall-clock
// time: the one in force entering the window plus every transition inside it.
func (p Provider) segmentsAround(
	ctx context.Context,
	zone tzsearch.ZoneIDString,
	wall time.Time,
) ([]segment, error) {

	from := wall.Add(-2 * transitionProbe)
	to := wall.Add(2 * transitionProbe)

	enteringQuery, buildErr := p.buildEnteringRegimeQuery(zone, from)
	if buildErr != nil {
		p.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrZone, zone)

		return nil, buildErr
	}

	windowQuery, buildErr := p.buildTransitionWindowQuery(zone, from, to)
	if buildErr != nil {
		p.logError(ctx, logMsgBuildQueryFailed, buildErr, logAttrZone, zone)

		return nil, buildErr
	}

	entering, err := p.queryTransitions(ctx, enteringQuery, zone)
	if err != nil {
		return nil, err
	}

	window, err := p.queryTransitions(ctx, windowQuery, zone)
	if err != nil {
		return nil, err
	}

	rows := append(entering, window...)

	segments := make([]segment, 0, len(rows))
	for i, row := range rows {
		end := to.Add(2 * transitionProbe) // open-ended last regime, capped past the window
		if i+1 < len(rows) {
			end = rows[i+1].transitionAt
		}

		segments = append(segments, segment{
			start: row.transitionAt,
			end:   end,
			pair:  tzsearch.NewOffsetName(row.offsetMinutes, row.abbrev),
			isDST: row.isDST,
		})
	}

	return segments, nil
}

// interpretationsFor finds every UTC instant that displays as the given
// wall-clock time across the segments: one for normal times, two across an
// overlap, none inside a gap. The wall-clock time read as UTC, shifted back
// by a segment's offset, is a candidate instant; it is valid when it falls
// inside that segment.
func interpretationsFor(segments []segment, wall time.Time) []interpretation {
	candidates := make([]interpretation, 0, 2)

	for _, seg := range segments {
		instant := wall.Add(-time.Duration(seg.pair.OffsetMinutes()) * time.Minute)

		if instant.Before(seg.start) || !instant.Before(seg.end) {
			continue
		}

		candidates = append(candidates, interpretation{
			instant: instant,
			pair:    seg.pair,
			isDST:   seg.isDST,
		})
	}

	return candidates
}

// sideAt reads the single interpretation of a wall-clock time safely away from
// any transition, falling back to the earliest known regime.
func sideAt(segments []segment, wall time.Time) interpretation {
	candidates := interpretationsFor(segments, wall)
	if len(candidates) > 0 {
		return candidates[0]
	}

	first := segments[0]

	return interpretation{
		instant: wall.Add(-time.Duration(first.pair.OffsetMinutes()) * time.Minute),
		pair:    first.pair,
		isDST:   first.isDST,
	}
}

// splitOverlap separates the two overlap interpretations into the daylight one
// (the earlier instant, the larger offset) and the standard one.
func splitOverlap(first, second interpretation) (daylight, standard interpretation) {
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

/***** query building *****/

// buildEnteringRegimeQuery selects the last transition at or before the window
// start: the regime in force entering the window.
func (p Provider) buildEnteringRegimeQuery(zone tzsearch.ZoneIDString, from time.Time) (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(p.transitionsTableName).
		Select(colTransitionAt, colOffsetMinutes, colAbbrev, colIsDST).
		Where(goqu.Ex{colZone: zone}, goqu.C(colTransitionAt).Lte(from)).
		Order(goqu.I(colTransitionAt).Desc()).
		Limit(1)

	query, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(tzsearch.ErrBuildingQueryFailed, toSQLErr)
	}

	return query, nil
}

// buildTransitionWindowQuery selects the transitions strictly inside the window, oldest first.
func (p Provider) buildTransitionWindowQuery(
	zone tzsearch.ZoneIDString,
	from time.Time,
	to time.Time,
) (sqlQueryString, error) {

	stmt := goqu.Dialect(dialectPostgres).
		From(p.transitionsTableName).
		Select(colTransitionAt, colOffsetMinutes, colAbbrev, colIsDST).
		Where(
			goqu.Ex{colZone: zone},
			goqu.C(colTransitionAt).Gt(from),
			goqu.C(colTransitionAt).Lte(to),
		).
		Order(goqu.I(colTransitionAt).Asc())

	query, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(tzsearch.ErrBuildingQueryFailed, toSQLErr)
	}

	return query, nil
}

func (p Provider) buildZonesForCountryQuery(code tzsearch.CountryCodeString) (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(p.countriesTableName).
		Select(colZone).
		Where(goqu.Ex{colCountryCode: strings.ToUpper(code)}).
		Order(goqu.I(colZone).Asc())

	query, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(tzsearch.ErrBuildingQueryFailed, toSQLErr)
	}

	return query, nil
}

func (p Provider) buildAllZonesQuery() (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(p.countriesTableName).
		SelectDistinct(colZone).
		Order(goqu.I(colZone).Asc())

	query, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(tzsearch.ErrBuildingQueryFailed, toSQLErr)
	}

	return query, nil
}

func (p Provider) buildAllCountriesQuery() (sqlQueryString, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(p.countriesTableName).
		SelectDistinct(colCountryCode).
		Order(goqu.I(colCountryCode).Asc())

	query, _, toSQLErr := stmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(tzsearch.ErrBuildingQueryFailed, toSQLErr)
	}

	return query, nil
}

/***** query execution *****/

type transitionRow struct {
	transitionAt  time.Time
	offsetMinutes int
	abbrev        string
	isDST         bool
}

// queryTransitions runs a transitions query and scans its rows, wrapping every
// failure with the rule-reading sentinel so callers can classify it.
func (p Provider) queryTransitions(
	ctx context.Context,
	query sqlQueryString,
	zone tzsearch.ZoneIDString,
) ([]transitionRow, error) {

	start := time.Now()
	ctx, span := p.startQuerySpan(ctx, logActionOffsetAt)

	rows, queryErr := p.db.Query(ctx, query)
	if queryErr != nil {
		p.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrZone, zone)
		p.recordQueryError(ctx, logActionOffsetAt)
		p.finishQuerySpan(span, queryErr)

		return nil, errors.Join(tzsearch.ErrReadingZoneRulesFailed, queryErr)
	}
	defer p.closeRows(ctx, rows)

	result := make([]transitionRow, 0, 8)

	for rows.Next() {
		var row transitionRow

		if scanErr := rows.Scan(&row.transitionAt, &row.offsetMinutes, &row.abbrev, &row.isDST); scanErr != nil {
			p.logError(ctx, logMsgScanRowFailed, scanErr, logAttrZone, zone)
			p.finishQuerySpan(span, scanErr)

			return nil, errors.Join(tzsearch.ErrScanningRowFailed, scanErr)
		}

		result = append(result, row)
	}

	p.finishQuerySpan(span, nil)

	p.logQueryWithDuration(ctx, query, logActionOffsetAt, time.Since(start))
	p.recordQueryDuration(ctx, logActionOffsetAt, time.Since(start))

	return result, nil
}

// queryStrings runs a single-column query and collects the column values.
func (p Provider) queryStrings(ctx context.Context, query sqlQueryString, action string) ([]string, error) {
	start := time.Now()
	ctx, span := p.startQuerySpan(ctx, action)

	rows, queryErr := p.db.Query(ctx, query)
	if queryErr != nil {
		p.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, query)
		p.recordQueryError(ctx, action)
		p.finishQuerySpan(span, queryErr)

		return nil, queryErr
	}
	defer p.closeRows(ctx, rows)

	result := make([]string, 0)

	for rows.Next() {
		var value string

		if scanErr := rows.Scan(&value); scanErr != nil {
			p.logError(ctx, logMsgScanRowFailed, scanErr, logAttrQuery, query)
			p.finishQuerySpan(span, scanErr)

			return nil, errors.Join(tzsearch.ErrScanningRowFailed, scanErr)
		}

		result = append(result, value)
	}

	p.finishQuerySpan(span, nil)

	p.logQueryWithDuration(ctx, query, action, time.Since(start))
	p.recordQueryDuration(ctx, action, time.Since(start))

	return result, nil
}

func (p Provider) closeRows(ctx context.Context, rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		p.logError(ctx, logMsgCloseRowsFailed, err)
	}
}

// Ensure Provider implements tzsearch.RulesProvider.
var _ tzsearch.RulesProvider = Provider{}
