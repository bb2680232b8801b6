package resolver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

// Pool provisions one Resolver per caller on demand. Resolvers are not safe
// for concurrent use because of their instance-scoped cache; the Pool hands
// each goroutine its own instance while all of them share the rules provider.
type Pool struct {
	parser    tzsearch.DateParser
	preferred tzsearch.CountryFilter
	fallback  tzsearch.CountryFilter
	hint      tzsearch.DSTHint
	resolvers sync.Pool
}

// PoolOption defines a functional option for configuring a Pool.
type PoolOption func(*Pool) error

// WithPreferredCountries sets the country filter of the first resolution attempt.
func WithPreferredCountries(filter tzsearch.CountryFilter) PoolOption {
	return func(p *Pool) error {
		p.preferred = filter
		return nil
	}
}

// WithFallbackCountries sets the country filter of the unsafe retry that runs
// when the preferred attempt finds nothing or stays ambiguous.
func WithFallbackCountries(filter tzsearch.CountryFilter) PoolOption {
	return func(p *Pool) error {
		p.fallback = filter
		return nil
	}
}

// WithPoolDSTHint sets the DST hint used for all searches and localizations of the Pool.
func WithPoolDSTHint(hint tzsearch.DSTHint) PoolOption {
	return func(p *Pool) error {
		p.hint = hint
		return nil
	}
}

// NewPool creates a Pool over the given rules provider and date parser.
// The resolverOptions are applied to every Resolver the Pool provisions.
func NewPool(
	provider tzsearch.RulesProvider,
	parser tzsearch.DateParser,
	resolverOptions []Option,
	options ...PoolOption,
) (*Pool, error) {

	if provider == nil {
		return nil, tzsearch.ErrNilRulesProvider
	}

	if parser == nil {
		return nil, tzsearch.ErrNilDateParser
	}

	p := &Pool{parser: parser}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	// validate provider and options once, eagerly; every later instance is a
	// clone of this prototype with its own cache, so New never fails and never
	// needs to write shared state from pool-managed goroutines
	prototype, err := New(provider, resolverOptions...)
	if err != nil {
		return nil, err
	}

	capacity := prototype.cache.capacity

	p.resolvers.New = func() any {
		clone := *prototype
		clone.cache = newSearchCache(capacity)

		return &clone
	}
	p.resolvers.Put(prototype)

	return p, nil
}

// acquire hands out a Resolver for the duration of one call.
func (p *Pool) acquire() *Resolver {
	return p.resolvers.Get().(*Resolver)
}

func (p *Pool) release(r *Resolver) {
	p.resolvers.Put(r)
}

// NormalizeToUTC parses a raw date string and returns the UTC instant it
// denotes. The timezone literals found in the text are resolved with the
// Pool's preferred country filter first; when that finds nothing or stays
// ambiguous, the fallback filter is retried in unsafe mode, so a best guess
// always wins over a hard failure.
//
// Raw text without any timezone literal is taken as UTC wall-clock time.
func (p *Pool) NormalizeToUTC(ctx context.Context, raw string, patterns ...string) (time.Time, error) {
	parsed, parseErr := p.parser.Parse(raw, patterns...)
	if parseErr != nil {
		return time.Time{}, parseErr
	}

	if len(parsed.Literals) == 0 {
		return wallClockUTC(parsed.WallClock), nil
	}

	r := p.acquire()
	defer p.release(r)

	constraints := tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(parsed.Literals[0], parsed.Literals[1:]...).
		Finalize()

	instant, err := r.ResolveAndLocalize(ctx, constraints, parsed.WallClock, SearchOptions{
		Countries: p.preferred,
		Hint:      p.hint,
	})
	if err == nil {
		return instant, nil
	}

	if !errors.Is(err, tzsearch.ErrNoZoneFound) && !errors.Is(err, tzsearch.ErrAmbiguousTimezone) {
		return time.Time{}, err
	}

	return r.ResolveAndLocalize(ctx, constraints, parsed.WallClock, SearchOptions{
		Countries: p.fallback,
		Hint:      p.hint,
		Unsafe:    true,
	})
}
