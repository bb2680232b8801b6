package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tzsearch/timezone-search-go/tzsearch"
	"github.com/tzsearch/timezone-search-go/tzsearch/resolver"
	"github.com/tzsearch/timezone-search-go/tzsearch/tzdataprovider"
)

type Config struct {
	Abbrevs   []string
	Zone      string
	Offset    int
	UseOffset bool
	Anchor    time.Time
	Prefer    []string
	Unsafe    bool
	Trace     bool
	Verbose   bool
}

func main() {
	cfg := parseFlags()

	ctx := context.Background()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	provider, err := tzdataprovider.New()
	if err != nil {
		log.Fatalf("Failed to create rules provider: %v", err)
	}

	res, err := resolver.New(provider, resolver.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create resolver: %v", err)
	}

	constraints := buildConstraints(cfg)

	opts := resolver.SearchOptions{Unsafe: cfg.Unsafe}

	if len(cfg.Prefer) > 0 {
		all, listErr := provider.AllCountries(ctx)
		if listErr != nil {
			log.Fatalf("Failed to list countries: %v", listErr)
		}
		opts.Countries = tzsearch.PreferCountries(all, cfg.Prefer...)
	}

	var sink *tzsearch.CollectingTraceSink
	if cfg.Trace {
		sink = &tzsearch.CollectingTraceSink{}
		opts.Trace = sink
	}

	resolution, err := res.Search(ctx, constraints, cfg.Anchor, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		printTrace(sink)
		os.Exit(1)
	}

	switch resolution.Kind() {
	case tzsearch.ResolvedUnique:
		fmt.Printf("unique zone: %s\n", resolution.Zone())

	case tzsearch.ResolvedSingleInstant:
		zone := resolution.SingleInstant()
		fmt.Printf("single-instant zone: %s\n", zone.Pair().String())
		fmt.Printf("valid at:            %s\n", zone.Anchor().Format(time.RFC3339))
		fmt.Printf("member zones:        %s\n", strings.Join(zone.Zones(), ", "))
	}

	printTrace(sink)
}

func buildConstraints(cfg Config) tzsearch.ConstraintSet {
	var literals []tzsearch.ConstraintLiteral

	for _, abbrev := range cfg.Abbrevs {
		literals = append(literals, tzsearch.Abbrev(abbrev))
	}
	if cfg.Zone != "" {
		literals = append(literals, tzsearch.Zone(cfg.Zone))
	}
	if cfg.UseOffset {
		literals = append(literals, tzsearch.Offset(cfg.Offset))
	}

	if len(literals) == 0 {
		return tzsearch.BuildConstraintSet().MatchingAnyZone()
	}

	return tzsearch.BuildConstraintSet().
		Matching().
		AnyOf(literals[0], literals[1:]...).
		Finalize()
}

func parseFlags() Config {
	abbrevs := flag.String("abbrevs", "", "comma-separated timezone abbreviations to match (any of them)")
	zone := flag.String("zone", "", "exact zone identifier to match")
	offset := flag.Int("offset", 0, "UTC offset in minutes east to match (requires -use-offset)")
	useOffset := flag.Bool("use-offset", false, "include the -offset literal in the search")
	anchor := flag.String("anchor", "", "anchor wall-clock time in RFC 3339 format (default: now)")
	prefer := flag.String("prefer", "", "comma-separated country codes to seed the search from, in order")
	unsafe := flag.Bool("unsafe", false, "resolve ambiguous results to the first cluster instead of failing")
	trace := flag.Bool("trace", false, "print the debug trace of the search")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg := Config{
		Zone:      *zone,
		Offset:    *offset,
		UseOffset: *useOffset,
		Anchor:    time.Now(),
		Unsafe:    *unsafe,
		Trace:     *trace,
		Verbose:   *verbose,
	}

	if *abbrevs != "" {
		cfg.Abbrevs = strings.Split(*abbrevs, ",")
	}
	if *prefer != "" {
		cfg.Prefer = strings.Split(*prefer, ",")
	}

	if *anchor != "" {
		parsed, err := time.Parse(time.RFC3339, *anchor)
		if err != nil {
			log.Fatalf("Invalid -anchor value %q: %v", *anchor, err)
		}
		cfg.Anchor = parsed
	}

	return cfg
}

func printTrace(sink *tzsearch.CollectingTraceSink) {
	if sink == nil {
		return
	}

	for _, step := range sink.Steps() {
		fmt.Fprintf(os.Stderr, "%s\n", step.JSON())
	}
}
