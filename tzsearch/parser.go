package tzsearch

import (
	"time"
)

// ParsedDate is the result of parsing a raw date string: the wall-clock time
// the text describes, the timezone constraint literals found in the text in
// the order they appeared, and the pattern variant that matched.
type ParsedDate struct {
	// WallClock holds the parsed date/time fields; its Location is ignored.
	WallClock time.Time

	// Literals are the timezone descriptions extracted from the text, ordered
	// as found. They form one alternative group for a search.
	Literals []ConstraintLiteral

	// Pattern is the concrete pattern variant that matched the text.
	Pattern string
}

// DateParser is implemented by text parsers that split a raw date string into
// wall-clock fields and timezone constraint literals. Parsing grammars are out
// of scope for this library; a Pool consumes any implementation of this interface.
type DateParser interface {
	Parse(raw string, patterns ...string) (ParsedDate, error)
}
