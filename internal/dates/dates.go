// ABOUTME: Date resolution for journal entries
// ABOUTME: Handles integer day-offsets, fuzzy date strings, and the late-night threshold
package dates

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// maxOffsetDays bounds how large an integer specifier may be before it is
// treated as a date string instead of a day-offset. Numbers like 20240101
// would otherwise parse as absurd offsets.
const maxOffsetDays = 1000000

// Parser turns a free-form date string into a time. The journal only needs
// the calendar date, but parsers may return a full timestamp.
type Parser interface {
	Parse(s string) (time.Time, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(s string) (time.Time, error)

func (f ParserFunc) Parse(s string) (time.Time, error) { return f(s) }

// Fuzzy returns the default natural-language date parser.
func Fuzzy() Parser {
	return ParserFunc(func(s string) (time.Time, error) {
		return dateparse.ParseAny(s)
	})
}

// ParseError reports a specifier that is neither a day-offset nor a
// parseable date.
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid date", e.Spec)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Today returns the date an entry opened "now" belongs to. Hours before the
// configured threshold count as the previous day, so late-night writing lands
// in yesterday's entry.
func Today(now time.Time, hoursPastMidnight int) time.Time {
	if now.Hour() < hoursPastMidnight {
		return now.AddDate(0, 0, -1)
	}
	return now
}

// Resolve turns date specifiers into times, preserving input order. Each
// specifier is tried as an integer day-offset from now first; anything
// non-numeric (or numeric beyond the offset bound) goes through the parser.
// The first unresolvable specifier aborts with a *ParseError.
func Resolve(specs []string, now time.Time, parser Parser) ([]time.Time, error) {
	resolved := make([]time.Time, 0, len(specs))
	for _, spec := range specs {
		t, err := resolveOne(spec, now, parser)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}

func resolveOne(spec string, now time.Time, parser Parser) (time.Time, error) {
	if offset, err := strconv.Atoi(spec); err == nil {
		if offset >= -maxOffsetDays && offset <= maxOffsetDays {
			return now.AddDate(0, 0, offset), nil
		}
		// Too big for an offset; fall through and try it as a date.
	}

	t, err := parser.Parse(spec)
	if err != nil {
		return time.Time{}, &ParseError{Spec: spec, Err: err}
	}
	return t, nil
}
