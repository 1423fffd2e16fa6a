// ABOUTME: Tests for date resolution
// ABOUTME: Validates offset parsing, fuzzy fallback, and the late-night threshold
package dates

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestResolveOffsets(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	cases := []struct {
		spec string
		days int
	}{
		{"0", 0},
		{"-1", -1},
		{"5", 5},
		{"-42", -42},
		{"1000000", 1000000},
		{"-1000000", -1000000},
	}

	for _, tc := range cases {
		t.Run("offset "+tc.spec, func(t *testing.T) {
			resolved, err := Resolve([]string{tc.spec}, now, Fuzzy())
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			want := now.AddDate(0, 0, tc.days)
			if !resolved[0].Equal(want) {
				t.Errorf("got %v, want %v", resolved[0], want)
			}
		})
	}
}

func TestResolveBeyondClampUsesParser(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	parsed := time.Date(1999, 12, 31, 0, 0, 0, 0, time.Local)

	var got string
	parser := ParserFunc(func(s string) (time.Time, error) {
		got = s
		return parsed, nil
	})

	resolved, err := Resolve([]string{"1000001"}, now, parser)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "1000001" {
		t.Errorf("parser got %q, want the raw specifier", got)
	}
	if !resolved[0].Equal(parsed) {
		t.Errorf("got %v, want the parser's result %v", resolved[0], parsed)
	}
}

func TestResolveDateStrings(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	cases := []struct {
		spec             string
		year, month, day int
	}{
		{"2024-01-01", 2024, 1, 1},
		{"Jan 2, 2019", 2019, 1, 2},
		{"2018-06-30 14:00", 2018, 6, 30},
	}

	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			resolved, err := Resolve([]string{tc.spec}, now, Fuzzy())
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			y, m, d := resolved[0].Date()
			if y != tc.year || int(m) != tc.month || d != tc.day {
				t.Errorf("got %04d-%02d-%02d, want %04d-%02d-%02d", y, m, d, tc.year, tc.month, tc.day)
			}
		})
	}
}

func TestResolveParseError(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	_, err := Resolve([]string{"definitely not a date"}, now, Fuzzy())
	if err == nil {
		t.Fatal("expected error for unparseable specifier")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Spec != "definitely not a date" {
		t.Errorf("got spec %q, want the raw specifier", parseErr.Spec)
	}
}

func TestResolveAbortsOnFirstBadSpecifier(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	parser := ParserFunc(func(s string) (time.Time, error) {
		return time.Time{}, fmt.Errorf("nope")
	})

	resolved, err := Resolve([]string{"-1", "garbage", "-2"}, now, parser)
	if err == nil {
		t.Fatal("expected error")
	}
	if resolved != nil {
		t.Errorf("expected no partial results, got %v", resolved)
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	resolved, err := Resolve([]string{"-1", "1", "0"}, now, Fuzzy())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(resolved) != 3 {
		t.Fatalf("got %d dates, want 3", len(resolved))
	}
	if !resolved[0].Equal(now.AddDate(0, 0, -1)) || !resolved[1].Equal(now.AddDate(0, 0, 1)) || !resolved[2].Equal(now) {
		t.Errorf("dates out of order: %v", resolved)
	}
}

func TestToday(t *testing.T) {
	t.Run("hour below threshold is yesterday", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 2, 30, 0, 0, time.Local)
		got := Today(now, 4)
		if got.Day() != 14 {
			t.Errorf("got day %d, want 14", got.Day())
		}
	})

	t.Run("hour at threshold is today", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 4, 0, 0, 0, time.Local)
		got := Today(now, 4)
		if got.Day() != 15 {
			t.Errorf("got day %d, want 15", got.Day())
		}
	})

	t.Run("zero threshold never shifts", func(t *testing.T) {
		now := time.Date(2024, 3, 15, 0, 10, 0, 0, time.Local)
		got := Today(now, 0)
		if got.Day() != 15 {
			t.Errorf("got day %d, want 15", got.Day())
		}
	})
}
