// Package orgdate converts single org-mode date stamps such as
// [2024-03-01 Fri] or <2024-03-01 Fri> to and from calendar dates.
package orgdate

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrFormat is returned when the text is neither blank nor a bracketed org date
	ErrFormat = errors.New("Input String is not a date")

	// ErrInvalidDate is returned when the stamp has the right shape but names no real day
	ErrInvalidDate = errors.New("invalid calendar date")
)

// layout accepts one or two digit months and days, like %Y-%m-%d
const layout = "2006-1-2"

var (
	blankRe = regexp.MustCompile(`^ *\n?$`)

	// The weekday is only checked for shape, never against the date.
	stampRe = regexp.MustCompile(`^(?:\[(\d+-\d+-\d+) +[a-zA-Z]{3}\]|<(\d+-\d+-\d+) +[a-zA-Z]{3}>)\n?$`)
)

// NullDate is a calendar day that may be missing.
// Valid is false for blank input; Active is true for <...> stamps.
type NullDate struct {
	Time   time.Time
	Active bool
	Valid  bool
}

// Date returns midnight UTC of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Parse reads an org date stamp. Blank input yields a NullDate with Valid unset.
func Parse(text string) (NullDate, error) {
	if blankRe.MatchString(text) {
		return NullDate{}, nil
	}

	m := stampRe.FindStringSubmatch(text)
	if m == nil {
		return NullDate{}, fmt.Errorf("%w: >%s<", ErrFormat, text)
	}

	ymd, active := m[1], false
	if ymd == "" {
		ymd, active = m[2], true
	}

	t, err := time.ParseInLocation(layout, ymd, time.UTC)
	if err != nil {
		return NullDate{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, ymd, err)
	}

	return NullDate{Time: t, Active: active, Valid: true}, nil
}

// Format renders t as an org date stamp, <...> when active and [...] otherwise
func Format(t time.Time, active bool) string {
	stamp := t.Format("2006-01-02 Mon")
	if active {
		return "<" + stamp + ">"
	}
	return "[" + stamp + "]"
}

// String renders the date with the bracket kind it was parsed with.
// A missing date renders as the empty string.
func (d NullDate) String() string {
	if !d.Valid {
		return ""
	}
	return Format(d.Time, d.Active)
}

// Equal reports whether both values name the same day, or are both missing.
// The bracket kind is ignored.
func (d NullDate) Equal(other NullDate) bool {
	if d.Valid != other.Valid {
		return false
	}
	if !d.Valid {
		return true
	}
	y1, m1, d1 := d.Time.Date()
	y2, m2, d2 := other.Time.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
