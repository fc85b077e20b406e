// Package dateutils holds the date layouts of the source documents and of
// the tabular store, and the calendar helpers built on them.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the layout of every date inside an electronic invoice.
	LayoutISO = "2006-01-02"
	// LayoutDisplay is the day-month-year layout of the tabular store.
	LayoutDisplay = "02-01-2006"
)

// ParseISODate parses a YYYY-MM-DD date. Surrounding whitespace is ignored.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// ParseDisplayDate parses a DD-MM-YYYY date as written in the tabular store.
func ParseDisplayDate(s string) (time.Time, error) {
	t, err := time.Parse(LayoutDisplay, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want DD-MM-YYYY): %w", s, err)
	}
	return t, nil
}

// IsISODate reports whether s is a valid calendar date in YYYY-MM-DD.
func IsISODate(s string) bool {
	_, err := ParseISODate(s)
	return err == nil
}

// ToDisplay renders t as DD-MM-YYYY.
func ToDisplay(t time.Time) string {
	return t.Format(LayoutDisplay)
}

// InMonth reports whether t falls in month of year.
func InMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
