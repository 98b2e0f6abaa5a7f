package parse

import (
	"strings"
	"time"
)

// dateLayouts is the recognition order for statement dates. Day-first
// layouts come before month-first because Mexican statements are
// day-first; an ambiguous 03/04/2024 therefore parses as April 3. The
// single-digit tokens accept unpadded cells like 3/4/2024.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006/1/2",
	"2006-1-2",
	"2/1/06",
	"1/2/2006",
	"20060102",
}

// Date parses statement date text against each known layout in order
// and returns the first match as a calendar date. The boolean is false
// when no layout matches; callers skip such rows.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
