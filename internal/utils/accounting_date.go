package utils

import (
	"fmt"
	"strings"
	"time"
)

// erpTimestampLayout is the layout the ERP expects in $filter literals and date fields.
const erpTimestampLayout = "2006-01-02T15:04:05"

var accountingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeAccountingDate trims and collapses whitespace and turns the
// "date time" separator into 'T' ("2024-03-15  10:00" -> "2024-03-15T10:00").
func NormalizeAccountingDate(raw string) string {
	fields := strings.Fields(raw)
	return strings.Join(fields, "T")
}

// ParseAccountingDate parses a user supplied date in any supported precision.
// Naive values are read in loc. The result is truncated to whole seconds.
func ParseAccountingDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	normalized := NormalizeAccountingDate(raw)
	if normalized == "" {
		return time.Time{}, fmt.Errorf("empty accounting date")
	}
	for _, layout := range accountingDateLayouts {
		if t, err := time.ParseInLocation(layout, normalized, loc); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised accounting date %q", raw)
}

// FormatERPTimestamp renders t as a naive second-precision timestamp in loc.
func FormatERPTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Truncate(time.Second).Format(erpTimestampLayout)
}

// ParseERPTimestamp reads dates returned by the ERP ("2024-03-15", "2024-03-15T00:00:00Z", ...).
// The ERP stores naive wall-clock values and renders them with a UTC suffix,
// so any zone designator is dropped and the wall clock is read in loc.
func ParseERPTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := ParseAccountingDate(raw, loc)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, 0, loc), nil
}
