package missions

import (
	"strings"
	"time"

	"github.com/planetary-society/missions/pkg/errors"
)

// dateLayout is the canonical on-disk date format.
const dateLayout = "2006-01-02"

// spreadsheetDateLayout is the fallback format used by spreadsheet exports.
const spreadsheetDateLayout = "1/2/2006"

// Date is a calendar date without a time component. Mission records carry
// dates only; times of day are never meaningful in the catalog.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in either the canonical YYYY-MM-DD format or the
// M/D/YYYY format found in spreadsheet exports.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errors.NewParseError("date", "", "empty date string", nil)
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(spreadsheetDateLayout, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, errors.NewParseError("date", "", "unrecognized date "+s, nil)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Equal reports whether two dates are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// MarshalYAML implements yaml.BytesMarshaler for goccy/go-yaml.
func (d Date) MarshalYAML() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler for goccy/go-yaml.
func (d *Date) UnmarshalYAML(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	if s == "" || s == "null" || s == "~" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
