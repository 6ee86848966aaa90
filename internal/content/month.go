package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PresentLabel is how an open-ended date range renders its end.
const PresentLabel = "Present"

var monthLayouts = []string{"Jan 2006", "January 2006", "2006-01", "01/2006"}

// Month is a calendar date at month granularity.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses values such as "Oct 2025", "October 2025", "Sept 2019" or "2025-10".
func ParseMonth(value string) (Month, error) {
	v := strings.Join(strings.Fields(value), " ")
	if v == "" {
		return Month{}, fmt.Errorf("empty month")
	}
	// "Sept" shows up in CVs but is not a layout token.
	if first, rest, ok := strings.Cut(v, " "); ok && strings.EqualFold(first, "sept") {
		v = "Sep " + rest
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Month{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return Month{}, fmt.Errorf("unrecognized month %q", value)
}

// MustParseMonth is ParseMonth for literals known to be valid.
func MustParseMonth(value string) Month {
	m, err := ParseMonth(value)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Compare returns -1, 0 or +1 as m is before, equal to or after o.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}
	return 0
}

func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

func (m Month) After(o Month) bool { return m.Compare(o) > 0 }

// Time returns the first instant of the month in UTC.
func (m Month) Time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return m.Time().Format("Jan 2006")
}

func (m *Month) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseMonth(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = parsed
	return nil
}

// EndDate is either a concrete month or the open-ended present sentinel.
// The zero value is present.
type EndDate struct {
	month Month
}

// Present returns the open-ended sentinel.
func Present() EndDate { return EndDate{} }

// Until returns an end date fixed at m.
func Until(m Month) EndDate { return EndDate{month: m} }

func (e EndDate) IsPresent() bool { return e.month.IsZero() }

// Month returns the fixed end month, or false for the present sentinel.
func (e EndDate) Month() (Month, bool) {
	return e.month, !e.month.IsZero()
}

func (e EndDate) String() string {
	if e.IsPresent() {
		return PresentLabel
	}
	return e.month.String()
}

func (e *EndDate) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, PresentLabel) {
		*e = Present()
		return nil
	}
	m, err := ParseMonth(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = Until(m)
	return nil
}
