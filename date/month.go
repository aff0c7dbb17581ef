package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const monthFormat = "2006-01"

// Month represents a calendar month. Its string form "YYYY-MM" is the
// monthly bucket key for aggregation.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// ThisMonth returns the current month.
func ThisMonth() Month { return Today().MonthOf() }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of year.
func (m Month) Month() time.Month { return m.m }

// Add returns the month i months after m (before if i is negative).
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// Before reports whether m is before x.
func (m Month) Before(x Month) bool { return m.y < x.y || (m.y == x.y && m.m < x.m) }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(monthFormat)
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(monthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, monthFormat, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	str := m.String()
	return json.Marshal(&str)
}

func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = p
	return nil
}
