package finsight

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight/date"
)

// View selects the period granularity for transaction filtering.
type View string

const (
	Daily   View = "daily"
	Monthly View = "monthly"
	Yearly  View = "yearly"
)

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return "", fmt.Errorf("unknown view %q (want daily, monthly or yearly)", s)
	}
}

// CurrentRef returns today's period key under the given view: the ISO day,
// the "YYYY-MM" month or the "YYYY" year.
func CurrentRef(v View) string {
	today := date.Today()
	switch v {
	case Daily:
		return today.String()
	case Yearly:
		return today.String()[:4]
	default:
		return today.MonthOf().String()
	}
}

// prefixLen returns how many characters of an ISO "YYYY-MM-DD" date take
// part in the period comparison for this view.
func (v View) prefixLen() int {
	switch v {
	case Daily:
		return 10
	case Monthly:
		return 7
	case Yearly:
		return 4
	default:
		return 10
	}
}
