package finance

import (
	"fmt"
	"time"
)

// Period is the dashboard filter window. Every period runs from its start
// date through now; there is no end bound.
type Period string

const (
	PeriodOverall Period = "Overall"
	PeriodAnnual  Period = "Annual"
	PeriodMonthly Period = "Monthly"
	PeriodWeekly  Period = "Weekly"
)

// ParsePeriod maps a filter query value to a Period. Empty input means
// Overall.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodOverall, PeriodAnnual, PeriodMonthly, PeriodWeekly:
		return Period(s), nil
	case "":
		return PeriodOverall, nil
	}
	return "", fmt.Errorf("unknown period filter %q", s)
}

// Start returns the period's start date relative to now: the zero time for
// Overall, January 1 for Annual, the 1st for Monthly, and the current
// Monday for Weekly.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodAnnual:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		start, _ := WeekBounds(now)
		return start
	}
	return time.Time{}
}
