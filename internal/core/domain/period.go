package domain

import (
	"fmt"
	"time"
)

// PeriodKind names the supported date-range filters.
type PeriodKind string

const (
	PeriodAll       PeriodKind = "all"
	PeriodToday     PeriodKind = "today"
	PeriodThisMonth PeriodKind = "month"
	PeriodCustom    PeriodKind = "custom"
	PeriodMonthYear PeriodKind = "monthYear" // Exact calendar month, used by supplier detail views
)

// DateLayout is the calendar-date form all period comparisons are made in.
// Timestamps are truncated to their date portion before comparison, so two
// records on the same calendar day always land in the same bucket regardless
// of their time of day.
const DateLayout = "2006-01-02"

// Period is a date-range predicate over a record's creation timestamp.
// From/To are inclusive YYYY-MM-DD bounds and only meaningful for
// PeriodCustom; Year/Month only for PeriodMonthYear.
type Period struct {
	Kind  PeriodKind
	From  string
	To    string
	Year  int
	Month time.Month
}

// NewCustomPeriod builds an inclusive [from, to] range. A from later than to
// matches nothing; the bounds are kept as given, never swapped.
func NewCustomPeriod(from, to string) Period {
	return Period{Kind: PeriodCustom, From: from, To: to}
}

// NewMonthYearPeriod selects one exact calendar month.
func NewMonthYearPeriod(year int, month time.Month) Period {
	return Period{Kind: PeriodMonthYear, Year: year, Month: month}
}

// Contains reports whether ts falls inside the period. now anchors the
// relative kinds (today, this month); both timestamps are compared as
// calendar dates in their own location.
func (p Period) Contains(ts time.Time, now time.Time) bool {
	d := ts.Format(DateLayout)
	switch p.Kind {
	case PeriodToday:
		return d == now.Format(DateLayout)
	case PeriodThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return d >= first.Format(DateLayout) && d <= last.Format(DateLayout)
	case PeriodCustom:
		return d >= p.From && d <= p.To
	case PeriodMonthYear:
		return ts.Year() == p.Year && ts.Month() == p.Month
	default: // PeriodAll and unknown kinds filter nothing
		return true
	}
}

// IsAll reports whether the period places no restriction on records.
func (p Period) IsAll() bool {
	return p.Kind == "" || p.Kind == PeriodAll
}

// Label renders a human-readable description for report subtitles.
func (p Period) Label() string {
	switch p.Kind {
	case PeriodToday:
		return "Today"
	case PeriodThisMonth:
		return "This Month"
	case PeriodCustom:
		return fmt.Sprintf("%s to %s", p.From, p.To)
	case PeriodMonthYear:
		return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
	default:
		return "All"
	}
}
