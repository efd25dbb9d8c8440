package report

import "time"

type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityMonth
)

// GoLayout returns the time layout used for bucket keys.
func (g Granularity) GoLayout() string {
	if g == GranularityMonth {
		return "2006-01"
	}
	return "2006-01-02"
}

// MongoFormat returns the $dateToString format for this granularity.
func (g Granularity) MongoFormat() string {
	if g == GranularityMonth {
		return "%Y-%m"
	}
	return "%Y-%m-%d"
}

// Range is a reporting window with the bucket granularity charts group by.
type Range struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

const (
	PeriodWeek     = "1w"
	PeriodMonth    = "1m"
	PeriodHalfYear = "6m"
	PeriodYear     = "1y"
)

// ResolveRange maps a period token to a window ending at now. Unrecognized
// tokens silently behave like "1m".
func ResolveRange(period string, now time.Time) Range {
	switch period {
	case PeriodWeek:
		return Range{Start: now.AddDate(0, 0, -7), End: now, Granularity: GranularityDay}
	case PeriodHalfYear:
		return Range{Start: SubMonths(now, 6), End: now, Granularity: GranularityMonth}
	case PeriodYear:
		return Range{Start: SubMonths(now, 12), End: now, Granularity: GranularityMonth}
	default:
		return Range{Start: SubMonths(now, 1), End: now, Granularity: GranularityDay}
	}
}

// SubMonths subtracts n calendar months. When the day of month does not
// exist in the target month it clamps to that month's last day, so
// March 31 minus one month is February 28 (or 29), never March 3.
func SubMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()-time.Month(n), 1, 0, 0, 0, 0, t.Location())

	day := t.Day()
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(
		firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location(),
	)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// MonthWindow returns the boundaries the overview compares over: the start
// of the current calendar month and the half-open previous month
// [prevStart, curStart).
func MonthWindow(now time.Time) (curStart, prevStart time.Time) {
	curStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	return curStart, prevStart
}
