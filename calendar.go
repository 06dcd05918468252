package naturesite

import (
	"fmt"
	"time"
)

// DayCell is one slot in the month grid. Leading cells before day 1 have
// Day == 0 and no date or events.
type DayCell struct {
	Day    int
	Date   string // YYYY-MM-DD, empty for blank cells
	Events []CalendarEvent
}

// MonthGrid is the renderable calendar for one month: the weekday offset of
// blank leading cells followed by one cell per day. It is derived on demand
// from the event collection and holds no state of its own.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []DayCell
}

// MonthName returns the English month name for headings.
func (g MonthGrid) MonthName() string {
	return g.Month.String()
}

// Param formats the grid's month as the YYYY-MM query value used by the
// calendar page.
func (g MonthGrid) Param() string {
	return fmt.Sprintf("%04d-%02d", g.Year, int(g.Month))
}

// BuildMonthGrid computes the grid for the given year and month. Day cells
// are preceded by one blank cell per weekday before the 1st (0 for a month
// starting on Sunday, 6 for Saturday). Events are matched to a day by exact
// comparison of their date string with the zero-padded YYYY-MM-DD for that
// day (no time zones, no ranges) and keep their relative order.
func BuildMonthGrid(year int, month time.Month, events []CalendarEvent) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one; this handles
	// variable month lengths and leap years without tables.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	offset := int(first.Weekday()) // 0=Sunday .. 6=Saturday

	cells := make([]DayCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		var dayEvents []CalendarEvent
		for _, e := range events {
			if e.Date == date {
				dayEvents = append(dayEvents, e)
			}
		}
		cells = append(cells, DayCell{Day: day, Date: date, Events: dayEvents})
	}
	return MonthGrid{Year: year, Month: month, Cells: cells}
}

// PrevMonth returns the year and month one month before the given reference,
// normalized to day 1 so month-length overflow can never produce an invalid
// date.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth returns the year and month one month after the given reference,
// normalized to day 1.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// ParseMonthParam parses a YYYY-MM query value. Anything malformed falls back
// to the month containing now.
func ParseMonthParam(v string, now time.Time) (int, time.Month) {
	if t, err := time.Parse("2006-01", v); err == nil {
		return t.Year(), t.Month()
	}
	return now.Year(), now.Month()
}
