package service

import "time"

const dateLayout = "2006-01-02"

// localLayouts are parsed in the calendar's location
var localLayouts = []string{dateLayout, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// Calendar answers date questions in the server-local time zone
type Calendar struct {
	Now      func() time.Time
	Location *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{
		Now:      time.Now,
		Location: loc,
	}
}

func (c Calendar) now() time.Time {
	return c.Now().In(c.Location)
}

func (c Calendar) startOfToday() time.Time {
	now := c.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location)
}

// isPast reports whether the month ended before the current month began
func (c Calendar) isPast(year, month int) bool {
	now := c.now()
	return year < now.Year() || (year == now.Year() && month < int(now.Month()))
}

// monthRange returns [first day of month, first day of next month)
func (c Calendar) monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, c.Location)
	return from, from.AddDate(0, 1, 0)
}

// parseDate accepts RFC 3339 timestamps, plain dates and zone-less timestamps.
// Values without a zone are read in server-local time.
func (c Calendar) parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, c.Location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
