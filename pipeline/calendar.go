package pipeline

import "time"

// Calendar fixes the date-only comparison rules used by the view predicates
// and the aggregator: which location a "day" lives in and which weekday a
// week begins on.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// DefaultCalendar uses the process-local timezone and weeks starting on Sunday.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.Local, WeekStart: time.Sunday}
}

func (c Calendar) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// StartOfDay truncates t to midnight in the calendar's location.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location())
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}

// StartOfWeek truncates t to midnight of the first day of its week.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	offset := int(day.Weekday()) - int(c.WeekStart)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// InWeekOf reports whether t falls within the calendar week containing ref.
func (c Calendar) InWeekOf(t, ref time.Time) bool {
	start := c.StartOfWeek(ref)
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}

// BeforeDay reports whether t's calendar day is strictly before ref's.
func (c Calendar) BeforeDay(t, ref time.Time) bool {
	return c.StartOfDay(t).Before(c.StartOfDay(ref))
}
