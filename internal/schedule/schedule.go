// Package schedule implements the store operating-hours model: a weekly
// recurring pattern of open/close periods per day (including periods that
// cross midnight) plus date-specific overrides. It is pure data-in/data-out
// and carries no HTTP or persistence dependency so it can be called both
// from the edit-form validation endpoint and from the save handler.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DayOfWeek is one of the seven fixed weekday values.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Days returns the seven weekdays in canonical order.
func Days() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsValid reports whether d is one of the seven known values.
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// FromWeekday maps a time.Weekday to its DayOfWeek value.
func FromWeekday(w time.Weekday) DayOfWeek {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Period is one open/close interval within a day. Times are local wall-clock
// "HH:mm" strings. When IsOpen is false the times are retained as UI defaults
// but have no semantic effect.
type Period struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// DaySchedule owns the list of periods for one weekday. Periods is never
// empty after normalization; a single closed period represents "closed all
// day".
type DaySchedule struct {
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	Periods   []Period  `json:"periods"`
}

// WeeklySchedule is exactly one DaySchedule per weekday in canonical order.
type WeeklySchedule []DaySchedule

// SpecialBusinessDay is a date-specific override. When present for a date it
// fully replaces the weekly periods for that date; periods are never merged.
type SpecialBusinessDay struct {
	Date    string   `json:"date"`
	Periods []Period `json:"periods"`
}

// DateLayout is the calendar-date format used by SpecialBusinessDay.
const DateLayout = "2006-01-02"

// Default period times used when synthesizing a day entry.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// ErrMalformedSchedule marks structurally broken input (unknown weekday,
// duplicate day entries, unparseable special date). It is a caller contract
// violation, distinct from the advisory validation findings.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Day returns the entry for the given weekday and false when the schedule
// does not contain it.
func (w WeeklySchedule) Day(d DayOfWeek) (DaySchedule, bool) {
	for _, ds := range w {
		if ds.DayOfWeek == d {
			return ds, true
		}
	}
	return DaySchedule{}, false
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrMalformedSchedule, date)
	}
	return t, nil
}
