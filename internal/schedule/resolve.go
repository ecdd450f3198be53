package schedule

import "time"

// ResolvedDay is the effective schedule for one concrete calendar date.
type ResolvedDay struct {
	Date      string    `json:"date"`
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	Periods   []Period  `json:"periods"`
	IsSpecial bool      `json:"isSpecial"`
	IsToday   bool      `json:"isToday"`
}

// Resolve picks the periods that apply on the given date. A special business
// day matching the date (exact string match) replaces the weekly periods for
// that weekday entirely; otherwise the weekly entry applies. Past-dated
// specials are a validation concern, not a resolution one: no date-ordering
// filter happens here.
//
// IsToday is a display label only, computed against the caller's reference
// time with the time-of-day ignored.
func Resolve(date string, weekly WeeklySchedule, specials []SpecialBusinessDay, now time.Time) (ResolvedDay, error) {
	day, err := ParseDate(date)
	if err != nil {
		return ResolvedDay{}, err
	}

	resolved := ResolvedDay{
		Date:      date,
		DayOfWeek: FromWeekday(day.Weekday()),
		IsToday:   date == now.Format(DateLayout),
	}

	for _, special := range specials {
		if special.Date == date {
			resolved.Periods = special.Periods
			resolved.IsSpecial = true
			return resolved, nil
		}
	}

	if ds, ok := weekly.Day(resolved.DayOfWeek); ok {
		resolved.Periods = ds.Periods
	}
	return resolved, nil
}
