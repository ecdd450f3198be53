package schedule

import "fmt"

// DayInput is the lenient wire form of one day entry. Older clients sent a
// single open/close pair at the top level instead of a periods array; the
// two shapes are disambiguated here, once, instead of being sniffed at every
// use site.
type DayInput struct {
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	Periods   []Period  `json:"periods,omitempty"`

	// Legacy single-period shape.
	IsOpen    *bool  `json:"isOpen,omitempty"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// Input converts a canonical day entry back to the wire form, so that
// normalizing an already-normalized schedule is possible (and a no-op).
func (d DaySchedule) Input() DayInput {
	return DayInput{DayOfWeek: d.DayOfWeek, Periods: d.Periods}
}

// Inputs converts a whole weekly schedule to wire form.
func (w WeeklySchedule) Inputs() []DayInput {
	inputs := make([]DayInput, 0, len(w))
	for _, d := range w {
		inputs = append(inputs, d.Input())
	}
	return inputs
}

// Normalize completes a possibly partial or legacy schedule into the
// canonical shape: exactly seven days in monday..sunday order, each with a
// non-empty periods list. Missing days become a single closed default
// period, legacy entries are wrapped into a one-element periods list, and
// already-canonical entries are kept verbatim, which makes the operation
// idempotent.
//
// An unknown dayOfWeek or a duplicate entry for the same day is a contract
// violation reported as ErrMalformedSchedule.
func Normalize(input []DayInput) (WeeklySchedule, error) {
	byDay := make(map[DayOfWeek]DayInput, len(input))
	for _, entry := range input {
		if !entry.DayOfWeek.IsValid() {
			return nil, fmt.Errorf("%w: unknown dayOfWeek %q", ErrMalformedSchedule, entry.DayOfWeek)
		}
		if _, dup := byDay[entry.DayOfWeek]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %s", ErrMalformedSchedule, entry.DayOfWeek)
		}
		byDay[entry.DayOfWeek] = entry
	}

	weekly := make(WeeklySchedule, 0, 7)
	for _, day := range Days() {
		entry, ok := byDay[day]
		if !ok {
			weekly = append(weekly, defaultDaySchedule(day))
			continue
		}
		if len(entry.Periods) > 0 {
			weekly = append(weekly, DaySchedule{DayOfWeek: day, Periods: entry.Periods})
			continue
		}
		if entry.IsOpen != nil {
			weekly = append(weekly, DaySchedule{
				DayOfWeek: day,
				Periods: []Period{{
					IsOpen:    *entry.IsOpen,
					OpenTime:  entry.OpenTime,
					CloseTime: entry.CloseTime,
				}},
			})
			continue
		}
		weekly = append(weekly, defaultDaySchedule(day))
	}
	return weekly, nil
}

func defaultDaySchedule(day DayOfWeek) DaySchedule {
	return DaySchedule{
		DayOfWeek: day,
		Periods: []Period{{
			IsOpen:    false,
			OpenTime:  DefaultOpenTime,
			CloseTime: DefaultCloseTime,
		}},
	}
}

// IsOpenDay reports whether the day counts as open for summary purposes:
// at least one of its periods is open.
func (d DaySchedule) IsOpenDay() bool {
	for _, p := range d.Periods {
		if p.IsOpen {
			return true
		}
	}
	return false
}

// SetDayOpen toggles a whole day. Closing flips every period to closed but
// keeps their times, so nothing is lost when the day is toggled back.
// Opening a day that has no previously-open period inserts one default open
// period; otherwise every existing period is flipped to open.
func SetDayOpen(d DaySchedule, open bool) DaySchedule {
	out := DaySchedule{DayOfWeek: d.DayOfWeek, Periods: make([]Period, len(d.Periods))}
	copy(out.Periods, d.Periods)

	if !open {
		for i := range out.Periods {
			out.Periods[i].IsOpen = false
		}
		return out
	}

	if len(out.Periods) == 0 {
		out.Periods = []Period{{IsOpen: true, OpenTime: DefaultOpenTime, CloseTime: DefaultCloseTime}}
		return out
	}
	for i := range out.Periods {
		out.Periods[i].IsOpen = true
	}
	return out
}
