package schedule

import (
	"fmt"
	"time"
)

// FindingKind names a validation problem. Findings are data, not errors:
// every check runs to completion so the edit UI can show all problems at
// once, and the save button stays disabled while any finding exists.
type FindingKind string

const (
	FindingInvalidTimeFormat  FindingKind = "invalid_time_format"
	FindingEqualOpenCloseTime FindingKind = "equal_open_close_time"
	FindingPeriodOverlap      FindingKind = "period_overlap"
	FindingPastSpecialDate    FindingKind = "past_special_date"
)

// Finding locates one validation problem. Exactly one of Day and Date is
// set: Day for weekly-schedule findings, Date for special-day findings.
// PeriodIndex is -1 for findings about a whole entry rather than a single
// period.
type Finding struct {
	Kind        FindingKind `json:"kind"`
	Day         DayOfWeek   `json:"dayOfWeek,omitempty"`
	Date        string      `json:"date,omitempty"`
	PeriodIndex int         `json:"periodIndex"`
	Message     string      `json:"message"`
}

// Result aggregates all findings for one submitted schedule.
type Result struct {
	Valid    bool      `json:"valid"`
	Findings []Finding `json:"findings"`
}

// Validate runs the full validation pass over a normalized weekly schedule
// and its special-day overrides:
//
//  1. every period of every day individually,
//  2. overlap detection per day, each conflict reported against both
//     periods involved,
//  3. every special date must not precede today (date-only compare against
//     now),
//  4. the same period and overlap checks on each special day's own periods.
//
// Nothing short-circuits; all findings accumulate. A structurally broken
// special date fails fast with ErrMalformedSchedule instead.
func Validate(weekly WeeklySchedule, specials []SpecialBusinessDay, now time.Time) (Result, error) {
	var findings []Finding

	for _, day := range weekly {
		findings = append(findings, checkPeriods(day.Periods, locator{day: day.DayOfWeek})...)
	}

	today := now.Format(DateLayout)
	for _, special := range specials {
		if _, err := ParseDate(special.Date); err != nil {
			return Result{}, err
		}
		if special.Date < today {
			findings = append(findings, Finding{
				Kind:        FindingPastSpecialDate,
				Date:        special.Date,
				PeriodIndex: -1,
				Message:     "special business day is in the past",
			})
		}
		findings = append(findings, checkPeriods(special.Periods, locator{date: special.Date})...)
	}

	return Result{Valid: len(findings) == 0, Findings: findings}, nil
}

// locator tags findings with the weekly day or the special date they belong
// to.
type locator struct {
	day  DayOfWeek
	date string
}

func (l locator) apply(f Finding, periodIndex int) Finding {
	f.Day = l.day
	f.Date = l.date
	f.PeriodIndex = periodIndex
	return f
}

func checkPeriods(periods []Period, loc locator) []Finding {
	var findings []Finding
	for i, p := range periods {
		for _, f := range CheckPeriod(p) {
			findings = append(findings, loc.apply(f, i))
		}
	}

	for _, pair := range findOverlaps(periods) {
		msg := fmt.Sprintf("periods %d and %d overlap", pair.first+1, pair.second+1)
		findings = append(findings,
			loc.apply(Finding{Kind: FindingPeriodOverlap, Message: msg}, pair.first),
			loc.apply(Finding{Kind: FindingPeriodOverlap, Message: msg}, pair.second),
		)
	}
	return findings
}
