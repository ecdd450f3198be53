package schedule

import (
	"errors"
	"testing"
)

func kinds(findings []Finding) []FindingKind {
	out := make([]FindingKind, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestValidateCleanSchedule(t *testing.T) {
	weekly, _ := Normalize([]DayInput{
		{DayOfWeek: Monday, Periods: []Period{open("09:00", "12:00"), open("13:00", "18:00")}},
		{DayOfWeek: Friday, Periods: []Period{open("22:00", "02:00")}},
	})
	specials := []SpecialBusinessDay{
		{Date: "2025-07-01", Periods: []Period{closed("09:00", "18:00")}},
	}

	result, err := Validate(weekly, specials, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got findings: %+v", result.Findings)
	}
}

func TestValidateAccumulatesAllFindings(t *testing.T) {
	// One equal-time period, one overlapping pair and one past special day
	// submitted together: every finding must be reported, nothing
	// short-circuits.
	weekly, _ := Normalize([]DayInput{
		{DayOfWeek: Monday, Periods: []Period{open("10:00", "10:00")}},
		{DayOfWeek: Tuesday, Periods: []Period{open("10:00", "11:00"), open("10:30", "12:00")}},
	})
	specials := []SpecialBusinessDay{
		{Date: "2025-06-15", Periods: []Period{open("09:00", "18:00")}}, // yesterday
	}

	result, err := Validate(weekly, specials, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	counts := make(map[FindingKind]int)
	for _, k := range kinds(result.Findings) {
		counts[k]++
	}
	if counts[FindingEqualOpenCloseTime] != 1 {
		t.Errorf("EqualOpenCloseTime findings = %d, expected 1", counts[FindingEqualOpenCloseTime])
	}
	// Overlap is reported against both periods involved.
	if counts[FindingPeriodOverlap] != 2 {
		t.Errorf("PeriodOverlap findings = %d, expected 2", counts[FindingPeriodOverlap])
	}
	if counts[FindingPastSpecialDate] != 1 {
		t.Errorf("PastSpecialDate findings = %d, expected 1", counts[FindingPastSpecialDate])
	}
}

func TestValidateOverlapLocations(t *testing.T) {
	weekly, _ := Normalize([]DayInput{
		{DayOfWeek: Tuesday, Periods: []Period{open("10:00", "11:00"), open("10:30", "12:00")}},
	})

	result, err := Validate(weekly, nil, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	indexes := make(map[int]bool)
	for _, f := range result.Findings {
		if f.Kind != FindingPeriodOverlap {
			t.Errorf("unexpected finding kind %s", f.Kind)
			continue
		}
		if f.Day != Tuesday {
			t.Errorf("finding day = %s, expected tuesday", f.Day)
		}
		indexes[f.PeriodIndex] = true
	}
	if !indexes[0] || !indexes[1] {
		t.Errorf("overlap must annotate both periods, got indexes %v", indexes)
	}
}

func TestValidateSpecialDayPeriods(t *testing.T) {
	// A special day's own periods run through the same period and overlap
	// checks, independent of the weekly schedule.
	weekly, _ := Normalize(nil)
	specials := []SpecialBusinessDay{
		{Date: "2025-12-24", Periods: []Period{open("18:00", "18:00")}},
		{Date: "2025-12-25", Periods: []Period{open("22:00", "02:00"), open("23:00", "03:00")}},
	}

	result, err := Validate(weekly, specials, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	counts := make(map[FindingKind]int)
	for _, f := range result.Findings {
		counts[f.Kind]++
		if f.Date == "" {
			t.Errorf("special-day finding missing date: %+v", f)
		}
	}
	if counts[FindingEqualOpenCloseTime] != 1 || counts[FindingPeriodOverlap] != 2 {
		t.Errorf("finding counts = %v", counts)
	}
}

func TestValidatePastSpecialDateIndependentOfPeriods(t *testing.T) {
	specials := []SpecialBusinessDay{
		{Date: "2025-06-15", Periods: []Period{open("09:00", "18:00")}},
	}
	weekly, _ := Normalize(nil)

	result, err := Validate(weekly, specials, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if result.Valid {
		t.Fatal("yesterday's special day must block the save")
	}
	if result.Findings[0].Kind != FindingPastSpecialDate {
		t.Errorf("finding kind = %s, expected PastSpecialDate", result.Findings[0].Kind)
	}
	if result.Findings[0].PeriodIndex != -1 {
		t.Errorf("entry-level finding should carry period index -1, got %d", result.Findings[0].PeriodIndex)
	}
}

func TestValidateTodaySpecialDateAllowed(t *testing.T) {
	specials := []SpecialBusinessDay{
		{Date: testNow.Format(DateLayout), Periods: []Period{open("09:00", "18:00")}},
	}
	weekly, _ := Normalize(nil)

	result, err := Validate(weekly, specials, testNow)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !result.Valid {
		t.Errorf("a special day dated today must be accepted, findings: %+v", result.Findings)
	}
}

func TestValidateMalformedSpecialDate(t *testing.T) {
	specials := []SpecialBusinessDay{{Date: "June 16"}}
	weekly, _ := Normalize(nil)

	if _, err := Validate(weekly, specials, testNow); !errors.Is(err, ErrMalformedSchedule) {
		t.Errorf("error = %v, expected ErrMalformedSchedule", err)
	}
}
