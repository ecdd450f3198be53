package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeEmptyInput(t *testing.T) {
	weekly, err := Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize(nil) returned error: %v", err)
	}
	if len(weekly) != 7 {
		t.Fatalf("got %d days, expected 7", len(weekly))
	}
	for i, day := range Days() {
		if weekly[i].DayOfWeek != day {
			t.Errorf("day %d = %s, expected %s", i, weekly[i].DayOfWeek, day)
		}
		if len(weekly[i].Periods) != 1 {
			t.Fatalf("%s has %d periods, expected 1", day, len(weekly[i].Periods))
		}
		p := weekly[i].Periods[0]
		if p.IsOpen || p.OpenTime != DefaultOpenTime || p.CloseTime != DefaultCloseTime {
			t.Errorf("%s default period = %+v", day, p)
		}
	}
}

func TestNormalizeCanonicalOrder(t *testing.T) {
	// Input arrives in arbitrary order and misses most days.
	input := []DayInput{
		{DayOfWeek: Friday, Periods: []Period{open("10:00", "20:00")}},
		{DayOfWeek: Monday, Periods: []Period{open("09:00", "18:00")}},
	}

	weekly, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(weekly) != 7 {
		t.Fatalf("got %d days, expected 7", len(weekly))
	}
	if weekly[0].DayOfWeek != Monday || weekly[4].DayOfWeek != Friday {
		t.Errorf("canonical order violated: %s..%s", weekly[0].DayOfWeek, weekly[6].DayOfWeek)
	}
	if weekly[0].Periods[0] != open("09:00", "18:00") {
		t.Errorf("monday periods not kept verbatim: %+v", weekly[0].Periods)
	}
	if weekly[1].IsOpenDay() {
		t.Error("missing tuesday should normalize to a closed day")
	}
}

func TestNormalizeLegacyShape(t *testing.T) {
	input := []DayInput{
		{DayOfWeek: Monday, IsOpen: boolPtr(true), OpenTime: "08:00", CloseTime: "17:00"},
	}

	weekly, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	expected := []Period{open("08:00", "17:00")}
	if !reflect.DeepEqual(weekly[0].Periods, expected) {
		t.Errorf("legacy monday = %+v, expected %+v", weekly[0].Periods, expected)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := []DayInput{
		{DayOfWeek: Sunday, Periods: []Period{open("11:00", "15:00"), open("17:00", "22:00")}},
		{DayOfWeek: Wednesday, IsOpen: boolPtr(false), OpenTime: "09:00", CloseTime: "18:00"},
	}

	once, err := Normalize(input)
	if err != nil {
		t.Fatalf("first Normalize returned error: %v", err)
	}
	twice, err := Normalize(once.Inputs())
	if err != nil {
		t.Fatalf("second Normalize returned error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input []DayInput
	}{
		{"unknown day", []DayInput{{DayOfWeek: "funday"}}},
		{"duplicate day", []DayInput{{DayOfWeek: Monday}, {DayOfWeek: Monday}}},
	}

	for _, test := range tests {
		if _, err := Normalize(test.input); !errors.Is(err, ErrMalformedSchedule) {
			t.Errorf("%s: error = %v, expected ErrMalformedSchedule", test.name, err)
		}
	}
}

func TestSetDayOpen(t *testing.T) {
	day := DaySchedule{
		DayOfWeek: Monday,
		Periods:   []Period{open("09:00", "12:00"), open("13:00", "18:00")},
	}

	toggledOff := SetDayOpen(day, false)
	if toggledOff.IsOpenDay() {
		t.Error("day should be closed after toggling off")
	}
	// Times survive the round trip.
	toggledBack := SetDayOpen(toggledOff, true)
	if !reflect.DeepEqual(toggledBack, day) {
		t.Errorf("toggle round trip lost data: %+v", toggledBack)
	}

	// Opening a day with no periods inserts the default open period.
	empty := SetDayOpen(DaySchedule{DayOfWeek: Sunday}, true)
	if len(empty.Periods) != 1 || !empty.Periods[0].IsOpen {
		t.Errorf("opening an empty day = %+v", empty.Periods)
	}
	if empty.Periods[0].OpenTime != DefaultOpenTime || empty.Periods[0].CloseTime != DefaultCloseTime {
		t.Errorf("default open period = %+v", empty.Periods[0])
	}

	// The input is not mutated.
	if !day.Periods[0].IsOpen {
		t.Error("SetDayOpen mutated its input")
	}
}
