package schedule

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestCanonicalJSONRoundTrip(t *testing.T) {
	raw := `[{"dayOfWeek":"monday","periods":[{"isOpen":true,"openTime":"09:00","closeTime":"18:00"}]},` +
		`{"dayOfWeek":"tuesday","periods":[{"isOpen":false,"openTime":"09:00","closeTime":"18:00"}]},` +
		`{"dayOfWeek":"wednesday","periods":[{"isOpen":false,"openTime":"09:00","closeTime":"18:00"}]},` +
		`{"dayOfWeek":"thursday","periods":[{"isOpen":false,"openTime":"09:00","closeTime":"18:00"}]},` +
		`{"dayOfWeek":"friday","periods":[{"isOpen":true,"openTime":"22:00","closeTime":"02:00"}]},` +
		`{"dayOfWeek":"saturday","periods":[{"isOpen":false,"openTime":"09:00","closeTime":"18:00"}]},` +
		`{"dayOfWeek":"sunday","periods":[{"isOpen":false,"openTime":"09:00","closeTime":"18:00"}]}]`

	var input []DayInput
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	weekly, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	out, err := json.Marshal(weekly)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != raw {
		t.Errorf("canonical input did not round-trip unchanged:\n in: %s\nout: %s", raw, out)
	}
}

func TestLegacyJSONDecodes(t *testing.T) {
	raw := `[{"dayOfWeek":"monday","isOpen":true,"openTime":"08:00","closeTime":"17:00"}]`

	var input []DayInput
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	weekly, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	expected := []Period{open("08:00", "17:00")}
	if !reflect.DeepEqual(weekly[0].Periods, expected) {
		t.Errorf("monday = %+v, expected %+v", weekly[0].Periods, expected)
	}
}

func TestFromWeekdayCoversWeek(t *testing.T) {
	if FromWeekday(testNow.Weekday()) != Monday {
		t.Errorf("2025-06-16 should map to monday")
	}
	seen := make(map[DayOfWeek]bool)
	for w := time.Sunday; w <= time.Saturday; w++ {
		seen[FromWeekday(w)] = true
	}
	if len(seen) != 7 {
		t.Errorf("FromWeekday covered %d distinct days, expected 7", len(seen))
	}
}
