package schedule

import "testing"

func open(openTime, closeTime string) Period {
	return Period{IsOpen: true, OpenTime: openTime, CloseTime: closeTime}
}

func closed(openTime, closeTime string) Period {
	return Period{IsOpen: false, OpenTime: openTime, CloseTime: closeTime}
}

func TestCheckPeriod(t *testing.T) {
	tests := []struct {
		name     string
		period   Period
		expected []FindingKind
	}{
		{"same day", open("09:00", "18:00"), nil},
		{"overnight accepted", open("22:00", "02:00"), nil},
		{"one minute", open("09:00", "09:01"), nil},
		{"equal times rejected", open("10:00", "10:00"), []FindingKind{FindingEqualOpenCloseTime}},
		{"closed always valid", closed("10:00", "10:00"), nil},
		{"closed ignores garbage times", closed("xx", "yy"), nil},
		{"bad open time", open("9am", "18:00"), []FindingKind{FindingInvalidTimeFormat}},
		{"bad close time", open("09:00", "25:00"), []FindingKind{FindingInvalidTimeFormat}},
		{"both times bad", open("", ""), []FindingKind{FindingInvalidTimeFormat, FindingInvalidTimeFormat}},
	}

	for _, test := range tests {
		findings := CheckPeriod(test.period)
		if len(findings) != len(test.expected) {
			t.Errorf("%s: got %d findings, expected %d", test.name, len(findings), len(test.expected))
			continue
		}
		for i, f := range findings {
			if f.Kind != test.expected[i] {
				t.Errorf("%s: finding %d kind = %s, expected %s", test.name, i, f.Kind, test.expected[i])
			}
		}
	}
}

func TestIsOvernight(t *testing.T) {
	tests := []struct {
		period   Period
		expected bool
	}{
		{open("22:00", "02:00"), true},
		{open("23:59", "00:00"), true},
		{open("09:00", "18:00"), false},
		{open("00:00", "23:59"), false},
		{closed("22:00", "02:00"), false},
		{open("bad", "02:00"), false},
	}

	for _, test := range tests {
		if result := IsOvernight(test.period); result != test.expected {
			t.Errorf("IsOvernight(%s-%s open=%v) = %v, expected %v",
				test.period.OpenTime, test.period.CloseTime, test.period.IsOpen, result, test.expected)
		}
	}
}
