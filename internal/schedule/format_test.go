package schedule

import "testing"

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		period   Period
		expected string
	}{
		{open("09:00", "18:00"), "09:00〜18:00"},
		{open("22:00", "02:00"), "22:00〜翌02:00"},
		{open("23:59", "00:00"), "23:59〜翌00:00"},
		{closed("09:00", "18:00"), "closed"},
	}

	for _, test := range tests {
		if result := FormatPeriod(test.period); result != test.expected {
			t.Errorf("FormatPeriod(%+v) = %q, expected %q", test.period, result, test.expected)
		}
	}
}

func TestFormatDay(t *testing.T) {
	tests := []struct {
		name     string
		periods  []Period
		expected string
	}{
		{"single period", []Period{open("09:00", "18:00")}, "09:00〜18:00"},
		{"overnight", []Period{open("22:00", "02:00")}, "22:00〜翌02:00"},
		{"multiple periods", []Period{open("11:00", "15:00"), open("17:00", "22:00")}, "11:00〜15:00 / 17:00〜22:00"},
		{"zero open periods", []Period{closed("09:00", "18:00")}, "closed"},
		{"empty day", nil, "closed"},
		{"mixed keeps closed slot visible", []Period{open("09:00", "12:00"), closed("13:00", "18:00")}, "09:00〜12:00 / closed"},
	}

	for _, test := range tests {
		if result := FormatDay(test.periods); result != test.expected {
			t.Errorf("%s: FormatDay = %q, expected %q", test.name, result, test.expected)
		}
	}
}
