package schedule

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"18:30", 1110},
		{"23:59", 1439},
	}

	for _, test := range tests {
		result, err := ToMinutes(test.input)
		if err != nil {
			t.Errorf("ToMinutes(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ToMinutes(%q) = %d, expected %d", test.input, result, test.expected)
		}
	}
}

func TestToMinutesInvalid(t *testing.T) {
	inputs := []string{"", "9", "24:00", "12:60", "ab:cd", "12:30:00", "-1:00", "12:-5"}

	for _, input := range inputs {
		if _, err := ToMinutes(input); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ToMinutes(%q) error = %v, expected ErrInvalidTimeFormat", input, err)
		}
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1110, "18:30"},
		{1439, "23:59"},
	}

	for _, test := range tests {
		result, err := FromMinutes(test.input)
		if err != nil {
			t.Errorf("FromMinutes(%d) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("FromMinutes(%d) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestFromMinutesOutOfRange(t *testing.T) {
	inputs := []int{-1, -30, 1440, 1500}

	for _, input := range inputs {
		if _, err := FromMinutes(input); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("FromMinutes(%d) error = %v, expected ErrInvalidTimeFormat", input, err)
		}
	}
}

func TestToMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		hhmm, err := FromMinutes(m)
		if err != nil {
			t.Fatalf("FromMinutes(%d) returned error: %v", m, err)
		}
		back, err := ToMinutes(hhmm)
		if err != nil {
			t.Fatalf("round trip of %d returned error: %v", m, err)
		}
		if back != m {
			t.Fatalf("round trip of %d = %d", m, back)
		}
	}
}
