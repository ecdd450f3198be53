package schedule

import "testing"

func TestOverlapsSameDay(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Period
		expected bool
	}{
		{"disjoint", open("09:00", "12:00"), open("13:00", "18:00"), false},
		{"partial overlap", open("10:00", "11:00"), open("10:30", "12:00"), true},
		{"contained", open("09:00", "18:00"), open("10:00", "11:00"), true},
		{"identical", open("09:00", "18:00"), open("09:00", "18:00"), true},
		{"touching endpoints allowed", open("09:00", "12:00"), open("12:00", "18:00"), false},
	}

	for _, test := range tests {
		if result := Overlaps(test.a, test.b); result != test.expected {
			t.Errorf("%s: Overlaps = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestOverlapsBothOvernight(t *testing.T) {
	// Two midnight-crossing periods on the same day always share minutes
	// around midnight, whatever their times.
	a := open("22:00", "02:00")
	b := open("23:00", "01:00")
	if !Overlaps(a, b) {
		t.Error("two overnight periods must always overlap")
	}
	if !Overlaps(open("23:59", "00:01"), open("18:00", "06:00")) {
		t.Error("two overnight periods must always overlap")
	}
}

func TestOverlapsMixed(t *testing.T) {
	overnight := open("22:00", "02:00")

	tests := []struct {
		name     string
		other    Period
		expected bool
	}{
		{"fully inside the gap", open("10:00", "18:00"), false},
		{"starts in morning tail", open("01:00", "03:00"), true},
		{"ends in evening head", open("21:00", "22:30"), true},
		{"spans the whole gap", open("03:00", "23:00"), true},
		{"open touches morning close", open("02:00", "10:00"), true},
		{"close touches evening open", open("03:00", "22:00"), true},
		{"strictly between boundaries", open("03:00", "21:00"), false},
	}

	for _, test := range tests {
		if result := Overlaps(overnight, test.other); result != test.expected {
			t.Errorf("%s: Overlaps = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	periods := []Period{
		open("09:00", "12:00"),
		open("10:00", "11:00"),
		open("22:00", "02:00"),
		open("23:00", "01:00"),
		open("01:00", "03:00"),
		open("03:00", "21:00"),
		open("12:00", "18:00"),
	}

	for _, a := range periods {
		for _, b := range periods {
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Errorf("Overlaps(%v, %v) is not symmetric", a, b)
			}
		}
	}
}

func TestOverlapsIgnoresClosedAndBroken(t *testing.T) {
	if Overlaps(closed("09:00", "18:00"), open("10:00", "11:00")) {
		t.Error("closed periods must never overlap anything")
	}
	if Overlaps(open("bad", "18:00"), open("10:00", "11:00")) {
		t.Error("unparseable periods must never overlap anything")
	}
}

func TestFindOverlaps(t *testing.T) {
	periods := []Period{
		open("09:00", "12:00"),
		open("11:00", "14:00"),
		open("15:00", "18:00"),
	}

	pairs := findOverlaps(periods)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, expected 1", len(pairs))
	}
	if pairs[0].first != 0 || pairs[0].second != 1 {
		t.Errorf("got pair (%d,%d), expected (0,1)", pairs[0].first, pairs[0].second)
	}
}
