package schedule

// Overlaps reports whether two open periods of the same day conflict.
// Both periods must already be individually valid; closed or unparseable
// periods never overlap anything (their findings are reported separately).
//
// Three cases, keyed on the overnight classification of each period:
//   - both same-day: standard half-open interval test.
//   - both overnight: always a conflict, since two midnight-crossing periods
//     on the same day necessarily share minutes around midnight.
//   - exactly one overnight: either boundary of the same-day period falls
//     inside the overnight period's wraparound footprint.
//
// The result is symmetric: Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b Period) bool {
	if !a.IsOpen || !b.IsOpen {
		return false
	}
	aOpen, err := ToMinutes(a.OpenTime)
	if err != nil {
		return false
	}
	aClose, err := ToMinutes(a.CloseTime)
	if err != nil {
		return false
	}
	bOpen, err := ToMinutes(b.OpenTime)
	if err != nil {
		return false
	}
	bClose, err := ToMinutes(b.CloseTime)
	if err != nil {
		return false
	}

	aOvernight := aOpen > aClose
	bOvernight := bOpen > bClose

	switch {
	case aOvernight && bOvernight:
		return true
	case aOvernight:
		return overlapsOvernight(aOpen, aClose, bOpen, bClose)
	case bOvernight:
		return overlapsOvernight(bOpen, bClose, aOpen, aClose)
	default:
		return aOpen < bClose && aClose > bOpen
	}
}

// overlapsOvernight decides the mixed case with the overnight period first.
// The overnight footprint runs from its open time through midnight to its
// close time the following morning; the other period conflicts when either
// of its boundaries lands in that footprint.
func overlapsOvernight(overnightOpen, overnightClose, otherOpen, otherClose int) bool {
	return otherOpen <= overnightClose || otherOpen >= overnightOpen ||
		otherClose <= overnightClose || otherClose >= overnightOpen
}

// overlapPair identifies the two period indexes of one conflict.
type overlapPair struct {
	first, second int
}

// findOverlaps returns every conflicting unordered pair among a day's
// periods, by index.
func findOverlaps(periods []Period) []overlapPair {
	var pairs []overlapPair
	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			if Overlaps(periods[i], periods[j]) {
				pairs = append(pairs, overlapPair{first: i, second: j})
			}
		}
	}
	return pairs
}
