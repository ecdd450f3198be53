package schedule

import "strings"

// Display labels. The 翌 marker denotes that the close time falls on the
// next calendar day.
const (
	ClosedLabel     = "closed"
	nextDayMark     = "翌"
	timeSeparator   = "〜"
	periodSeparator = " / "
)

// FormatPeriod renders one period for display: "10:00〜18:00" for a same-day
// period, "22:00〜翌02:00" for an overnight one, and the closed label for a
// closed period. Overnight is recomputed with the same open > close test the
// validator uses, so display and validation never disagree.
func FormatPeriod(p Period) string {
	if !p.IsOpen {
		return ClosedLabel
	}
	mark := ""
	if IsOvernight(p) {
		mark = nextDayMark
	}
	return p.OpenTime + timeSeparator + mark + p.CloseTime
}

// FormatDay renders a day's effective periods. A day with zero open periods
// renders as a single closed label; otherwise every period is rendered and
// joined.
func FormatDay(periods []Period) string {
	open := false
	for _, p := range periods {
		if p.IsOpen {
			open = true
			break
		}
	}
	if !open {
		return ClosedLabel
	}

	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		parts = append(parts, FormatPeriod(p))
	}
	return strings.Join(parts, periodSeparator)
}
