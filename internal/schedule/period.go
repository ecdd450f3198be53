package schedule

// IsOvernight reports whether an open period crosses midnight, i.e. its
// close time read as minutes since midnight is numerically less than its
// open time. Closed or unparseable periods are never overnight. The same
// test drives overlap detection and display formatting so the two can never
// disagree.
func IsOvernight(p Period) bool {
	if !p.IsOpen {
		return false
	}
	open, err := ToMinutes(p.OpenTime)
	if err != nil {
		return false
	}
	close, err := ToMinutes(p.CloseTime)
	if err != nil {
		return false
	}
	return open > close
}

// CheckPeriod validates a single period. A closed period is always valid.
// An open period must have parseable times, and its open and close minutes
// must differ: an equal pair is rejected because it cannot unambiguously
// mean "open 0 minutes" or "open 24 hours". Any other relation is accepted;
// open > close is a legal overnight period.
func CheckPeriod(p Period) []Finding {
	if !p.IsOpen {
		return nil
	}

	var findings []Finding
	open, openErr := ToMinutes(p.OpenTime)
	if openErr != nil {
		findings = append(findings, Finding{
			Kind:    FindingInvalidTimeFormat,
			Message: "open time is not a valid HH:mm value",
		})
	}
	close, closeErr := ToMinutes(p.CloseTime)
	if closeErr != nil {
		findings = append(findings, Finding{
			Kind:    FindingInvalidTimeFormat,
			Message: "close time is not a valid HH:mm value",
		})
	}
	if openErr != nil || closeErr != nil {
		return findings
	}

	if open == close {
		findings = append(findings, Finding{
			Kind:    FindingEqualOpenCloseTime,
			Message: "open and close time must differ",
		})
	}
	return findings
}
