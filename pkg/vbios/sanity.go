package vbios

import "fmt"

// SanityRule identifies one of the marker-count invariants checked between
// the header and footer anchors.
type SanityRule string

const (
	// RuleSingleNPDS: exactly one NPDS marker in the anchored range.
	RuleSingleNPDS SanityRule = "single-npds"
	// RuleThreeNPDE: exactly three NPDE markers in the anchored range.
	RuleThreeNPDE SanityRule = "three-npde"
	// RuleNPDEAfterNPDS: exactly two NPDE markers after the NPDS marker.
	RuleNPDEAfterNPDS SanityRule = "npde-after-npds"
)

// SanityError reports one violated marker-count rule together with the
// observed count. Whether a violation aborts the run is the caller's
// decision; the checker only reports.
type SanityError struct {
	Rule SanityRule
	Want int
	Got  int
}

func (e *SanityError) Error() string {
	switch e.Rule {
	case RuleSingleNPDS:
		return fmt.Sprintf("expected one NPDS marker between header and footer, found %d", e.Got)
	case RuleThreeNPDE:
		return fmt.Sprintf("expected three NPDE markers between header and footer, found %d (possible vBIOS without UEFI support)", e.Got)
	case RuleNPDEAfterNPDS:
		return fmt.Sprintf("expected two NPDE markers after the NPDS marker, found %d", e.Got)
	}
	return fmt.Sprintf("sanity rule %s violated: want %d, got %d", e.Rule, e.Want, e.Got)
}

func (e *SanityError) Unwrap() error { return ErrSanityCheck }

// CheckSanity verifies the marker structure of the half-open range
// [header, footer): exactly one NPDS, exactly three NPDE, and exactly two of
// those NPDE after the NPDS. A well-formed UEFI-capable image satisfies all
// three. Both offsets must be set.
func CheckSanity(view HexView, offsets Offsets) error {
	if offsets.Header == nil || offsets.Footer == nil {
		return fmt.Errorf("sanity check: %w", ErrOffsetsNotSet)
	}
	region := string(view)[*offsets.Header:*offsets.Footer]

	if n := countMarker(region, markerNPDS); n != 1 {
		return &SanityError{Rule: RuleSingleNPDS, Want: 1, Got: n}
	}
	if n := countMarker(region, markerNPDE); n != 3 {
		return &SanityError{Rule: RuleThreeNPDE, Want: 3, Got: n}
	}
	// The NPDS position is known to exist by the first rule. An NPDE cannot
	// start at the NPDS position itself, so counting from there is the same
	// as counting strictly after it.
	npds := indexMarker(region, markerNPDS)
	if n := countMarker(region[npds:], markerNPDE); n != 2 {
		return &SanityError{Rule: RuleNPDEAfterNPDS, Want: 2, Got: n}
	}
	return nil
}
