package vbios

import "strings"

// Offsets holds the detected anchor positions in HexView coordinates. A nil
// field means the anchor was not (or not yet) detected. When both are set,
// Header < Footer and both are even.
type Offsets struct {
	Header *int
	Footer *int
}

// segment is one piece of an anchor pattern: a literal run of hex digits, or
// a fixed-length wildcard run that accepts any hex digits.
type segment struct {
	lit string
	gap int
}

func lit(s string) segment { return segment{lit: s} }
func gap(n int) segment    { return segment{gap: n} }

func patternLen(segs []segment) int {
	n := 0
	for _, seg := range segs {
		n += len(seg.lit) + seg.gap
	}
	return n
}

func headerPattern() []segment {
	return []segment{lit(headerMagic), gap(headerSizeGap), lit(headerJump), gap(headerEntryGap), lit(headerTail)}
}

// DetectHeader returns the HexView offset of the option-ROM header anchor.
//
// The leftmost match wins. If the image carries a header-shaped byte
// sequence before the real entry point, that earlier sequence is reported;
// this matches the historical behavior the tool's users rely on and is a
// documented policy, not a defect.
func DetectHeader(view HexView) (int, error) {
	pos := findPattern(view, headerPattern())
	if pos < 0 {
		return 0, ErrHeaderNotFound
	}
	return pos, nil
}

// DetectFooter tries each catalog entry in order and returns the HexView
// offset and layout of the first entry that matches anywhere in the view.
// Catalog order, not buffer position, is the tie-break between layouts: an
// entry later in the catalog never wins, even when it matches earlier in
// the buffer.
func DetectFooter(view HexView, catalog []FooterLayout) (int, FooterLayout, error) {
	for _, layout := range catalog {
		if pos := findPattern(view, layout.pattern()); pos >= 0 {
			return pos, layout, nil
		}
	}
	return 0, FooterLayout{}, ErrFooterNotFound
}

// findPattern returns the smallest byte-aligned (even) view offset at which
// the pattern matches, or -1. Every pattern starts with a literal; the scan
// jumps between occurrences of that literal and verifies the remaining
// segments at fixed distances, so no backtracking over wildcard content
// ever happens.
func findPattern(view HexView, segs []segment) int {
	s := string(view)
	total := patternLen(segs)
	first := segs[0].lit
	for from := 0; ; {
		i := strings.Index(s[from:], first)
		if i < 0 {
			return -1
		}
		i += from
		if i%2 != 0 {
			// A match straddling a byte boundary cannot be a real
			// anchor; every pattern is whole-byte literals and
			// whole-byte gaps.
			from = i + 1
			continue
		}
		if i+total > len(s) {
			return -1
		}
		if matchAt(s, i, segs) {
			return i
		}
		from = i + 2
	}
}

func matchAt(s string, at int, segs []segment) bool {
	for _, seg := range segs {
		if seg.lit != "" {
			if s[at:at+len(seg.lit)] != seg.lit {
				return false
			}
			at += len(seg.lit)
			continue
		}
		for j := 0; j < seg.gap; j++ {
			if !isHexDigit(s[at+j]) {
				return false
			}
		}
		at += seg.gap
	}
	return true
}

// countMarker counts byte-aligned occurrences of marker in s. Occurrences do
// not overlap; the scan resumes after each hit.
func countMarker(s, marker string) int {
	n := 0
	for from := 0; ; {
		i := strings.Index(s[from:], marker)
		if i < 0 {
			return n
		}
		i += from
		if i%2 != 0 {
			from = i + 1
			continue
		}
		n++
		from = i + len(marker)
	}
}

// indexMarker returns the first byte-aligned occurrence of marker in s,
// or -1.
func indexMarker(s, marker string) int {
	for from := 0; ; {
		i := strings.Index(s[from:], marker)
		if i < 0 {
			return -1
		}
		i += from
		if i%2 == 0 {
			return i
		}
		from = i + 1
	}
}
