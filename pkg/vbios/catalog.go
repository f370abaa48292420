package vbios

// FooterLayout describes one historical trailer generation. Every layout has
// the same shape: the "VN" magic, Gap wildcard digits, the NPDS marker, 56
// wildcard digits, then the trailing NPDE marker. Only Gap differs between
// hardware generations.
type FooterLayout struct {
	// Series names the hardware generation the layout belongs to.
	Series string
	// Gap is the wildcard run between the magic and NPDS, in hex digits.
	Gap int
}

// defaultCatalog lists the known layouts, longest gap first. A newer trailer
// contains the same NPDS/NPDE tail as an older one, so a longer-gap entry
// must be tried before a shorter layout can be assumed.
var defaultCatalog = []FooterLayout{
	{Series: "RTX 30XX", Gap: 636},
	{Series: "RTX 2060", Gap: 572},
	{Series: "GTX 16XX / RTX 20XX", Gap: 476},
	{Series: "Quadro PXXX", Gap: 444},
	{Series: "GTX 10XX", Gap: 348},
	{Series: "GTX 980", Gap: 188},
	{Series: "GTX 400 - 900 Series", Gap: 124},
}

// DefaultCatalog returns the ordered list of known footer layouts. The
// returned slice is a copy; callers may reorder or trim it without
// affecting other runs.
func DefaultCatalog() []FooterLayout {
	out := make([]FooterLayout, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

func (l FooterLayout) pattern() []segment {
	return []segment{lit(footerMagic), gap(l.Gap), lit(markerNPDS), gap(footerTailGap), lit(markerNPDE)}
}
