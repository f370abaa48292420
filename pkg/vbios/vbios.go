// Package vbios locates and extracts the passthrough-relevant region of an
// NVIDIA vBIOS ROM image.
//
// A full ROM dump carries vendor data before the option-ROM entry point and
// a generation-specific trailer after it. The package renders the image as
// lowercase hex digits, scans that view for the known header and footer
// anchors, verifies the NPDS/NPDE marker structure between them, and decodes
// the anchored range back into a fresh byte buffer. It never alters the
// bytes it extracts.
//
// Each run moves strictly forward: header detection, optional footer
// detection, optional sanity check, splice. A failed stage ends the run;
// nothing is retried or rolled back.
package vbios

// Anchor and marker literals as lowercase hex digit strings over a HexView.
const (
	// headerMagic and headerTail bracket the option-ROM entry point:
	// the 55aa expansion-ROM signature and the ASCII string "VIDEO".
	headerMagic = "55aa"
	headerJump  = "eb"
	headerTail  = "564944454f"

	// footerMagic is ASCII "VN", the lead-in of every known trailer layout.
	footerMagic = "564e"

	// markerNPDS and markerNPDE are ASCII "NPDS" and "NPDE". They appear
	// both inside the trailer layouts and as standalone markers whose
	// counts the sanity check verifies.
	markerNPDS = "4e504453"
	markerNPDE = "4e504445"
)

// Header wildcard runs, in hex digits: the ROM size byte between the magic
// and the jump opcode, and the entry-point bytes before "VIDEO".
const (
	headerSizeGap  = 2
	headerEntryGap = 20
)

// footerTailGap is the hex digit distance between NPDS and the trailing
// NPDE inside a trailer; it is the same for every known layout.
const footerTailGap = 56
