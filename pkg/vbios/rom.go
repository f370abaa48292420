package vbios

import "fmt"

// ROM is one run of the extraction pipeline over a single image. Construct
// with Load; the zero value is not usable.
//
// A run only moves forward: DetectOffsets must succeed before CheckSanity or
// Splice can run, offsets are written once, and no stage is retried. The
// image bytes handed to Load are never touched again; all work happens on
// the hex view, and Splice returns freshly allocated output.
type ROM struct {
	view          HexView
	offsets       Offsets
	series        string
	footerSkipped bool
}

// Load renders a raw image into its hex working form.
func Load(image []byte) *ROM {
	return &ROM{view: Encode(image)}
}

// DetectOffsets locates the header anchor and, unless disableFooter is set,
// the footer anchor. With disableFooter the footer is never searched for and
// the run proceeds in footer-optional mode: the splice will run to the end
// of the image and the sanity check is unavailable.
func (r *ROM) DetectOffsets(disableFooter bool) error {
	h, err := DetectHeader(r.view)
	if err != nil {
		return err
	}
	r.offsets.Header = &h

	if disableFooter {
		r.footerSkipped = true
		return nil
	}

	f, layout, err := DetectFooter(r.view, DefaultCatalog())
	if err != nil {
		return err
	}
	if f <= h {
		// A trailer match inside or before the header range is not a
		// usable footer.
		return fmt.Errorf("footer anchor at %d precedes header at %d: %w", f, h, ErrFooterNotFound)
	}
	r.offsets.Footer = &f
	r.series = layout.Series
	return nil
}

// CheckSanity runs the marker-count invariants over the anchored range. It
// requires a completed detection with a footer; in footer-optional mode
// there is no bounded range to check.
func (r *ROM) CheckSanity() error {
	return CheckSanity(r.view, r.offsets)
}

// Splice extracts the detected region and decodes it back to raw bytes. In
// footer-optional mode the region runs from the header to the end of the
// image.
func (r *ROM) Splice() ([]byte, error) {
	return Splice(r.view, r.offsets, !r.footerSkipped)
}

// View returns the hex rendering of the image.
func (r *ROM) View() HexView { return r.view }

// Offsets returns the anchor positions detected so far.
func (r *ROM) Offsets() Offsets { return r.offsets }

// Series names the hardware generation of the matched footer layout. It is
// empty until a footer has been detected.
func (r *ROM) Series() string { return r.series }

// FooterSkipped reports whether the run is in footer-optional mode.
func (r *ROM) FooterSkipped() bool { return r.footerSkipped }
