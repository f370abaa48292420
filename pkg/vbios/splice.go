package vbios

import "fmt"

// Splice extracts the anchored region of the view and decodes it back to raw
// bytes. With includeFooter the region is [header, footer) and the footer
// offset must be set; without it the region runs from the header to the end
// of the view. The result is exactly half the extracted digit count long and
// shares no storage with the source image.
//
// A decode failure here means the offsets and the view disagree about their
// own content and is always fatal.
func Splice(view HexView, offsets Offsets, includeFooter bool) ([]byte, error) {
	if offsets.Header == nil {
		return nil, fmt.Errorf("splice: header %w", ErrOffsetsNotSet)
	}
	start := *offsets.Header
	end := len(view)
	if includeFooter {
		if offsets.Footer == nil {
			return nil, fmt.Errorf("splice: %w", ErrFooterNotFound)
		}
		end = *offsets.Footer
	}
	out, err := view.DecodeRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("splice: %w", err)
	}
	return out, nil
}
