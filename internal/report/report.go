// Package report summarizes one detection run over a ROM image in a form
// suitable for machine consumption: the inspect command's --json output and
// the API responses.
package report

import (
	"errors"

	json "github.com/goccy/go-json"

	"github.com/samcharles93/vfiopatch/pkg/vbios"
)

// Report describes the outcome of one run. Offsets are reported both in hex
// view coordinates (as the detector found them) and as byte positions in
// the original image.
type Report struct {
	ImageSize     int            `json:"image_size"`
	HeaderOffset  int            `json:"header_offset"`
	HeaderHex     int            `json:"header_offset_hex"`
	FooterOffset  *int           `json:"footer_offset,omitempty"`
	FooterHex     *int           `json:"footer_offset_hex,omitempty"`
	Series        string         `json:"series,omitempty"`
	FooterSkipped bool           `json:"footer_skipped,omitempty"`
	Sanity        *SanityFinding `json:"sanity,omitempty"`
	SplicedSize   int            `json:"spliced_size"`
}

// SanityFinding records the sanity stage outcome. Rule and counts are only
// set when a rule was violated.
type SanityFinding struct {
	OK      bool   `json:"ok"`
	Rule    string `json:"rule,omitempty"`
	Want    int    `json:"want,omitempty"`
	Got     int    `json:"got,omitempty"`
	Message string `json:"message,omitempty"`
}

// FromROM builds a Report for a ROM whose detection succeeded. sanityErr is
// the sanity stage outcome: nil for a pass; ignored entirely in
// footer-optional mode, where the stage never runs.
func FromROM(rom *vbios.ROM, imageSize int, sanityErr error, splicedSize int) Report {
	r := Report{
		ImageSize:     imageSize,
		FooterSkipped: rom.FooterSkipped(),
		Series:        rom.Series(),
		SplicedSize:   splicedSize,
	}
	offsets := rom.Offsets()
	if offsets.Header != nil {
		r.HeaderHex = *offsets.Header
		r.HeaderOffset = *offsets.Header / 2
	}
	if offsets.Footer != nil {
		hexPos := *offsets.Footer
		bytePos := hexPos / 2
		r.FooterHex = &hexPos
		r.FooterOffset = &bytePos
	}
	if !rom.FooterSkipped() {
		r.Sanity = sanityFinding(sanityErr)
	}
	return r
}

func sanityFinding(err error) *SanityFinding {
	if err == nil {
		return &SanityFinding{OK: true}
	}
	f := &SanityFinding{Message: err.Error()}
	var sErr *vbios.SanityError
	if errors.As(err, &sErr) {
		f.Rule = string(sErr.Rule)
		f.Want = sErr.Want
		f.Got = sErr.Got
	}
	return f
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
