package vbios

import "bytes"

// Fixture builders for synthetic ROM images. Filler bytes are chosen so no
// accidental anchor or marker sequences appear: none of 0x00, 0x11, 0x22 or
// 0x33 neighbor into "55aa", "564e", "NPDS" or "NPDE".

func fxHeader() []byte {
	h := []byte{0x55, 0xaa, 0x80, 0xeb}
	h = append(h, bytes.Repeat([]byte{0x11}, 10)...)
	return append(h, []byte("VIDEO")...)
}

// fxBody is a well-formed inter-anchor region: one NPDS, three NPDE, two of
// them after the NPDS.
func fxBody() []byte {
	var b []byte
	b = append(b, bytes.Repeat([]byte{0x00}, 16)...)
	b = append(b, []byte("NPDE")...)
	b = append(b, bytes.Repeat([]byte{0x00}, 8)...)
	b = append(b, []byte("NPDS")...)
	b = append(b, bytes.Repeat([]byte{0x00}, 8)...)
	b = append(b, []byte("NPDE")...)
	b = append(b, bytes.Repeat([]byte{0x00}, 8)...)
	b = append(b, []byte("NPDE")...)
	b = append(b, bytes.Repeat([]byte{0x00}, 4)...)
	return b
}

func fxFooter(layout FooterLayout) []byte {
	f := []byte("VN")
	f = append(f, bytes.Repeat([]byte{0x22}, layout.Gap/2)...)
	f = append(f, []byte("NPDS")...)
	f = append(f, bytes.Repeat([]byte{0x33}, footerTailGap/2)...)
	return append(f, []byte("NPDE")...)
}

func fxLayout(series string) FooterLayout {
	for _, l := range DefaultCatalog() {
		if l.Series == series {
			return l
		}
	}
	panic("unknown series " + series)
}

// fxImage is header + body + footer with nothing before or after, so the
// header sits at hex offset 0 and the footer at 2*len(header+body).
func fxImage(layout FooterLayout) []byte {
	img := fxHeader()
	img = append(img, fxBody()...)
	return append(img, fxFooter(layout)...)
}
