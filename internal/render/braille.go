package render

import "strings"

// Braille patterns pack 2x4 dots per character cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var brailleBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// BrailleFrame rasterizes the cloud at the current angle into braille
// characters, giving 2x4 the dot resolution of Frame on the same grid.
// Dots carry presence only, no shading: overlapping points OR into the same
// dot, so the result is iteration-order independent without a depth test.
func (r *Renderer) BrailleFrame() string {
	w, h := r.cfg.Width, r.cfg.Height
	subW, subH := w*2, h*4
	for i := range r.braille {
		r.braille[i] = 0x2800
	}

	for _, p := range r.cloud {
		fx, fy, _, ok := r.cam.project(r.cam.rotate(p, r.angle))
		if !ok {
			continue
		}
		sx, sy := int(fx*2), int(fy*4)
		if fx < 0 || sx >= subW || fy < 0 || sy >= subH {
			continue
		}
		r.braille[(sy/4)*w+sx/2] |= brailleBits[sy%4][sx%2]
	}

	var b strings.Builder
	b.Grow(h * (w*3 + 1)) // braille runes are 3 bytes in UTF-8
	for row := 0; row < h; row++ {
		b.WriteString(string(r.braille[row*w : (row+1)*w]))
		b.WriteByte('\n')
	}
	return b.String()
}
