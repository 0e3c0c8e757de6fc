package render

import "image/color"

// FillGrayRGBA expands gray intensities into opaque RGBA pixels in buf.
func FillGrayRGBA(buf []byte, gray []uint8) {
	for i, g := range gray {
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 0xff
	}
}

// FillRampRGBA maps gray intensities onto the linear ramp from lo (0) to hi
// (255) and writes RGBA pixels into buf.
func FillRampRGBA(buf []byte, gray []uint8, lo, hi color.Color) {
	lr, lg, lb, la := lo.RGBA()
	hr, hg, hb, ha := hi.RGBA()
	for i, g := range gray {
		base := i * 4
		buf[base+0] = lerp8(lr, hr, g)
		buf[base+1] = lerp8(lg, hg, g)
		buf[base+2] = lerp8(lb, hb, g)
		buf[base+3] = lerp8(la, ha, g)
	}
}

// lerp8 interpolates between two 16-bit color components and returns the
// result as 8 bits.
func lerp8(a, b uint32, t uint8) uint8 {
	a8, b8 := int(a>>8), int(b>>8)
	return uint8(a8 + (b8-a8)*int(t)/255)
}
