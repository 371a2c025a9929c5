package common

import "image/color"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpColor blends a towards b by t in [0, 1], channel by channel in
// premultiplied space.
func LerpColor(a, b color.Color, t float32) color.RGBA {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	ch := func(x, y uint32) uint8 {
		return uint8(Lerp(float32(x>>8), float32(y>>8), t) + 0.5)
	}
	return color.RGBA{R: ch(ar, br), G: ch(ag, bg), B: ch(ab, bb), A: ch(aa, ba)}
}
