package utils

import "math"

// HSVToRGB converts a color with hue, saturation and value in [0,1] to RGB in [0,1].
// Hue outside [0,1) wraps around.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h -= math.Floor(h)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := v - c

	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
