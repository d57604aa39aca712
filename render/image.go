package render

import (
	"image"
	"image/color"
	"image/color/palette"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sheikhrachel/cluster-gol/model"
)

const (
	captionPadding = 3
	maxPalette     = 256
)

// ToImage converts a color buffer to RGBA and enlarges it by an integer factor
func ToImage(buf *model.ColorBuffer, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i := 0; i < buf.Width*buf.Height; i++ {
		src.Pix[i*4+0] = channel(buf.Pix[i*3+0])
		src.Pix[i*4+1] = channel(buf.Pix[i*3+1])
		src.Pix[i*4+2] = channel(buf.Pix[i*3+2])
		src.Pix[i*4+3] = 0xff
	}
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, buf.Width*scale, buf.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}

// Caption writes text in the top-left corner, in black on light frames and white on dark ones
func Caption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	ink := color.Black
	if luminance(img.RGBAAt(0, 0)) < 0x80 {
		ink = color.White
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(captionPadding, captionPadding+face.Ascent),
	}
	d.DrawString(text)
}

func luminance(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// Quantize converts img to a paletted image. Frames with at most 256 distinct
// colors keep them exactly; richer frames are dithered onto the Plan 9 palette.
func Quantize(img *image.RGBA) *image.Paletted {
	bounds := img.Bounds()
	if pal, ok := exactPalette(img); ok {
		dst := image.NewPaletted(bounds, pal)
		draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
		return dst
	}
	dst := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, bounds, img, bounds.Min)
	return dst
}

func exactPalette(img *image.RGBA) (color.Palette, bool) {
	seen := make(map[color.RGBA]struct{}, maxPalette)
	var pal color.Palette
	for i := 0; i+3 < len(img.Pix); i += 4 {
		c := color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
		if _, ok := seen[c]; ok {
			continue
		}
		if len(pal) == maxPalette {
			return nil, false
		}
		seen[c] = struct{}{}
		pal = append(pal, c)
	}
	if len(pal) == 0 {
		pal = append(pal, color.Black)
	}
	return pal, true
}
