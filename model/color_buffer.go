package model

// ColorBuffer holds height x width RGB triples in [0,1], row-major
type ColorBuffer struct {
	Width, Height int
	Pix           []float64
}

// NewColorBuffer allocates a black buffer
func NewColorBuffer(width, height int) *ColorBuffer {
	return &ColorBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// At returns the color of the cell at (x, y)
func (b *ColorBuffer) At(x, y int) (r, g, bl float64) {
	i := (y*b.Width + x) * 3
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set paints the cell at (x, y); out-of-range coordinates are ignored
func (b *ColorBuffer) Set(x, y int, r, g, bl float64) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 3
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// Fill paints every cell with the same color
func (b *ColorBuffer) Fill(r, g, bl float64) {
	for i := 0; i < len(b.Pix); i += 3 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
	}
}

// Equal reports whether both buffers are bit-identical
func (b *ColorBuffer) Equal(other *ColorBuffer) bool {
	if b.Width != other.Width || b.Height != other.Height || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i, v := range b.Pix {
		if other.Pix[i] != v {
			return false
		}
	}
	return true
}
