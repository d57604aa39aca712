// Package polygons generates the rotating polygons animation: nested regular
// polygons that spin at staggered phases and cycle through the hue wheel.
package polygons

import (
	"math"

	"github.com/sheikhrachel/cluster-gol/model"
	"github.com/sheikhrachel/cluster-gol/utils"
)

// Params describes the canvas and the polygon family
type Params struct {
	Width, Height int
	NumPolygons   int
	Sides         int
	MinRadius     float64
	MaxRadius     float64
	TimeStep      float64 // animation time per frame
	Saturation    float64
	Value         float64
}

// DefaultParams returns the 800x600 six-hexagon animation
func DefaultParams() Params {
	return Params{
		Width:       800,
		Height:      600,
		NumPolygons: 6,
		Sides:       6,
		MinRadius:   50,
		MaxRadius:   200,
		TimeStep:    0.1,
		Saturation:  0.8,
		Value:       0.9,
	}
}

// Generator renders frames for a fixed set of params
type Generator struct {
	p Params
}

func NewGenerator(p Params) *Generator {
	return &Generator{p: p}
}

// Frame draws frame i on a black canvas
func (g *Generator) Frame(i int) *model.ColorBuffer {
	p := g.p
	canvas := model.NewColorBuffer(p.Width, p.Height)
	cx, cy := float64(p.Width/2), float64(p.Height/2)
	t := float64(i) * p.TimeStep

	for k := range p.NumPolygons {
		radius := p.MinRadius
		if p.NumPolygons > 1 {
			radius += (p.MaxRadius - p.MinRadius) * float64(k) / float64(p.NumPolygons-1)
		}
		rotation := t + float64(k)*math.Pi/float64(p.NumPolygons)

		hue := math.Mod(t*0.01+float64(k)*0.2, 1.0)
		r, gr, b := utils.HSVToRGB(hue, p.Saturation, p.Value)

		xs, ys := vertices(cx, cy, radius, rotation, p.Sides)
		for j := range p.Sides {
			DrawLine(canvas, xs[j], ys[j], xs[j+1], ys[j+1], r, gr, b)
		}
	}
	return canvas
}

// vertices returns sides+1 points, the last repeating the first, truncated toward zero
func vertices(cx, cy, radius, rotation float64, sides int) (xs, ys []int) {
	xs = make([]int, sides+1)
	ys = make([]int, sides+1)
	for j := 0; j <= sides; j++ {
		angle := 2*math.Pi*float64(j)/float64(sides) + rotation
		xs[j] = int(cx + radius*math.Cos(angle))
		ys[j] = int(cy + radius*math.Sin(angle))
	}
	return xs, ys
}

// DrawLine rasterizes the segment (x1,y1)-(x2,y2) with Bresenham's algorithm.
// Both endpoints are drawn; points outside the canvas are skipped.
func DrawLine(canvas *model.ColorBuffer, x1, y1, x2, y2 int, r, g, b float64) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		canvas.Set(x1, y1, r, g, b)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
