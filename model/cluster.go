package model

import (
	"github.com/sheikhrachel/cluster-gol/rules"
	"github.com/sheikhrachel/cluster-gol/utils"
)

const (
	// clusterSizeCap is the size at which the color gradient saturates
	clusterSizeCap = 100.0

	hueSmall      = 0.6 // blue
	hueSpan       = 0.45
	clusterSat    = 0.9
	clusterBright = 0.9
)

// Connectivity selects which neighboring cells join a cluster
type Connectivity int

const (
	// Eight joins orthogonal and diagonal neighbors, matching the neighbor count of the update rule
	Eight Connectivity = 8
	// Four joins orthogonal neighbors only
	Four Connectivity = 4
)

func (c Connectivity) offsets() []rules.Offset {
	if c == Four {
		return rules.VonNeumann
	}
	return rules.Moore
}

// Clusters is the connected-component labeling of one grid
type Clusters struct {
	Width, Height int
	// Labels holds the cluster label of each cell in row-major order; 0 is background
	Labels []int32
	// Sizes[label-1] is the number of cells carrying label
	Sizes []int
}

// Count returns the number of clusters
func (c *Clusters) Count() int {
	return len(c.Sizes)
}

// Label returns the cluster label at (x, y), or 0 for background
func (c *Clusters) Label(x, y int) int {
	return int(c.Labels[y*c.Width+x])
}

// Largest returns the size of the biggest cluster, or 0 when there is none
func (c *Clusters) Largest() int {
	largest := 0
	for _, s := range c.Sizes {
		largest = max(largest, s)
	}
	return largest
}

// Colorer labels clusters of live cells and colors them by size
type Colorer struct {
	Connectivity Connectivity
}

// NewColorer returns a colorer using 8-connectivity
func NewColorer() *Colorer {
	return &Colorer{Connectivity: Eight}
}

// Label finds the connected components of live cells with an iterative flood fill.
// Labels are assigned from 1 in row-major order of each cluster's first cell.
func (c *Colorer) Label(g *Grid) *Clusters {
	var (
		w, h    = g.width, g.height
		offsets = c.Connectivity.offsets()
		labels  = make([]int32, w*h)
		sizes   []int
		stack   []int
	)

	for start, cell := range g.cells {
		if cell != Alive || labels[start] != 0 {
			continue
		}

		sizes = append(sizes, 0)
		label := int32(len(sizes))
		labels[start] = label
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			sizes[label-1]++

			x, y := idx%w, idx/w
			for _, o := range offsets {
				nx, ny := x+o.DX, y+o.DY
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				n := ny*w + nx
				if g.cells[n] == Alive && labels[n] == 0 {
					labels[n] = label
					stack = append(stack, n)
				}
			}
		}
	}

	return &Clusters{Width: w, Height: h, Labels: labels, Sizes: sizes}
}

// Colors returns a white buffer with every live cell painted in its cluster's size color
func (c *Colorer) Colors(g *Grid) *ColorBuffer {
	buf := NewColorBuffer(g.width, g.height)
	c.ColorsInto(g, buf)
	return buf
}

// ColorsInto is Colors writing into buf, which must match the grid dimensions
func (c *Colorer) ColorsInto(g *Grid, buf *ColorBuffer) *Clusters {
	clusters := c.Label(g)

	palette := make([][3]float64, len(clusters.Sizes))
	for i, size := range clusters.Sizes {
		r, gr, b := SizeColor(size)
		palette[i] = [3]float64{r, gr, b}
	}

	buf.Fill(1, 1, 1)
	for idx, label := range clusters.Labels {
		if label == 0 {
			continue
		}
		col := palette[label-1]
		copy(buf.Pix[idx*3:idx*3+3], col[:])
	}
	return clusters
}

// SizeColor maps a cluster size to RGB, from blue for single cells to yellow at 100 cells and beyond
func SizeColor(size int) (r, g, b float64) {
	normalized := min(float64(size)/clusterSizeCap, 1.0)
	hue := hueSmall - normalized*hueSpan
	return utils.HSVToRGB(hue, clusterSat, clusterBright)
}
