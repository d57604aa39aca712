package model

import (
	"github.com/sheikhrachel/cluster-gol/rules"
)

// Cell states
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid is a height x width board of cells stored in row-major order
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// GridFromRows builds a grid from rows of '#'/'.' characters; any byte other than '#' or 'O' is dead
func GridFromRows(rows ...string) *Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' || row[x] == 'O' {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Cells exposes the backing slice, indexed by y*width+x
func (g *Grid) Cells() []uint8 {
	return g.cells
}

// Set sets a cell to alive (true) or dead (false); out-of-range coordinates are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	if alive {
		g.cells[y*g.width+x] = Alive
	} else {
		g.cells[y*g.width+x] = Dead
	}
}

// Get returns the state of a cell; anything outside the grid is dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x] == Alive
}

// CountNeighbors counts living neighbors, clipped at the grid border
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.width : (ny+1)*g.width]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(row[nx])
		}
	}

	return count
}

// nextRows writes the next state of rows [startRow, endRow) into next
func (g *Grid) nextRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[idx] == Alive) {
				next.cells[idx] = Alive
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]uint8, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '#' and '.'
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y*g.width+x] == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Glider travels one cell down and right every 4 generations
var Glider = []string{
	".#.",
	"..#",
	"###",
}

// Blinker flips between horizontal and vertical every generation
var Blinker = []string{
	"###",
}

// Stamp copies a '#'/'.' pattern onto the grid with its top-left corner at (startX, startY).
// Dead pattern cells clear the grid; parts falling outside the grid are dropped.
func (g *Grid) Stamp(startX, startY int, pattern []string) {
	for y, row := range pattern {
		for x := 0; x < len(row); x++ {
			g.Set(startX+x, startY+y, row[x] == '#' || row[x] == 'O')
		}
	}
}

// AddGlider stamps a glider at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	g.Stamp(startX, startY, Glider)
}

// AddOscillator stamps a horizontal blinker at the specified position
func (g *Grid) AddOscillator(startX, startY int) {
	g.Stamp(startX, startY, Blinker)
}
