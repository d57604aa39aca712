package rules

// Offset is a relative (dx, dy) step to a neighboring cell.
type Offset struct {
	DX, DY int
}

// Moore lists the 8 surrounding cells, orthogonal and diagonal.
var Moore = []Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// VonNeumann lists the 4 orthogonal neighbors.
var VonNeumann = []Offset{
	{0, -1},
	{-1, 0}, {1, 0},
	{0, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors and dies otherwise; a dead cell
is born with exactly 3 live neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
