package life

// Offset is a relative (row, col) displacement.
type Offset struct {
	DRow, DCol int
}

// Neighborhood lists the eight Moore-neighbourhood offsets.
var Neighborhood = [8]Offset{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// Rule applies the B3/S23 transition: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
