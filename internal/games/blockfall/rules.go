package blockfall

// IsLegal reports whether orientation o anchored at (col, row) fits on b:
// every block must be between the walls, above the floor and, once it is on
// the visible grid, on a free cell. Blocks above the top edge are allowed.
func IsLegal(b *Board, o Orientation, col, row int) bool {
	for _, block := range o.Blocks() {
		c, r := col+block[1], row+block[0]
		if !b.IsInside(c, r) || b.IsOccupied(c, r) {
			return false
		}
	}
	return true
}

// Fits reports whether p is legal on b.
func (b *Board) Fits(p Piece) bool {
	return IsLegal(b, p.Orientation, p.Col, p.Row)
}

// DefaultLinePoints is the classic award table indexed by rows cleared in one lock.
var DefaultLinePoints = []int{0, 100, 300, 500, 800}

// PointsFor returns the award for clearing n rows with table.
// Counts past the end of the table earn the last entry.
func PointsFor(table []int, n int) int {
	if n <= 0 || len(table) == 0 {
		return 0
	}
	if n >= len(table) {
		return table[len(table)-1]
	}
	return table[n]
}
