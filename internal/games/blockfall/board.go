package blockfall

// Board is the grid of locked blocks, indexed by (col, row) with row 0 at the top.
// Rows above the top edge (negative) are never stored; they count as free so a
// piece can spawn partly off-screen.
type Board struct {
	rows  int
	cols  int
	cells [][]ShapeID // [row][col]
}

// NewBoard creates an empty rows x cols board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]ShapeID, rows)
	for r := range b.cells {
		b.cells[r] = make([]ShapeID, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// IsInside reports whether a block at (col, row) is within the walls and
// above the floor. Negative rows are inside.
func (b *Board) IsInside(col, row int) bool {
	return col >= 0 && col < b.cols && row < b.rows
}

// IsOccupied reports whether (col, row) blocks a piece.
// Rows above the top are always free; anything past the walls or floor is occupied.
func (b *Board) IsOccupied(col, row int) bool {
	if row < 0 {
		return false
	}
	if !b.IsInside(col, row) {
		return true
	}
	return b.cells[row][col] != Empty
}

// Cell returns the shape stored at (col, row), or Empty outside the stored grid.
func (b *Board) Cell(col, row int) ShapeID {
	if row < 0 || !b.IsInside(col, row) {
		return Empty
	}
	return b.cells[row][col]
}

// set writes one cell; coordinates outside the stored grid are ignored.
func (b *Board) set(col, row int, id ShapeID) {
	if row < 0 || !b.IsInside(col, row) {
		return
	}
	b.cells[row][col] = id
}

// Merge locks p into the board. Blocks above the top edge are dropped.
func (b *Board) Merge(p Piece) {
	for _, cell := range p.Cells() {
		b.set(cell[0], cell[1], p.Shape)
	}
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows are scanned bottom-up; after a removal the same index is checked again
// because the row above has just moved into it.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for r := b.rows - 1; r >= 0; {
		if !b.rowFull(r) {
			r--
			continue
		}
		b.collapse(r)
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(r int) bool {
	for _, id := range b.cells[r] {
		if id == Empty {
			return false
		}
	}
	return true
}

// collapse drops every row above r by one and blanks the top row.
func (b *Board) collapse(r int) {
	for row := r; row > 0; row-- {
		copy(b.cells[row], b.cells[row-1])
	}
	clear(b.cells[0])
}

// Reset empties the board.
func (b *Board) Reset() {
	for r := range b.cells {
		clear(b.cells[r])
	}
}

// Cells returns a copy of the grid indexed [row][col].
func (b *Board) Cells() [][]ShapeID {
	out := make([][]ShapeID, b.rows)
	for r := range b.cells {
		out[r] = make([]ShapeID, b.cols)
		copy(out[r], b.cells[r])
	}
	return out
}
