package blockfall

// Piece is the falling piece: a shape, its current orientation and the
// board position of the orientation box's top-left corner.
type Piece struct {
	Shape       ShapeID
	Orientation Orientation
	Col         int
	Row         int
}

// SpawnPiece places a shape in its base orientation at (col, row).
func SpawnPiece(id ShapeID, col, row int) Piece {
	p := Piece{Shape: id, Col: col, Row: row}
	if s, ok := ShapeFor(id); ok {
		p.Orientation = s.Layout
	}
	return p
}

// Moved returns a copy shifted by (dc, dr).
func (p Piece) Moved(dc, dr int) Piece {
	p.Col += dc
	p.Row += dr
	return p
}

// Rotated returns a copy turned clockwise about the same anchor.
func (p Piece) Rotated() Piece {
	p.Orientation = RotateClockwise(p.Orientation)
	return p
}

// Cells returns the absolute (col, row) of every block.
func (p Piece) Cells() [][2]int {
	blocks := p.Orientation.Blocks()
	for i, b := range blocks {
		blocks[i] = [2]int{p.Col + b[1], p.Row + b[0]}
	}
	return blocks
}
