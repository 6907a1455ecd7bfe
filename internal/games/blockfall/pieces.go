package blockfall

import "github.com/tinypulse/arcade/internal/core"

// ShapeID identifies a catalog shape. Board cells store it so locked blocks
// keep their color; Empty marks a free cell.
type ShapeID uint8

const (
	Empty ShapeID = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of playable shapes.
const ShapeCount = 7

// Orientation is a piece's 4x4 bounding box indexed [row][col]; 1 marks a block.
// Every shape shares this size so one rotation formula serves all of them.
type Orientation [4][4]uint8

// Shape is an immutable catalog entry.
type Shape struct {
	ID     ShapeID
	Name   string
	Layout Orientation // also the spawn orientation
	Color  core.Color
}

var catalog = [ShapeCount]Shape{
	{ID: ShapeI, Name: "I", Color: core.ColorSkyBlue, Layout: Orientation{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeJ, Name: "J", Color: core.ColorBlue, Layout: Orientation{
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeL, Name: "L", Color: core.ColorOrange, Layout: Orientation{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeO, Name: "O", Color: core.ColorYellow, Layout: Orientation{
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeS, Name: "S", Color: core.ColorGreen, Layout: Orientation{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeT, Name: "T", Color: core.ColorPurple, Layout: Orientation{
		{0, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	{ID: ShapeZ, Name: "Z", Color: core.ColorRed, Layout: Orientation{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
}

// ShapeFor looks up a shape by id.
func ShapeFor(id ShapeID) (Shape, bool) {
	if !id.Valid() {
		return Shape{}, false
	}
	return catalog[id-1], true
}

// Valid reports whether id names a catalog shape.
func (id ShapeID) Valid() bool {
	return id >= ShapeI && id <= ShapeZ
}

// Color returns the display color of the shape, ColorDefault for Empty.
func (id ShapeID) Color() core.Color {
	if s, ok := ShapeFor(id); ok {
		return s.Color
	}
	return core.ColorDefault
}

// String returns the shape letter.
func (id ShapeID) String() string {
	if s, ok := ShapeFor(id); ok {
		return s.Name
	}
	return "."
}

// RotateClockwise turns the 4x4 box a quarter turn clockwise:
// the cell at (row i, col j) moves to (row j, col 3-i).
func RotateClockwise(o Orientation) Orientation {
	var out Orientation
	for i := range 4 {
		for j := range 4 {
			out[j][3-i] = o[i][j]
		}
	}
	return out
}

// Filled reports whether (row, col) of the box holds a block.
func (o Orientation) Filled(row, col int) bool {
	return o[row][col] != 0
}

// Blocks returns the filled (row, col) offsets in row-major order.
func (o Orientation) Blocks() [][2]int {
	blocks := make([][2]int, 0, 4)
	for i := range 4 {
		for j := range 4 {
			if o.Filled(i, j) {
				blocks = append(blocks, [2]int{i, j})
			}
		}
	}
	return blocks
}
