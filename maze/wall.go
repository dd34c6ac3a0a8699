package maze

// WallKey identifies the wall between two grid-adjacent cells. It is stored
// canonically with the row-major smaller cell first, so each adjacency has
// exactly one key. For a vertical wall A is the cell to the left, for a
// horizontal wall A is the cell on top.
type WallKey struct {
	A CellPosition
	B CellPosition
}

// NewWallKey builds the canonical key for the wall between a and b. The two
// positions must be grid-adjacent.
func NewWallKey(a, b CellPosition) (WallKey, error) {
	if _, err := a.DirectionTo(b); err != nil {
		return WallKey{}, err
	}
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return WallKey{A: a, B: b}, nil
}

// Wall is an edge between two grid-adjacent cells, either open or closed.
// Every wall starts closed; a wall is open exactly when both endpoint cells
// have a passage recorded toward each other.
type Wall struct {
	open bool
}

// Open opens the wall.
func (w *Wall) Open() {
	w.open = true
}

// IsOpen reports whether the wall is open.
func (w *Wall) IsOpen() bool {
	return w.open
}
