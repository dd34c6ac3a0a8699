package maze

import "fmt"

// Direction is one of the four cardinal directions. The numeric order
// (North, South, East, West) is also the tie-break priority used when the
// solver picks between equally marked passages.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// numDirections is the number of cardinal directions.
const numDirections = 4

// invalidDirection marks direction bookkeeping that has not been set yet,
// such as the entry direction before the solver takes its first step.
const invalidDirection Direction = -1

var directionNames = [numDirections]string{"North", "South", "East", "West"}

var opposites = [numDirections]Direction{South, North, West, East}

var deltas = [numDirections]CellPosition{
	{Row: -1, Col: 0}, // North
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: 1},  // East
	{Row: 0, Col: -1}, // West
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away from p in the given direction.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := deltas[d]
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// DirectionTo returns the cardinal direction leading from p to the
// grid-adjacent position other. It fails if the two positions are not
// adjacent.
func (p CellPosition) DirectionTo(other CellPosition) (Direction, error) {
	for d := North; d <= West; d++ {
		if p.Step(d) == other {
			return d, nil
		}
	}
	return invalidDirection, fmt.Errorf("%w: (%d, %d) and (%d, %d)", ErrNotAdjacent, p.Row, p.Col, other.Row, other.Col)
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
