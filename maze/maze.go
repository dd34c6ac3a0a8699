/*
Package maze provides the grid data model plus the generation and solving
algorithms for rectangular perfect mazes.

A Maze owns a flat buffer of Cell values and one Wall per grid-adjacent pair
of cells. Generate fills a blank maze with Wilson's algorithm, producing an
unbiased spanning tree with an entrance and an exit on the border. Solve runs
Tremaux's algorithm over the generated maze and labels the unique
entrance-to-exit path using only per-passage chalk marks.

Encode and Decode translate a finished maze to and from a row-major text
format consumed by downstream renderers.
*/
package maze

import (
	"fmt"
	"strings"
)

// invalidPos marks the entrance and exit before they are placed.
var invalidPos = CellPosition{Row: -1, Col: -1}

// Maze is a rectangular grid of cells and the walls between them. It is the
// shared substrate both algorithms mutate in place: blank at construction,
// a spanning tree after generation, path-labeled after solving.
type Maze struct {
	rows  int
	cols  int
	cells []Cell
	walls map[WallKey]*Wall

	entrance CellPosition
	exit     CellPosition
}

// New creates a blank maze: rows*cols cells with no passages and a closed
// wall for every grid-adjacent pair.
func New(rows, cols int) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	cells := make([]Cell, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells[row*cols+col] = newCell(CellPosition{Row: row, Col: col})
		}
	}

	walls := make(map[WallKey]*Wall)
	// Vertical walls
	for row := 0; row < rows; row++ {
		for col := 0; col < cols-1; col++ {
			key := WallKey{
				A: CellPosition{Row: row, Col: col},
				B: CellPosition{Row: row, Col: col + 1},
			}
			walls[key] = &Wall{}
		}
	}
	// Horizontal walls
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			key := WallKey{
				A: CellPosition{Row: row, Col: col},
				B: CellPosition{Row: row + 1, Col: col},
			}
			walls[key] = &Wall{}
		}
	}

	return &Maze{
		rows:     rows,
		cols:     cols,
		cells:    cells,
		walls:    walls,
		entrance: invalidPos,
		exit:     invalidPos,
	}, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int {
	return m.cols
}

// InBounds reports whether pos is inside the grid.
func (m *Maze) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// CellAt returns the cell at pos.
func (m *Maze) CellAt(pos CellPosition) (*Cell, error) {
	if !m.InBounds(pos) {
		return nil, fmt.Errorf("%s: %w", pos, ErrOutOfBounds)
	}
	return &m.cells[pos.Row*m.cols+pos.Col], nil
}

// WallBetween returns the wall separating the two grid-adjacent cells.
func (m *Maze) WallBetween(a, b CellPosition) (*Wall, error) {
	key, err := NewWallKey(a, b)
	if err != nil {
		return nil, err
	}
	wall, ok := m.walls[key]
	if !ok {
		return nil, fmt.Errorf("wall %s-%s: %w", key.A, key.B, ErrOutOfBounds)
	}
	return wall, nil
}

// OpenPassage opens the wall between two grid-adjacent cells and records a
// passage (no-mark state) in each cell toward the other.
func (m *Maze) OpenPassage(a, b CellPosition) error {
	cellA, err := m.CellAt(a)
	if err != nil {
		return err
	}
	cellB, err := m.CellAt(b)
	if err != nil {
		return err
	}
	dir, err := a.DirectionTo(b)
	if err != nil {
		return err
	}

	wall, err := m.WallBetween(a, b)
	if err != nil {
		return err
	}
	wall.Open()
	cellA.addExit(dir)
	cellB.addExit(dir.Opposite())
	return nil
}

// MarkExit increments the mark count of an existing passage at pos.
func (m *Maze) MarkExit(pos CellPosition, dir Direction) error {
	cell, err := m.CellAt(pos)
	if err != nil {
		return err
	}
	return cell.MarkExit(dir)
}

// SetEntrance records the entrance coordinates.
func (m *Maze) SetEntrance(pos CellPosition) error {
	if !m.InBounds(pos) {
		return fmt.Errorf("entrance %s: %w", pos, ErrOutOfBounds)
	}
	m.entrance = pos
	return nil
}

// SetExit records the exit coordinates.
func (m *Maze) SetExit(pos CellPosition) error {
	if !m.InBounds(pos) {
		return fmt.Errorf("exit %s: %w", pos, ErrOutOfBounds)
	}
	m.exit = pos
	return nil
}

// Entrance returns the entrance position and whether it has been set.
func (m *Maze) Entrance() (CellPosition, bool) {
	return m.entrance, m.entrance != invalidPos
}

// Exit returns the exit position and whether it has been set.
func (m *Maze) Exit() (CellPosition, bool) {
	return m.exit, m.exit != invalidPos
}

// OpenWallCount returns the number of open walls. A generated maze has
// exactly rows*cols - 1 of them.
func (m *Maze) OpenWallCount() int {
	count := 0
	for _, wall := range m.walls {
		if wall.IsOpen() {
			count++
		}
	}
	return count
}

// String provides a textual representation of the maze. The entrance is
// rendered as I, the exit as O, path cells as * and regular cells as spaces.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := &m.cells[row*m.cols+col]

			switch {
			case pos == m.entrance:
				cellRow += " I "
			case pos == m.exit:
				cellRow += " O "
			case cell.OnPath():
				cellRow += " * "
			default:
				cellRow += "   "
			}

			east := CellPosition{Row: row, Col: col + 1}
			if wall, err := m.WallBetween(pos, east); err == nil && wall.IsOpen() {
				cellRow += " "
			} else {
				cellRow += "|"
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			south := CellPosition{Row: row + 1, Col: col}
			if wall, err := m.WallBetween(pos, south); err == nil && wall.IsOpen() {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
