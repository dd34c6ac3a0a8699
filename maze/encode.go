package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell labels used by the row-major text format.
const (
	labelEntrance = "CellEntrance"
	labelExit     = "CellExit"
	labelPath     = "CellPath"
	labelRegular  = "CellRegular"
)

// Encode serializes a finished maze to the row-major text format consumed by
// downstream renderers.
//
// The first line is "<rows>,<cols>,". Each following line holds one grid
// row: per cell a label (CellEntrance, CellExit, CellPath or CellRegular),
// an S when the wall to the cell below is closed, then a comma, then an E
// when the wall to the right is closed. An absent S or E means the passage
// in that direction is open. Every row ends with a trailing comma.
func Encode(m *Maze) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("%d,%d,\n", m.rows, m.cols))

	entrance, _ := m.Entrance()
	exit, _ := m.Exit()

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := &m.cells[row*m.cols+col]

			switch {
			case pos == entrance:
				out.WriteString(labelEntrance)
			case pos == exit:
				out.WriteString(labelExit)
			case cell.OnPath():
				out.WriteString(labelPath)
			default:
				out.WriteString(labelRegular)
			}

			if row < m.rows-1 {
				if wall, err := m.WallBetween(pos, CellPosition{Row: row + 1, Col: col}); err == nil && !wall.IsOpen() {
					out.WriteString("S")
				}
			}
			if col < m.cols-1 {
				if wall, err := m.WallBetween(pos, CellPosition{Row: row, Col: col + 1}); err == nil && !wall.IsOpen() {
					out.WriteString("E,")
				} else {
					out.WriteString(",")
				}
			}
		}
		out.WriteString(",")
		if row < m.rows-1 {
			out.WriteString("\n")
		}
	}

	return out.String()
}

// Decode rebuilds a maze from its text form, restoring walls, entrance,
// exit and path labels. It accepts exactly the output of Encode.
func Decode(data string) (*Maze, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) < 1 {
		return nil, fmt.Errorf("decode maze: empty input")
	}

	header := strings.Split(lines[0], ",")
	if len(header) < 2 {
		return nil, fmt.Errorf("decode maze: malformed header %q", lines[0])
	}
	rows, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("decode maze: bad row count %q", header[0])
	}
	cols, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("decode maze: bad column count %q", header[1])
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(lines) != rows+1 {
		return nil, fmt.Errorf("decode maze: expected %d rows, got %d", rows, len(lines)-1)
	}

	for row := 0; row < rows; row++ {
		fields := strings.Split(lines[row+1], ",")
		if len(fields) < cols {
			return nil, fmt.Errorf("decode maze: row %d has %d cells, expected %d", row, len(fields), cols)
		}
		for col := 0; col < cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			field := fields[col]

			southClosed := false
			if strings.HasSuffix(field, "E") {
				field = strings.TrimSuffix(field, "E")
			} else if col < cols-1 {
				if err := m.OpenPassage(pos, CellPosition{Row: row, Col: col + 1}); err != nil {
					return nil, err
				}
			}
			if strings.HasSuffix(field, "S") {
				southClosed = true
				field = strings.TrimSuffix(field, "S")
			}
			if !southClosed && row < rows-1 {
				if err := m.OpenPassage(pos, CellPosition{Row: row + 1, Col: col}); err != nil {
					return nil, err
				}
			}

			cell, err := m.CellAt(pos)
			if err != nil {
				return nil, err
			}
			switch field {
			case labelEntrance:
				if err := m.SetEntrance(pos); err != nil {
					return nil, err
				}
			case labelExit:
				if err := m.SetExit(pos); err != nil {
					return nil, err
				}
			case labelPath:
				cell.LabelAsPath()
			case labelRegular:
			default:
				return nil, fmt.Errorf("decode maze: unknown cell label %q at %s", field, pos)
			}
		}
	}

	return m, nil
}
