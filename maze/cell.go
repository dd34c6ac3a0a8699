package maze

import "fmt"

const (
	// noExit marks a direction with no passage.
	noExit = -1
	// Passage mark states used by the solver.
	noMarks  = 0
	oneMark  = 1
	twoMarks = 2
)

// Cell is a single grid position. It tracks, per cardinal direction, whether
// a passage exists and how many times the solver has used it as an exit, plus
// whether the cell ended up on the entrance-to-exit path.
//
// A slot in exits holds noExit when no passage exists in that direction, and
// a mark count (0, 1 or 2) otherwise. numExits always equals the number of
// slots holding a mark count.
type Cell struct {
	pos      CellPosition
	exits    [numDirections]int
	numExits int
	onPath   bool
}

func newCell(pos CellPosition) Cell {
	return Cell{
		pos:   pos,
		exits: [numDirections]int{noExit, noExit, noExit, noExit},
	}
}

// Position returns the cell's fixed grid position.
func (c *Cell) Position() CellPosition {
	return c.pos
}

// HasExit reports whether a passage exists in the given direction.
func (c *Cell) HasExit(dir Direction) bool {
	return c.exits[dir] != noExit
}

// Marks returns the mark count of the passage in the given direction, or -1
// if no passage exists there.
func (c *Cell) Marks(dir Direction) int {
	return c.exits[dir]
}

// NumExits returns the number of directions with a passage.
func (c *Cell) NumExits() int {
	return c.numExits
}

// addExit records a new passage in the given direction. Called by the maze
// when a wall is opened; passages are never added twice for one direction.
func (c *Cell) addExit(dir Direction) {
	if c.exits[dir] != noExit {
		return
	}
	c.exits[dir] = noMarks
	c.numExits++
}

// MarkExit increments the mark count of an existing passage. Marking a
// direction with no passage is a contract violation.
func (c *Cell) MarkExit(dir Direction) error {
	if c.exits[dir] == noExit {
		return fmt.Errorf("cell %s: mark %s: %w", c.pos, dir, ErrNoPassage)
	}
	c.exits[dir]++
	return nil
}

// IsDeadEnd reports whether the cell has exactly one passage.
func (c *Cell) IsDeadEnd() bool {
	return c.numExits == 1
}

// IsJunction reports whether the cell has more than two passages.
func (c *Cell) IsJunction() bool {
	return c.numExits > 2
}

// IsEntranceJunction reports whether the cell, knowing it is the maze
// entrance, counts as a junction. The entrance is a junction already at two
// passages, unlike ordinary cells which need more than two.
func (c *Cell) IsEntranceJunction() bool {
	return c.numExits >= 2
}

// OnlyDirMarked reports whether every passage other than dir is unmarked.
func (c *Cell) OnlyDirMarked(dir Direction) bool {
	for d := North; d <= West; d++ {
		if d != dir && c.exits[d] > noMarks {
			return false
		}
	}
	return true
}

// DirMarkedTwice reports whether the passage in the given direction has been
// marked twice. The entry passage has not received its second mark yet when
// this is evaluated, so the check is against one mark or more.
func (c *Cell) DirMarkedTwice(dir Direction) bool {
	return c.exits[dir] > oneMark
}

// AllButOneMarkedTwice reports whether every passage except one is exhausted
// (marked twice). A junction in this state is closed: it must be dropped from
// the live trail because only one usable passage remains.
func (c *Cell) AllButOneMarkedTwice() bool {
	numTwoMarks := 0
	for d := North; d <= West; d++ {
		if c.exits[d] > oneMark {
			numTwoMarks++
		}
	}
	return numTwoMarks == c.numExits-1
}

// DirFewestMarks returns the direction of the existing passage with the
// lowest mark count. Ties go to the earlier direction in the fixed
// North, South, East, West order.
func (c *Cell) DirFewestMarks() Direction {
	fewest := twoMarks + 1
	dir := North
	for d := North; d <= West; d++ {
		if c.exits[d] != noExit && c.exits[d] < fewest {
			fewest = c.exits[d]
			dir = d
		}
	}
	return dir
}

// OnlyOtherExit returns, for a corridor cell, the single passage direction
// other than dir. Calling it on a cell without exactly two passages, or with
// a dir that is not one of them, is a contract violation.
func (c *Cell) OnlyOtherExit(dir Direction) (Direction, error) {
	if c.numExits != 2 {
		return invalidDirection, fmt.Errorf("cell %s has %d passages: %w", c.pos, c.numExits, ErrNotCorridor)
	}
	if c.exits[dir] == noExit {
		return invalidDirection, fmt.Errorf("cell %s: entry %s: %w", c.pos, dir, ErrNoPassage)
	}
	for d := North; d <= West; d++ {
		if d != dir && c.exits[d] != noExit {
			return d, nil
		}
	}
	return invalidDirection, fmt.Errorf("cell %s: entry %s: %w", c.pos, dir, ErrNotCorridor)
}

// LabelAsPath marks the cell as part of the entrance-to-exit path.
func (c *Cell) LabelAsPath() {
	c.onPath = true
}

// OnPath reports whether the cell is on the entrance-to-exit path.
func (c *Cell) OnPath() bool {
	return c.onPath
}

// marksString renders the cell's per-direction marks, used in solver traces.
func (c *Cell) marksString() string {
	return fmt.Sprintf("marks North: %d, South: %d, East: %d, West: %d",
		c.exits[North], c.exits[South], c.exits[East], c.exits[West])
}
