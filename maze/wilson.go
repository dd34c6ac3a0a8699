package maze

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Generate fills a blank maze using Wilson's algorithm: repeated loop-erased
// random walks from cells outside the tree until every cell is connected.
// Every spanning tree over the grid is equally likely, so the layout carries
// none of the long-corridor bias of depth-first generation.
//
// The caller supplies the random source, which makes seeded runs fully
// reproducible. When the maze is filled, a random entrance and exit are
// placed on the border. Generation terminates with probability 1 but has no
// enforced upper bound on running time.
func Generate(m *Maze, rng *rand.Rand, logger *logrus.Entry) error {
	total := m.rows * m.cols
	inTree := make([]bool, total)
	remaining := total

	// Seed the tree with one random cell.
	seed := rng.Intn(total)
	inTree[seed] = true
	remaining--

	for remaining > 0 {
		start := firstOutsideTree(inTree)
		if start < 0 {
			return fmt.Errorf("%w: no cell outside the tree but %d remaining", ErrGeneratorInvariant, remaining)
		}

		walk := m.randomWalk(inTree, start, rng)

		// Replay the recorded walk. Loop erasure (each cell keeps only its
		// most recent exit direction) guarantees the replayed path is simple,
		// so each step adds exactly one edge without creating a cycle.
		cur := start
		for !inTree[cur] {
			dir, ok := walk[cur]
			if !ok {
				return fmt.Errorf("%w: walk has no exit direction for cell %s", ErrGeneratorInvariant, m.cells[cur].Position())
			}

			pos := m.cells[cur].Position()
			next := pos.Step(dir)
			if !m.InBounds(next) {
				return fmt.Errorf("%w: walk leaves the grid at %s going %s", ErrGeneratorInvariant, pos, dir)
			}
			if err := m.OpenPassage(pos, next); err != nil {
				return err
			}

			inTree[cur] = true
			remaining--
			cur = next.Row*m.cols + next.Col
		}
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"rows":       m.rows,
			"cols":       m.cols,
			"open_walls": m.OpenWallCount(),
		}).Debug("maze filled")
	}

	placeEntranceAndExit(m, rng, logger)
	return nil
}

// firstOutsideTree returns the lowest row-major index not yet in the tree,
// or -1 when the tree spans the grid. Walk starts are picked in a fixed
// order so that runs with the same seed produce identical mazes.
func firstOutsideTree(inTree []bool) int {
	for i, in := range inTree {
		if !in {
			return i
		}
	}
	return -1
}

// randomWalk walks from start until it reaches a cell already in the tree,
// recording the direction chosen at each cell visited. Revisiting a cell
// overwrites its recorded direction, which is what erases loops. A step that
// would leave the grid is rejected and re-sampled.
func (m *Maze) randomWalk(inTree []bool, start int, rng *rand.Rand) map[int]Direction {
	walk := make(map[int]Direction)
	cur := start

	for !inTree[cur] {
		pos := m.cells[cur].Position()

		var dir Direction
		for {
			dir = Direction(rng.Intn(numDirections))
			if m.InBounds(pos.Step(dir)) {
				break
			}
		}

		walk[cur] = dir
		next := pos.Step(dir)
		cur = next.Row*m.cols + next.Col
	}

	return walk
}

// placeEntranceAndExit marks a random border cell as the entrance and
// another as the exit. The exit lands on a different side, never directly
// across in the entrance's row or column, and a corner entrance forces the
// exit to the diagonally opposite corner. Grids smaller than 2x2 get
// best-effort placement where the two may coincide.
func placeEntranceAndExit(m *Maze, rng *rand.Rand, logger *logrus.Entry) {
	if m.rows < 2 || m.cols < 2 {
		if logger != nil {
			logger.Warn("maze too small for separated entrance and exit; they may coincide")
		}
		// Setters cannot fail here: the sampled coordinates are in bounds.
		_ = m.SetEntrance(CellPosition{Row: rng.Intn(m.rows), Col: rng.Intn(m.cols)})
		_ = m.SetExit(CellPosition{Row: rng.Intn(m.rows), Col: rng.Intn(m.cols)})
		return
	}

	var entrance CellPosition
	switch Direction(rng.Intn(numDirections)) {
	case North:
		entrance = CellPosition{Row: 0, Col: rng.Intn(m.cols)}
	case South:
		entrance = CellPosition{Row: m.rows - 1, Col: rng.Intn(m.cols)}
	case East:
		entrance = CellPosition{Row: rng.Intn(m.rows), Col: m.cols - 1}
	case West:
		entrance = CellPosition{Row: rng.Intn(m.rows), Col: 0}
	}

	exit := pickExit(m, entrance, rng)

	_ = m.SetEntrance(entrance)
	_ = m.SetExit(exit)

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"entrance": entrance.String(),
			"exit":     exit.String(),
		}).Debug("entrance and exit placed")
	}
}

func pickExit(m *Maze, entrance CellPosition, rng *rand.Rand) CellPosition {
	lastRow := m.rows - 1
	lastCol := m.cols - 1

	// A corner entrance forces the diagonally opposite corner.
	switch {
	case entrance.Row == 0 && entrance.Col == 0:
		return CellPosition{Row: lastRow, Col: lastCol}
	case entrance.Row == 0 && entrance.Col == lastCol:
		return CellPosition{Row: lastRow, Col: 0}
	case entrance.Row == lastRow && entrance.Col == 0:
		return CellPosition{Row: 0, Col: lastCol}
	case entrance.Row == lastRow && entrance.Col == lastCol:
		return CellPosition{Row: 0, Col: 0}
	}

	entranceSide := sideOf(m, entrance)
	exitSide := Direction(rng.Intn(numDirections))
	for exitSide == entranceSide {
		exitSide = Direction(rng.Intn(numDirections))
	}

	var exit CellPosition
	switch exitSide {
	case North:
		exit = CellPosition{Row: 0, Col: rng.Intn(m.cols)}
		for exit.Col == entrance.Col {
			exit.Col = rng.Intn(m.cols)
		}
	case South:
		exit = CellPosition{Row: lastRow, Col: rng.Intn(m.cols)}
		for exit.Col == entrance.Col {
			exit.Col = rng.Intn(m.cols)
		}
	case East:
		exit = CellPosition{Row: rng.Intn(m.rows), Col: lastCol}
		for exit.Row == entrance.Row {
			exit.Row = rng.Intn(m.rows)
		}
	case West:
		exit = CellPosition{Row: rng.Intn(m.rows), Col: 0}
		for exit.Row == entrance.Row {
			exit.Row = rng.Intn(m.rows)
		}
	}
	return exit
}

// sideOf returns the border side a non-corner border cell sits on.
func sideOf(m *Maze, pos CellPosition) Direction {
	switch {
	case pos.Row == 0:
		return North
	case pos.Row == m.rows-1:
		return South
	case pos.Col == m.cols-1:
		return East
	default:
		return West
	}
}
