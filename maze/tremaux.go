package maze

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// instruction is one entry of the solver's traversal stack: a cell on the
// live trail and the exit direction taken from it. The final instruction
// pushed when the walk arrives at the exit carries reachedExit instead of a
// meaningful direction.
type instruction struct {
	pos         CellPosition
	exitDir     Direction
	reachedExit bool
}

// tremauxSolver carries the walk state across steps: the current cell, the
// directions used to enter it and to leave the previous cell, and the stack
// of instructions forming the live trail back to the entrance.
type tremauxSolver struct {
	m        *Maze
	entrance CellPosition
	exit     CellPosition

	cur     CellPosition
	entered Direction
	exited  Direction

	trail  []instruction
	logger *logrus.Entry
}

// Solve finds the entrance-to-exit path with Tremaux's algorithm: a walk
// that decides purely from per-passage mark counts at each cell, the way a
// human would chalk marks at junctions. No global visited-set and no search
// beyond the traversal itself. When the walk reaches the exit, every cell
// still on the trail is labeled as a path member; cells that were visited
// and backtracked away from are not.
//
// The maze must be connected with entrance and exit set, which generation
// guarantees. Tremaux's algorithm terminates with a correct path on any
// finite maze; the internal step budget is only a safety valve against an
// inconsistent maze.
func Solve(m *Maze, logger *logrus.Entry) error {
	entrance, ok := m.Entrance()
	if !ok {
		return fmt.Errorf("solve: %w", ErrNoEntranceExit)
	}
	exit, ok := m.Exit()
	if !ok {
		return fmt.Errorf("solve: %w", ErrNoEntranceExit)
	}

	s := &tremauxSolver{
		m:        m,
		entrance: entrance,
		exit:     exit,
		cur:      entrance,
		entered:  invalidDirection,
		exited:   invalidDirection,
		logger:   logger,
	}
	if err := s.run(); err != nil {
		return err
	}

	// Every instruction still on the trail identifies a path cell.
	for _, ins := range s.trail {
		cell, err := m.CellAt(ins.pos)
		if err != nil {
			return err
		}
		cell.LabelAsPath()
	}
	return nil
}

func (s *tremauxSolver) run() error {
	// Marks are bounded at two per passage, so a legal traversal can never
	// come close to this many steps.
	budget := 4 * numDirections * (s.m.rows*s.m.cols + 1)

	for steps := 0; ; steps++ {
		if steps > budget {
			return fmt.Errorf("%w: no exit found within %d steps", ErrSolverInvariant, budget)
		}

		cell, err := s.m.CellAt(s.cur)
		if err != nil {
			return err
		}
		s.debugf("at %s entered through %s; %s", s.cur, s.entered, cell.marksString())

		switch {
		case s.cur == s.exit:
			s.trail = append(s.trail, instruction{pos: s.cur, reachedExit: true})
			s.debugf("reached maze exit at %s", s.cur)
			return nil

		case cell.IsJunction() || (s.cur == s.entrance && cell.IsEntranceJunction()):
			if err := s.stepJunction(cell); err != nil {
				return err
			}

		case s.cur == s.entrance:
			// Single-passage entrance: the walk has just started, take the
			// lone passage without marking.
			s.exited = cell.DirFewestMarks()
			s.entered = s.exited.Opposite()
			s.push()
			s.cur = s.cur.Step(s.exited)

		case cell.IsDeadEnd():
			s.entered, s.exited = s.exited, s.entered
			if err := s.backtrack(); err != nil {
				return err
			}

		default:
			// Corridor: continue through the only passage other than the one
			// entered through.
			other, err := cell.OnlyOtherExit(s.entered)
			if err != nil {
				return err
			}
			s.exited = other
			s.entered = s.exited.Opposite()
			s.push()
			s.cur = s.cur.Step(s.exited)
		}
	}
}

// stepJunction applies the junction decision table, keyed on the mark state
// of the passage the walk entered through.
func (s *tremauxSolver) stepJunction(cell *Cell) error {
	switch {
	case s.entered == invalidDirection:
		// First step of the whole walk, starting on a junction entrance.
		s.exited = cell.DirFewestMarks()
		s.entered = s.exited.Opposite()
		if err := cell.MarkExit(s.exited); err != nil {
			return err
		}
		s.push()
		s.cur = s.cur.Step(s.exited)

	case cell.OnlyDirMarked(s.entered):
		// First time through this junction: mark the way in once and the
		// chosen way out once.
		if err := cell.MarkExit(s.entered); err != nil {
			return err
		}
		s.exited = cell.DirFewestMarks()
		s.entered = s.exited.Opposite()
		if err := cell.MarkExit(s.exited); err != nil {
			return err
		}
		s.push()
		s.cur = s.cur.Step(s.exited)

	case cell.DirMarkedTwice(s.entered):
		// Second pass through this junction.
		if cell.AllButOneMarkedTwice() {
			s.exited = cell.DirFewestMarks()
			s.entered = s.exited.Opposite()
			if err := cell.MarkExit(s.exited); err != nil {
				return err
			}
			if len(s.trail) == 0 {
				// The walk has unwound fully to the entrance and every branch
				// but one is exhausted; the survivor leads to the exit. Step
				// through it, there is nothing left to retreat along.
				s.debugf("entrance %s closed, taking last open branch %s", cell.Position(), s.exited)
				s.push()
				s.cur = s.cur.Step(s.exited)
				return nil
			}
			// Junction is closed: take the one remaining passage but do not
			// push an instruction, dropping the junction from the live trail.
			s.debugf("junction %s closed, backtracking", cell.Position())
			return s.backtrack()
		}
		s.exited = cell.DirFewestMarks()
		s.entered = s.exited.Opposite()
		if err := cell.MarkExit(s.exited); err != nil {
			return err
		}
		s.push()
		s.cur = s.cur.Step(s.exited)

	default:
		// Entered through a once-marked passage while other passages carry
		// marks: this branch has been tried, retreat.
		s.entered, s.exited = s.exited, s.entered
		return s.backtrack()
	}
	return nil
}

// backtrack pops instructions off the trail until the top is a junction (or
// the entrance counting as one), gives that junction's recorded exit its
// second mark, and resumes the walk standing on the junction. The junction's
// own instruction is popped so it can be traversed again.
func (s *tremauxSolver) backtrack() error {
	for {
		if len(s.trail) == 0 {
			return fmt.Errorf("%w: backtracked past the maze entrance", ErrSolverInvariant)
		}
		top := s.trail[len(s.trail)-1]
		cell, err := s.m.CellAt(top.pos)
		if err != nil {
			return err
		}
		if cell.IsJunction() || (top.pos == s.entrance && cell.IsEntranceJunction()) {
			break
		}
		s.trail = s.trail[:len(s.trail)-1]
		s.debugf("backtrack: dropped %s exit %s", top.pos, top.exitDir)
	}

	top := s.trail[len(s.trail)-1]
	cell, err := s.m.CellAt(top.pos)
	if err != nil {
		return err
	}

	// Second mark on the exit last taken from this junction.
	s.exited = top.exitDir
	if err := cell.MarkExit(s.exited); err != nil {
		return err
	}

	s.entered = s.exited
	s.exited = s.entered.Opposite()
	s.cur = top.pos

	s.trail = s.trail[:len(s.trail)-1]
	s.debugf("backtrack: resumed at junction %s; %s", top.pos, cell.marksString())
	if len(s.trail) == 0 {
		s.debugf("backtrack: returned to the maze entrance")
	}
	return nil
}

func (s *tremauxSolver) push() {
	s.trail = append(s.trail, instruction{pos: s.cur, exitDir: s.exited})
	s.debugf("pushed %s exit %s", s.cur, s.exited)
}

func (s *tremauxSolver) debugf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}
