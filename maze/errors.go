package maze

import "errors"

// Contract violations. These indicate a caller bug given the stated
// preconditions and are propagated instead of being logged and ignored;
// continuing with corrupted maze state is worse than stopping.
var (
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")
	ErrOutOfBounds       = errors.New("cell position outside the maze grid")
	ErrNotAdjacent       = errors.New("cells are not grid-adjacent")
	ErrNoPassage         = errors.New("no passage exists in that direction")
	ErrNotCorridor       = errors.New("cell does not have exactly two passages")
	ErrNoEntranceExit    = errors.New("maze entrance or exit is not set")
)

// Algorithm-invariant failures. Unreachable under a correct implementation;
// they are internal errors, never user-facing conditions.
var (
	ErrGeneratorInvariant = errors.New("wilson generator invariant violated")
	ErrSolverInvariant    = errors.New("tremaux solver invariant violated")
)
