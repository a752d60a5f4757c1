package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between the requested cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrBadMoveRule indicates an inconsistent MoveRule.
	ErrBadMoveRule = errors.New("gridgraph: invalid move rule")
	// ErrNoStart indicates a pipe maze without an 'S' tile.
	ErrNoStart = errors.New("gridgraph: maze has no start tile")
	// ErrBadStartPipe indicates the start tile cannot be resolved to a pipe
	// that joins exactly two neighbors.
	ErrBadStartPipe = errors.New("gridgraph: cannot resolve start pipe")
	// ErrBadFactor indicates an expansion factor that is not positive.
	ErrBadFactor = errors.New("gridgraph: expansion factor must be positive")
	// ErrUnknownCell indicates a grid character outside the accepted alphabet.
	ErrUnknownCell = errors.New("gridgraph: unexpected cell character")
)
