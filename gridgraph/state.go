package gridgraph

import (
	"errors"
	"fmt"

	cerrors "cloudeng.io/errors"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// State is a position plus the heading of the last move and how many
// consecutive moves were made in that heading. Run 0 marks a state that
// has not moved yet.
type State struct {
	Pos Point
	Dir Direction
	Run int
}

// MoveRule bounds straight-line runs.
//
// MinRun – moves required in a heading before turning (and before stopping,
// see AtCell). MaxRun – maximum consecutive moves in one heading.
type MoveRule struct {
	MinRun int
	MaxRun int
}

// Validate reports every violated constraint of r.
func (r MoveRule) Validate() error {
	errs := &cerrors.M{}
	if r.MinRun < 0 {
		errs.Append(fmt.Errorf("MinRun=%d is negative", r.MinRun))
	}
	if r.MaxRun < 1 {
		errs.Append(fmt.Errorf("MaxRun=%d must be at least 1", r.MaxRun))
	}
	if r.MinRun > r.MaxRun {
		errs.Append(fmt.Errorf("MinRun=%d exceeds MaxRun=%d", r.MinRun, r.MaxRun))
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadMoveRule, err)
	}
	return nil
}

// StateGraph expands grid into the graph of States under rule. Each cell
// contributes 4 × (MaxRun+1) vertices. From state s the move in heading d:
//
//   - is never a reversal of s.Dir;
//   - continues straight (d == s.Dir) only while s.Run < MaxRun;
//   - turns only once s.Run >= MinRun, restarting the run at 1;
//   - costs the value of the destination cell.
func StateGraph(grid *Grid[int], rule MoveRule, opts ...Option) (*core.Graph[State], error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	o := resolve(opts)

	g := core.NewGraph[State](core.WithDirected(true))
	for _, p := range grid.Points() {
		for _, d := range Directions {
			for run := 0; run <= rule.MaxRun; run++ {
				s := State{Pos: p, Dir: d, Run: run}
				g.InsertVertex(s)
				for _, nd := range Directions {
					next, ok := rule.advance(s, nd)
					if !ok {
						continue
					}
					next.Pos = p.Step(nd)
					if cost, in := grid.At(next.Pos); in {
						g.InsertDirectedEdge(s, next, float64(cost))
					}
				}
			}
		}
	}
	logBuilt(o.Logger, "state", g)
	return g, nil
}

// advance returns the heading and run after moving from s in heading d.
func (r MoveRule) advance(s State, d Direction) (State, bool) {
	switch {
	case d == s.Dir.Opposite():
		return State{}, false
	case d == s.Dir:
		if s.Run >= r.MaxRun {
			return State{}, false
		}
		return State{Dir: d, Run: s.Run + 1}, true
	default:
		if s.Run < r.MinRun {
			return State{}, false
		}
		return State{Dir: d, Run: 1}, true
	}
}

// StartStates returns the not-yet-moved states at p, one per heading.
func StartStates(p Point) []State {
	out := make([]State, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, State{Pos: p, Dir: d})
	}
	return out
}

// AtCell accepts states located at p whose current run is at least minRun.
func AtCell(p Point, minRun int) func(State) bool {
	return func(s State) bool {
		return s.Pos == p && s.Run >= minRun
	}
}

// MinimalRunCost returns the cheapest cost of moving from → to under rule,
// where the final run must also reach MinRun.
//
// Errors: ErrNoPath when an endpoint is outside the grid or to cannot be
// reached; ErrBadMoveRule; dijkstra errors such as ErrNegativeWeight are
// returned wrapped.
func MinimalRunCost(grid *Grid[int], rule MoveRule, from, to Point, opts ...Option) (float64, error) {
	if !grid.InBounds(from) || !grid.InBounds(to) {
		return 0, fmt.Errorf("%w: %v → %v outside grid", ErrNoPath, from, to)
	}
	g, err := StateGraph(grid, rule, opts...)
	if err != nil {
		return 0, err
	}
	_, d, err := dijkstra.Nearest(g, StartStates(from), AtCell(to, rule.MinRun),
		dijkstra.WithLogger(resolve(opts).Logger))
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return 0, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
	case err != nil:
		return 0, fmt.Errorf("gridgraph: MinimalRunCost: %w", err)
	}
	return d, nil
}
