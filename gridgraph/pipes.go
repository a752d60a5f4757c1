package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// StartTile marks the unknown pipe where the animal starts.
const StartTile = 'S'

// connectors lists the two headings each pipe tile opens to.
var connectors = map[rune][2]Direction{
	'|': {North, South},
	'-': {East, West},
	'L': {North, East},
	'J': {North, West},
	'7': {South, West},
	'F': {South, East},
}

// opensTo reports whether tile r has an opening towards d.
func opensTo(r rune, d Direction) bool {
	c, ok := connectors[r]
	return ok && (c[0] == d || c[1] == d)
}

// PrepareMaze locates the StartTile and returns a copy of grid where it is
// replaced by startPipe. A zero startPipe is inferred from the neighbors
// that open back towards the start; inference needs exactly two of them.
func PrepareMaze(grid *Grid[rune], startPipe rune) (*Grid[rune], Point, error) {
	start, ok := grid.Find(func(r rune) bool { return r == StartTile })
	if !ok {
		return nil, Point{}, ErrNoStart
	}
	if startPipe == 0 {
		var open []Direction
		for _, d := range Directions {
			if nb, in := grid.At(start.Step(d)); in && opensTo(nb, d.Opposite()) {
				open = append(open, d)
			}
		}
		if len(open) != 2 {
			return nil, start, fmt.Errorf("%w: %d neighbors connect to %v", ErrBadStartPipe, len(open), start)
		}
		for r, c := range connectors {
			if (c[0] == open[0] && c[1] == open[1]) || (c[0] == open[1] && c[1] == open[0]) {
				startPipe = r
			}
		}
	}
	if _, ok := connectors[startPipe]; !ok {
		return nil, start, fmt.Errorf("%w: %q is not a pipe", ErrBadStartPipe, startPipe)
	}
	return grid.With(start, startPipe), start, nil
}

// PipeGraph links every pair of orthogonal neighbors whose pipes open
// towards each other, with unit cost in both directions.
func PipeGraph(grid *Grid[rune], opts ...Option) *core.Graph[Point] {
	return ToGraph(grid, Conn4, func(g *Grid[rune], from, to Point) (float64, bool) {
		a, _ := g.At(from)
		b, _ := g.At(to)
		d := heading(from, to)
		return 1, opensTo(a, d) && opensTo(b, d.Opposite())
	}, opts...)
}

func heading(from, to Point) Direction {
	delta := Point{to.X - from.X, to.Y - from.Y}
	for _, d := range Directions {
		if d.Delta() == delta {
			return d
		}
	}
	return North
}

// Loop returns the cells of the pipe loop through start.
func Loop(g *core.Graph[Point], start Point) map[Point]struct{} {
	return bfs.Reachable(g, start)
}

// FarthestOnLoop returns the number of steps from start to the loop tile
// farthest away along the loop.
func FarthestOnLoop(g *core.Graph[Point], start Point) (float64, error) {
	res, err := dijkstra.Dijkstra(g, []Point{start})
	if err != nil {
		return 0, err
	}
	_, d, ok := res.Farthest()
	if !ok {
		return 0, ErrNoPath
	}
	return d, nil
}

// Interior counts cells not on loop that the loop encloses. A ray cast
// east from a cell crosses the loop once per loop tile opening North;
// enclosed cells see an odd number of crossings.
// Complexity: O(W×H).
func Interior(grid *Grid[rune], loop map[Point]struct{}) int {
	count := 0
	for y := 0; y < grid.Height(); y++ {
		inside := false
		for x := 0; x < grid.Width(); x++ {
			p := Point{x, y}
			if _, on := loop[p]; on {
				if r, _ := grid.At(p); opensTo(r, North) {
					inside = !inside
				}
				continue
			}
			if inside {
				count++
			}
		}
	}
	return count
}
