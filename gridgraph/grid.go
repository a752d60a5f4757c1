package gridgraph

import (
	"fmt"

	cerrors "cloudeng.io/errors"
)

// Grid is an immutable rectangular 2D array of cells, indexed by Point.
type Grid[T any] struct {
	w, h  int
	cells [][]T
}

// New builds a Grid from rows of cells, cells[y][x]. The input is
// deep-copied. Returns ErrEmptyGrid, or ErrNonRectangular listing every
// row whose length differs from the first.
// Complexity: O(W×H).
func New[T any](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])

	errs := &cerrors.M{}
	for y, row := range cells {
		if len(row) != w {
			errs.Append(fmt.Errorf("row %d has %d cells, want %d", y, len(row), w))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonRectangular, err)
	}

	cp := make([][]T, h)
	for y := range cells {
		cp[y] = make([]T, w)
		copy(cp[y], cells[y])
	}
	return &Grid[T]{w: w, h: h, cells: cp}, nil
}

// Parse maps every character of lines through cell and builds a Grid.
// The first error returned by cell aborts parsing.
func Parse[T any](lines []string, cell func(r rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, len(lines))
	for y, line := range lines {
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
			}
			rows[y] = append(rows[y], v)
		}
	}
	return New(rows)
}

// Runes builds a character grid.
func Runes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, error) { return r, nil })
}

// Digits builds a grid of single-digit cell values.
func Digits(lines []string) (*Grid[int], error) {
	return Parse(lines, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCell, r)
		}
		return int(r - '0'), nil
	})
}

// Bools builds a grid where on marks true cells and any other rune false.
func Bools(lines []string, on rune) (*Grid[bool], error) {
	return Parse(lines, func(r rune) (bool, error) { return r == on, nil })
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// InBounds reports whether p lies within the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// At returns the cell at p; ok is false outside the grid.
func (g *Grid[T]) At(p Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}
	return g.cells[p.Y][p.X], true
}

// Points returns every coordinate in row-major order.
func (g *Grid[T]) Points() []Point {
	out := make([]Point, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			out = append(out, Point{x, y})
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p in clockwise order.
func (g *Grid[T]) Neighbors(p Point, conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell (row-major) satisfying match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for _, p := range g.Points() {
		if match(g.cells[p.Y][p.X]) {
			return p, true
		}
	}
	return Point{}, false
}

// With returns a copy of g where p holds v. p must be in bounds.
func (g *Grid[T]) With(p Point, v T) *Grid[T] {
	out, _ := New(g.cells)
	out.cells[p.Y][p.X] = v
	return out
}
