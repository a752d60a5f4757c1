package gridgraph

import (
	"go.uber.org/zap"
)

// Point is a cell coordinate: X grows east (column), Y grows south (row).
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Step returns the neighbor of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Direction is one of the four orthogonal headings, in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset of d.
func (d Direction) Delta() Point { return deltas[d&3] }

// TurnRight rotates d clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft rotates d counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Opposite reverses d.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets of c in clockwise order from North.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Option configures graph construction.
type Option func(*Options)

// Options holds construction settings shared by the builders.
//
// Logger – debug tracing of built graph sizes; never nil after DefaultOptions.
type Options struct {
	Logger *zap.Logger
}

// DefaultOptions returns a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the zap logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
