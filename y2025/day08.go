package y2025

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/puzzlebox/aoc"
)

type JunctionBox = aoc.Pt3[int64]

func ParseJunctionBox(line string) (JunctionBox, error) {
	fs := strings.Split(line, ",")
	if len(fs) != 3 {
		return JunctionBox{}, aoc.Invalid("junction box %q: want x,y,z", line)
	}
	var v [3]int64
	for i, f := range fs {
		n, err := aoc.Int64(f)
		if err != nil {
			return JunctionBox{}, err
		}
		v[i] = n
	}
	return JunctionBox{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Distance is the straight-line distance between two junction boxes.
//
// Distances compare and hash with -0 equal to +0 and all NaNs equal to each
// other, so they can be used as sort and map keys.
type Distance float64

const canonicalNaN = 0x7ff8_0000_0000_0000

func BoxDistance(a, b JunctionBox) Distance {
	return Distance(math.Sqrt(float64(a.SqDist(b))))
}

// Key returns the canonical bits of d.
func (d Distance) Key() uint64 {
	f := float64(d)
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return canonicalNaN
	}
	return math.Float64bits(f)
}

func (d Distance) Equal(o Distance) bool {
	return d.Key() == o.Key()
}

// Compare orders distances ascending with NaN first.
func (d Distance) Compare(o Distance) int {
	return cmp.Compare(float64(d), float64(o))
}

// Connection is a candidate string of lights between boxes A and B, A < B.
type Connection struct {
	Dist Distance
	A, B int
}

// Connections returns every pair of boxes, shortest first. Pairs at equal
// distance keep their index order.
func Connections(boxes []JunctionBox) []Connection {
	n := len(boxes)
	out := make([]Connection, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Connection{BoxDistance(boxes[i], boxes[j]), i, j})
		}
	}
	slices.SortStableFunc(out, func(a, b Connection) int {
		return a.Dist.Compare(b.Dist)
	})
	return out
}

// Playground is the set of junction boxes to decorate.
type Playground struct {
	Boxes []JunctionBox
}

func (p Playground) check() error {
	if len(p.Boxes) < 2 {
		return aoc.Invalid("need at least two junction boxes, got %d", len(p.Boxes))
	}
	return nil
}

// Circuits connects the closest pairs of boxes, attempts times, and returns
// the product of the sizes of the three largest circuits. A pair already in
// the same circuit still counts as an attempt.
func (p Playground) Circuits(attempts int) (int64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	ds := aoc.NewDisjointSet(len(p.Boxes))
	for i, c := range Connections(p.Boxes) {
		if i >= attempts {
			break
		}
		ds.Union(c.A, c.B)
	}

	pq := aoc.MaxQueue[int]()
	for root, size := range ds.Groups() {
		pq.Push(&aoc.PQI[int]{V: root, P: size})
	}
	product := int64(1)
	for i := 0; i < 3 && pq.Len() > 0; i++ {
		product *= int64(pq.Pop().P)
	}
	return product, nil
}

// JoinAll connects the closest pairs until every box is in one circuit and
// returns the product of the X coordinates of the last pair that merged two
// circuits.
func (p Playground) JoinAll() (int64, error) {
	if err := p.check(); err != nil {
		return 0, err
	}
	ds := aoc.NewDisjointSet(len(p.Boxes))
	var last Connection
	for _, c := range Connections(p.Boxes) {
		if !ds.Union(c.A, c.B) {
			continue
		}
		last = c
		if ds.NumGroups() == 1 {
			break
		}
	}
	return p.Boxes[last.A].X * p.Boxes[last.B].X, nil
}

func (s Solver) playground() (Playground, error) {
	boxes, err := aoc.ParseLines(s.Reader(), ParseJunctionBox)
	if err != nil {
		return Playground{}, err
	}
	return Playground{Boxes: boxes}, nil
}

// want=40
func (s Solver) D8p1() (any, error) {
	pg, err := s.playground()
	if err != nil {
		return nil, err
	}
	attempts := 1000
	if s.SampleMode {
		attempts = 10
	}
	return pg.Circuits(attempts)
}

// want=25272
func (s Solver) D8p2() (any, error) {
	pg, err := s.playground()
	if err != nil {
		return nil, err
	}
	return pg.JoinAll()
}
