package y2025

import (
	"bytes"

	"github.com/puzzlebox/aoc"
	"tailscale.com/util/set"
)

const (
	beamEntry = 'S'
	splitter  = '^'
)

// Manifold is a tachyon manifold diagram. A beam enters at the marker on the
// top row and falls straight down; a splitter stops it and starts new beams
// in the columns immediately left and right of it.
type Manifold struct {
	diagram aoc.Grid[byte]
	entry   int
}

func ParseManifold(lines []string) (*Manifold, error) {
	if len(lines) == 0 {
		return nil, aoc.Invalid("empty manifold")
	}
	g := aoc.ParseGrid(lines, '.')
	entry := bytes.IndexByte(g[0], beamEntry)
	if entry < 0 || bytes.Count(g[0], []byte{beamEntry}) != 1 {
		return nil, aoc.Invalid("top row needs exactly one %q", beamEntry)
	}
	return &Manifold{diagram: g, entry: entry}, nil
}

func (m *Manifold) width() int {
	return m.diagram.Size().X
}

// split calls f with the columns a beam split at x continues in. Beams that
// would leave the diagram are dropped.
func (m *Manifold) split(x int, f func(int)) {
	if x > 0 {
		f(x - 1)
	}
	if x < m.width()-1 {
		f(x + 1)
	}
}

// Splits returns the number of times a beam is split on its way down.
// Beams landing in the same column merge into one.
func (m *Manifold) Splits() int {
	active := make(set.Set[int])
	active.Add(m.entry)
	splits := 0
	for _, row := range m.diagram[1:] {
		next := make(set.Set[int])
		for x := range active {
			if row[x] != splitter {
				next.Add(x)
				continue
			}
			splits++
			m.split(x, next.Add)
		}
		active = next
	}
	return splits
}

// Timelines returns the number of distinct paths a single particle can take
// from the entry to the bottom row, choosing left or right at each splitter.
func (m *Manifold) Timelines() int64 {
	counts := make([]int64, m.width())
	counts[m.entry] = 1
	for _, row := range m.diagram[1:] {
		next := make([]int64, len(counts))
		for x, n := range counts {
			if n == 0 {
				continue
			}
			if row[x] != splitter {
				next[x] += n
				continue
			}
			m.split(x, func(nx int) { next[nx] += n })
		}
		counts = next
	}
	return aoc.Sum(counts...)
}

func (s Solver) manifold() (*Manifold, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return ParseManifold(lines)
}

// want=21
func (s Solver) D7p1() (any, error) {
	m, err := s.manifold()
	if err != nil {
		return nil, err
	}
	return m.Splits(), nil
}

// want=40
func (s Solver) D7p2() (any, error) {
	m, err := s.manifold()
	if err != nil {
		return nil, err
	}
	return m.Timelines(), nil
}
