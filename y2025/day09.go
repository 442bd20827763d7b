package y2025

import (
	"strings"

	"github.com/puzzlebox/aoc"
)

// Tile is the position of a red tile.
type Tile = aoc.Pt

func ParseTile(line string) (Tile, error) {
	fs := strings.Split(line, ",")
	if len(fs) != 2 {
		return Tile{}, aoc.Invalid("tile %q: want x,y", line)
	}
	xy, err := aoc.Ints(fs...)
	if err != nil {
		return Tile{}, err
	}
	return Tile{X: xy[0], Y: xy[1]}, nil
}

// rect is the rectangle spanned by two opposite corners, inclusive.
type rect struct {
	min, max Tile
}

func span(a, b Tile) rect {
	return rect{
		min: Tile{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		max: Tile{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (r rect) area() int64 {
	return int64(r.max.X-r.min.X+1) * int64(r.max.Y-r.min.Y+1)
}

// LargestRectangle returns the largest area of a rectangle with red tiles at
// two opposite corners.
func LargestRectangle(tiles []Tile) int64 {
	var best int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			best = max(best, span(tiles[i], tiles[j]).area())
		}
	}
	return best
}

// loop is the closed outline through the red tiles in order.
type loop []aoc.Segment

func makeLoop(tiles []Tile) (loop, error) {
	l := make(loop, len(tiles))
	for i, a := range tiles {
		b := tiles[(i+1)%len(tiles)]
		if a.X != b.X && a.Y != b.Y {
			return nil, aoc.Invalid("tiles %v and %v are not in a line", a, b)
		}
		l[i] = aoc.Segment{A: a, B: b}
	}
	return l, nil
}

// cuts reports whether the outline passes through the inside of r.
func (l loop) cuts(r rect) bool {
	for _, s := range l {
		sp := span(s.A, s.B)
		lo, hi := sp.min, sp.max
		if s.A.X == s.B.X {
			if r.min.X < s.A.X && s.A.X < r.max.X && hi.Y > r.min.Y && lo.Y < r.max.Y {
				return true
			}
		} else {
			if r.min.Y < s.A.Y && s.A.Y < r.max.Y && hi.X > r.min.X && lo.X < r.max.X {
				return true
			}
		}
	}
	return false
}

// contains2 reports whether the point (x/2, y/2) is inside or on the outline.
func (l loop) contains2(x, y int) bool {
	inside := false
	for _, s := range l {
		a := Tile{X: 2 * s.A.X, Y: 2 * s.A.Y}
		b := Tile{X: 2 * s.B.X, Y: 2 * s.B.Y}
		r := span(a, b)
		if r.min.X <= x && x <= r.max.X && r.min.Y <= y && y <= r.max.Y {
			return true // on the outline
		}
		if a.X == b.X && a.X > x && r.min.Y <= y && y < r.max.Y {
			inside = !inside
		}
	}
	return inside
}

// LargestInsideRectangle returns the largest area of a rectangle with red
// tiles at two opposite corners that lies entirely on red or green tiles,
// i.e. within the outline through the red tiles.
func LargestInsideRectangle(tiles []Tile) (int64, error) {
	l, err := makeLoop(tiles)
	if err != nil {
		return 0, err
	}
	var best int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			r := span(tiles[i], tiles[j])
			if a := r.area(); a <= best || l.cuts(r) {
				continue
			}
			if l.contains2(r.min.X+r.max.X, r.min.Y+r.max.Y) {
				best = r.area()
			}
		}
	}
	return best, nil
}

func (s Solver) tiles() ([]Tile, error) {
	tiles, err := aoc.ParseLines(s.Reader(), ParseTile)
	if err != nil {
		return nil, err
	}
	if len(tiles) < 2 {
		return nil, aoc.Invalid("need at least two red tiles, got %d", len(tiles))
	}
	return tiles, nil
}

// want=50
func (s Solver) D9p1() (any, error) {
	tiles, err := s.tiles()
	if err != nil {
		return nil, err
	}
	return LargestRectangle(tiles), nil
}

// want=24
func (s Solver) D9p2() (any, error) {
	tiles, err := s.tiles()
	if err != nil {
		return nil, err
	}
	return LargestInsideRectangle(tiles)
}
