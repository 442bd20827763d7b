package y2025

import (
	"github.com/puzzlebox/aoc"
)

const paperRoll = '@'

// ParsePaperRolls reads the floor plan; rolls are '@'.
func ParsePaperRolls(lines []string) (aoc.Grid[byte], error) {
	if len(lines) == 0 {
		return nil, aoc.Invalid("empty floor plan")
	}
	return aoc.ParseGrid(lines, '.'), nil
}

// Accessible reports whether the roll at p has fewer than four rolls among
// its eight neighbours.
func Accessible(g aoc.Grid[byte], p aoc.Pt) bool {
	if v, ok := g.AtOk(p); !ok || v != paperRoll {
		return false
	}
	n := 0
	p.ForNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v == paperRoll {
			n++
		}
		return n < 4
	})
	return n < 4
}

// AccessibleRolls returns the number of rolls a forklift can reach.
func AccessibleRolls(g aoc.Grid[byte]) int {
	n := 0
	g.ForEach(func(p aoc.Pt, _ byte) {
		if Accessible(g, p) {
			n++
		}
	})
	return n
}

// RemoveRolls repeatedly removes accessible rolls until none are left and
// returns how many were removed. g is not modified.
func RemoveRolls(g aoc.Grid[byte]) int {
	g = g.Clone()
	var q aoc.Queue[aoc.Pt]
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == paperRoll {
			q.Push(p)
		}
	})
	removed := 0
	q.While(func(p aoc.Pt) bool {
		if !Accessible(g, p) {
			return true
		}
		g.Set(p, '.')
		removed++
		// Only neighbours of a removed roll can become accessible.
		p.ForNeighbors(func(n aoc.Pt) bool {
			if v, ok := g.AtOk(n); ok && v == paperRoll {
				q.Push(n)
			}
			return true
		})
		return true
	})
	return removed
}

func (s Solver) paperRolls() (aoc.Grid[byte], error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return ParsePaperRolls(lines)
}

// want=13
func (s Solver) D4p1() (any, error) {
	g, err := s.paperRolls()
	if err != nil {
		return nil, err
	}
	return AccessibleRolls(g), nil
}

// want=43
func (s Solver) D4p2() (any, error) {
	g, err := s.paperRolls()
	if err != nil {
		return nil, err
	}
	return RemoveRolls(g), nil
}
