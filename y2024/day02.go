package y2024

import (
	"slices"

	"github.com/puzzlebox/aoc"
)

// Report is one line of levels from the reactor.
type Report []int

func ParseReport(line string) (Report, error) {
	levels, err := aoc.Fields(line)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, aoc.Invalid("empty report")
	}
	return Report(levels), nil
}

// Safe reports whether the levels are all increasing or all decreasing, by
// at least one and at most three each step.
func (r Report) Safe() bool {
	if len(r) < 2 {
		return true
	}
	up := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		d := r[i] - r[i-1]
		if !up {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// SafeDampened reports whether the report is safe once at most one level is
// removed.
func (r Report) SafeDampened() bool {
	if r.Safe() {
		return true
	}
	for i := range r {
		if slices.Delete(slices.Clone(r), i, i+1).Safe() {
			return true
		}
	}
	return false
}

func (s Solver) countSafe(safe func(Report) bool) (any, error) {
	reports, err := aoc.ParseLines(s.Reader(), ParseReport)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}

// want=2
func (s Solver) D2p1() (any, error) {
	return s.countSafe(Report.Safe)
}

// want=4
func (s Solver) D2p2() (any, error) {
	return s.countSafe(Report.SafeDampened)
}
