package y2025

import (
	"strings"

	"github.com/puzzlebox/aoc"
)

type Operation byte

const (
	Add      Operation = '+'
	Multiply Operation = '*'
)

// Problem is one block of the worksheet: the number rows between two blank
// columns and the operation written under them.
type Problem struct {
	Op   Operation
	Rows []string
}

// ParseWorksheet splits the worksheet into problems. The last line holds the
// operations; columns that are blank on every line separate problems.
func ParseWorksheet(lines []string) ([]Problem, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, aoc.Invalid("worksheet needs numbers and operations")
	}
	g := aoc.ParseGrid(lines, ' ')
	ops := g[len(g)-1]
	blank := func(x int) bool {
		for _, row := range g {
			if row[x] != ' ' {
				return false
			}
		}
		return true
	}

	var out []Problem
	w := g.Size().X
	for x := 0; x < w; {
		if blank(x) {
			x++
			continue
		}
		end := x
		for end < w && !blank(end) {
			end++
		}
		op := strings.TrimSpace(string(ops[x:end]))
		if len(op) != 1 || (Operation(op[0]) != Add && Operation(op[0]) != Multiply) {
			return nil, aoc.Invalid("operation %q", op)
		}
		p := Problem{Op: Operation(op[0])}
		for _, row := range g[:len(g)-1] {
			p.Rows = append(p.Rows, string(row[x:end]))
		}
		out = append(out, p)
		x = end
	}
	return out, nil
}

// RowNumbers reads one number per row.
func (p Problem) RowNumbers() ([]int64, error) {
	return numbers(p.Rows)
}

// ColumnNumbers reads one number per column, digits top to bottom.
func (p Problem) ColumnNumbers() ([]int64, error) {
	cols := aoc.ParseGrid(p.Rows, ' ').Transpose()
	lines := make([]string, len(cols))
	for i, c := range cols {
		lines[i] = string(c)
	}
	return numbers(lines)
}

func numbers(lines []string) ([]int64, error) {
	var out []int64
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n, err := aoc.Int64(l)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (p Problem) Solve(nums []int64) int64 {
	if p.Op == Add {
		return aoc.Sum(nums...)
	}
	return aoc.Product(nums...)
}

// GrandTotal returns the sum of every problem's answer, reading the numbers
// of each problem with read.
func GrandTotal(ps []Problem, read func(Problem) ([]int64, error)) (int64, error) {
	var total int64
	for _, p := range ps {
		nums, err := read(p)
		if err != nil {
			return 0, err
		}
		total += p.Solve(nums)
	}
	return total, nil
}

func (s Solver) grandTotal(read func(Problem) ([]int64, error)) (any, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	ps, err := ParseWorksheet(lines)
	if err != nil {
		return nil, err
	}
	return GrandTotal(ps, read)
}

// want=4277556
func (s Solver) D6p1() (any, error) {
	return s.grandTotal(Problem.RowNumbers)
}

// want=3263827
func (s Solver) D6p2() (any, error) {
	return s.grandTotal(Problem.ColumnNumbers)
}
