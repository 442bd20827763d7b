package y2025

import (
	"github.com/puzzlebox/aoc"
)

// BatteryBank is the joltage rating of each battery in a bank, in order.
type BatteryBank []int

func ParseBatteryBank(line string) (BatteryBank, error) {
	if line == "" {
		return nil, aoc.Invalid("empty battery bank")
	}
	ds, err := aoc.Digits(line)
	if err != nil {
		return nil, err
	}
	return BatteryBank(ds), nil
}

// MaxJoltage returns the largest number made by turning on n batteries,
// keeping their order in the bank. If the bank has fewer than n batteries all
// of them are used.
func (b BatteryBank) MaxJoltage(n int) int64 {
	drop := max(len(b)-n, 0)
	var st aoc.Stack[int]
	for _, d := range b {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	var j int64
	for _, d := range st.Slice()[:min(n, st.Len())] {
		j = j*10 + int64(d)
	}
	return j
}

func (s Solver) totalJoltage(n int) (any, error) {
	banks, err := aoc.ParseLines(s.Reader(), ParseBatteryBank)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, b := range banks {
		total += b.MaxJoltage(n)
	}
	return total, nil
}

// want=357
func (s Solver) D3p1() (any, error) {
	return s.totalJoltage(2)
}

// want=3121910778619
func (s Solver) D3p2() (any, error) {
	return s.totalJoltage(12)
}
