package y2024

import (
	"slices"

	"github.com/puzzlebox/aoc"
)

// LocationLists are the two historians' lists of location ids.
type LocationLists struct {
	Left, Right []int
}

func ParseLocationLists(r aoc.FileReader) (LocationLists, error) {
	var ll LocationLists
	err := r.ForLines(func(_ int, line string) error {
		ids, err := aoc.Fields(line)
		if err != nil {
			return err
		}
		if len(ids) != 2 {
			return aoc.Invalid("want two location ids, got %d", len(ids))
		}
		ll.Left = append(ll.Left, ids[0])
		ll.Right = append(ll.Right, ids[1])
		return nil
	})
	return ll, err
}

// Distance pairs the smallest ids of both lists, then the next smallest and
// so on, and returns the sum of the differences within each pair.
func (ll LocationLists) Distance() int {
	l, r := slices.Clone(ll.Left), slices.Clone(ll.Right)
	slices.Sort(l)
	slices.Sort(r)
	d := 0
	for i := range l {
		d += aoc.AbsDiff(l[i], r[i])
	}
	return d
}

// Similarity adds up each left id multiplied by the number of times it
// appears in the right list.
func (ll LocationLists) Similarity() int {
	counts := make(map[int]int, len(ll.Right))
	for _, id := range ll.Right {
		counts[id]++
	}
	s := 0
	for _, id := range ll.Left {
		s += id * counts[id]
	}
	return s
}

// want=11
func (s Solver) D1p1() (any, error) {
	ll, err := ParseLocationLists(s.Reader())
	if err != nil {
		return nil, err
	}
	return ll.Distance(), nil
}

// want=31
func (s Solver) D1p2() (any, error) {
	ll, err := ParseLocationLists(s.Reader())
	if err != nil {
		return nil, err
	}
	return ll.Similarity(), nil
}
