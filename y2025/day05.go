package y2025

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/puzzlebox/aoc"
)

// IDRange is an inclusive range of fresh ingredient ids.
type IDRange struct {
	Start, End int64
}

func (r IDRange) Contains(id int64) bool {
	return r.Start <= id && id <= r.End
}

func (r IDRange) Len() int64 {
	return r.End - r.Start + 1
}

// Inventory is the database of fresh id ranges followed by the available
// ingredient ids.
type Inventory struct {
	Fresh       []IDRange
	Ingredients []int64
}

var (
	freshRangeRx   = regexp.MustCompile(`^(\d+)-(\d+)$`)
	ingredientIDRx = regexp.MustCompile(`^\d+$`)
)

// ParseInventory reads the ranges, a blank line, then one id per line.
func ParseInventory(r aoc.FileReader) (Inventory, error) {
	var inv Inventory
	ids := false
	err := r.ForLines(func(_ int, line string) error {
		switch {
		case line == "":
			ids = true
		case !ids:
			m := freshRangeRx.FindStringSubmatch(line)
			if m == nil {
				return aoc.Invalid("fresh id range %q", line)
			}
			start, err := aoc.Int64(m[1])
			if err != nil {
				return err
			}
			end, err := aoc.Int64(m[2])
			if err != nil {
				return err
			}
			if start > end {
				return aoc.Invalid("fresh id range %q ends before it starts", line)
			}
			inv.Fresh = append(inv.Fresh, IDRange{start, end})
		default:
			if !ingredientIDRx.MatchString(line) {
				return aoc.Invalid("ingredient id %q", line)
			}
			id, err := aoc.Int64(line)
			if err != nil {
				return err
			}
			inv.Ingredients = append(inv.Ingredients, id)
		}
		return nil
	})
	return inv, err
}

func (inv Inventory) IsFresh(id int64) bool {
	return slices.ContainsFunc(inv.Fresh, func(r IDRange) bool { return r.Contains(id) })
}

// FreshIngredients returns the number of available ingredients that are fresh.
func (inv Inventory) FreshIngredients() int {
	n := 0
	for _, id := range inv.Ingredients {
		if inv.IsFresh(id) {
			n++
		}
	}
	return n
}

// MergeRanges returns the union of rs as sorted, non-overlapping ranges.
func MergeRanges(rs []IDRange) []IDRange {
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b IDRange) int {
		return cmp.Compare(a.Start, b.Start)
	})
	var out []IDRange
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Start <= out[n-1].End+1 {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}

// FreshIDs returns how many distinct ids the fresh ranges cover.
func (inv Inventory) FreshIDs() int64 {
	var n int64
	for _, r := range MergeRanges(inv.Fresh) {
		n += r.Len()
	}
	return n
}

// want=3
func (s Solver) D5p1() (any, error) {
	inv, err := ParseInventory(s.Reader())
	if err != nil {
		return nil, err
	}
	return inv.FreshIngredients(), nil
}

// want=14
func (s Solver) D5p2() (any, error) {
	inv, err := ParseInventory(s.Reader())
	if err != nil {
		return nil, err
	}
	return inv.FreshIDs(), nil
}
