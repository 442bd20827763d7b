package y2025

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

// ProductRange is an inclusive range of product ids.
type ProductRange struct {
	Start, End int64
}

var productRangeRx = regexp.MustCompile(`^(\d+)-(\d+)$`)

func ParseProductRange(s string) (ProductRange, error) {
	m := productRangeRx.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ProductRange{}, aoc.Invalid("product range %q", s)
	}
	start, err := aoc.Int64(m[1])
	if err != nil {
		return ProductRange{}, err
	}
	end, err := aoc.Int64(m[2])
	if err != nil {
		return ProductRange{}, err
	}
	if start > end {
		return ProductRange{}, aoc.Invalid("product range %q ends before it starts", s)
	}
	return ProductRange{start, end}, nil
}

// ParseProductRanges parses a comma separated list of ranges.
func ParseProductRanges(line string) ([]ProductRange, error) {
	var out []ProductRange
	for _, f := range strings.Split(line, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		r, err := ParseProductRange(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// RepeatedTwice reports whether id is some digit sequence written twice.
func RepeatedTwice(id int64) bool {
	s := strconv.FormatInt(id, 10)
	if len(s)%2 != 0 {
		return false
	}
	return aoc.AllEqual(aoc.Chunks(s, len(s)/2))
}

// Repeated reports whether id is some digit sequence written two or more
// times.
func Repeated(id int64) bool {
	s := strconv.FormatInt(id, 10)
	for k := 1; k <= len(s)/2; k++ {
		if len(s)%k == 0 && aoc.AllEqual(aoc.Chunks(s, k)) {
			return true
		}
	}
	return false
}

// SumInvalid returns the sum of the ids in r for which invalid is true.
func (r ProductRange) SumInvalid(invalid func(int64) bool) int64 {
	var sum int64
	for id := r.Start; id <= r.End; id++ {
		if invalid(id) {
			sum += id
		}
	}
	return sum
}

func (s Solver) productRanges() ([]ProductRange, error) {
	var out []ProductRange
	err := s.ForLines(func(line string) error {
		rs, err := ParseProductRanges(line)
		if err != nil {
			return err
		}
		out = append(out, rs...)
		return nil
	})
	return out, err
}

func (s Solver) sumInvalid(invalid func(int64) bool) (any, error) {
	rs, err := s.productRanges()
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, r := range rs {
		sum += r.SumInvalid(invalid)
	}
	return sum, nil
}

// want=1227775554
func (s Solver) D2p1() (any, error) {
	return s.sumInvalid(RepeatedTwice)
}

// want=4174379265
func (s Solver) D2p2() (any, error) {
	return s.sumInvalid(Repeated)
}
