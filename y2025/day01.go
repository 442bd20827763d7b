package y2025

import (
	"regexp"

	"github.com/puzzlebox/aoc"
)

const dialSize = 100

type Direction int

const (
	Left Direction = iota
	Right
)

// Rotation turns the dial by Distance clicks (less than a full turn) after
// FullTurns complete turns.
type Rotation struct {
	Dir       Direction
	Distance  int
	FullTurns int
}

var rotationRx = regexp.MustCompile(`^([LR])(\d+)$`)

func ParseRotation(line string) (Rotation, error) {
	m := rotationRx.FindStringSubmatch(line)
	if m == nil {
		return Rotation{}, aoc.Invalid("rotation %q", line)
	}
	n, err := aoc.Int(m[2])
	if err != nil {
		return Rotation{}, err
	}
	r := Rotation{
		Dir:       Right,
		Distance:  n % dialSize,
		FullTurns: n / dialSize,
	}
	if m[1] == "L" {
		r.Dir = Left
	}
	return r, nil
}

// Dial is a safe dial numbered 0 through 99.
type Dial struct {
	Pos int

	Landed int // rotations ending on 0
	Passed int // clicks through 0 that did not end a rotation
}

func NewDial() *Dial {
	return &Dial{Pos: 50}
}

// Apply turns the dial and counts every click that points at 0.
func (d *Dial) Apply(r Rotation) {
	n := r.FullTurns*dialSize + r.Distance
	var hits int
	switch {
	case r.Dir == Right:
		hits = (d.Pos + n) / dialSize
		d.Pos = (d.Pos + n) % dialSize
	case d.Pos == 0:
		hits = n / dialSize
		d.Pos = (dialSize - n%dialSize) % dialSize
	default:
		if n >= d.Pos {
			hits = (n-d.Pos)/dialSize + 1
		}
		d.Pos = ((d.Pos-n)%dialSize + dialSize) % dialSize
	}
	if d.Pos == 0 {
		d.Landed++
		if hits > 0 {
			hits--
		}
	}
	d.Passed += hits
}

func (s Solver) dial() (*Dial, error) {
	rs, err := aoc.ParseLines(s.Reader(), ParseRotation)
	if err != nil {
		return nil, err
	}
	d := NewDial()
	for _, r := range rs {
		d.Apply(r)
	}
	return d, nil
}

// want=3
func (s Solver) D1p1() (any, error) {
	d, err := s.dial()
	if err != nil {
		return nil, err
	}
	return d.Landed, nil
}

// want=6
func (s Solver) D1p2() (any, error) {
	d, err := s.dial()
	if err != nil {
		return nil, err
	}
	return d.Landed + d.Passed, nil
}
