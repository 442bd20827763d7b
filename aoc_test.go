package aoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestParseWant(t *testing.T) {
	tests := []struct {
		comment string
		want    string
		ok      bool
	}{
		{comment: "// want=1", want: "1", ok: true},
		{comment: "//want=1234", want: "1234", ok: true},
		{comment: "// want=", want: "", ok: true},
		{comment: "/*\nwant=142\n\nsome notes\n*/", want: "142", ok: true},
		{comment: "// D1p1 solves part 1.", ok: false},
		{comment: "// we want=3 here", ok: false},
	}
	for _, tt := range tests {
		got, ok := parseWant(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseWant(%q) = %q, %v; want %q, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const fakeSource = `package fake

// want=3
func (s fakeSolver) D1p1() (any, error) { return nil, nil }

// Part two counts the same lines.
//
// want=4
func (s fakeSolver) D1p2() (any, error) { return nil, nil }

func (s fakeSolver) D2p1() (any, error) { return nil, nil }

// want=x
func helper() {}
`

func TestExtractWants(t *testing.T) {
	src := fstest.MapFS{
		"day01.go":  {Data: []byte(fakeSource)},
		"notes.txt": {Data: []byte("// want=9")},
	}
	got, err := extractWants(src)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"D1p1": "3", "D1p2": "4", "helper": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extractWants mismatch (-want +got):\n%s", diff)
	}

	if _, err := extractWants(fstest.MapFS{"bad.go": {Data: []byte("package")}}); err == nil {
		t.Error("extractWants of invalid Go succeeded")
	}
}

type fakeSolver struct {
	*Puzzle
}

func (s fakeSolver) D1p1() (any, error) {
	lines, err := s.Lines()
	return len(lines), err
}

func (s fakeSolver) D1p2() (any, error) {
	n := 0
	err := s.ForLines(func(string) error {
		n++
		return nil
	})
	return n, err
}

func (s fakeSolver) D2p1() (any, error) {
	return nil, errors.New("boom")
}

func (s fakeSolver) D10p1() (any, error) {
	return s.Path(), nil
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunSampleMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "aoc_23", "day_01_sample.txt"), "a\nb\nc\n")

	var out bytes.Buffer
	r := &Runner{SampleDir: dir, SampleMode: true, Out: &out, Logger: zap.NewNop()}
	src := fstest.MapFS{"day01.go": {Data: []byte(fakeSource)}}
	if err := r.Run(2023, src, &fakeSolver{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"AoC 23 Day 01 Part 1 sample: 3 ✅",
		"AoC 23 Day 01 Part 2 sample: 3 ❌; want 4",
		"AoC 23 Day 02 Part 1: Failed with message: boom",
		"AoC 23 Day 10 Part 1 sample: " + filepath.Join(dir, "aoc_23", "day_10_sample.txt") + " (no want)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	// Running again gives the same output.
	var again bytes.Buffer
	r.Out = &again
	if err := r.Run(2023, src, &fakeSolver{}); err != nil {
		t.Fatal(err)
	}
	if again.String() != out.String() {
		t.Errorf("second run differs:\n%s", again.String())
	}
}

func TestRunInputMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "aoc_23", "day_01.txt"), "a\nb\n")

	var out bytes.Buffer
	r := &Runner{InputDir: dir, Day: 1, Out: &out}
	if err := r.Run(2023, nil, &fakeSolver{}); err != nil {
		t.Fatal(err)
	}
	want := "AoC 23 Day 01 Part 1: 2\nAoC 23 Day 01 Part 2: 2\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q; want %q", got, want)
	}

	out.Reset()
	r.Part = "2"
	if err := r.Run(2023, nil, &fakeSolver{}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "AoC 23 Day 01 Part 2: 2\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestRunMissingInput(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{InputDir: t.TempDir(), Day: 1, Out: &out}
	if err := r.Run(2023, nil, &fakeSolver{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2:\n%s", len(lines), out.String())
	}
	for _, l := range lines {
		if !strings.Contains(l, "Failed with message:") {
			t.Errorf("line %q does not report the failure", l)
		}
	}
}

type noPuzzle struct{}

func (noPuzzle) D1p1() (any, error) { return 1, nil }

type badSignature struct {
	*Puzzle
}

func (badSignature) D1p1() any { return 1 }

func TestRunMisuse(t *testing.T) {
	tests := []struct {
		name string
		slvr any
		day  int
	}{
		{name: "not a pointer", slvr: fakeSolver{}},
		{name: "no puzzle", slvr: &noPuzzle{}},
		{name: "bad signature", slvr: &badSignature{}},
		{name: "missing day", slvr: &fakeSolver{}, day: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Runner{Day: tt.day, Out: &bytes.Buffer{}}
			if err := r.Run(2023, nil, tt.slvr); err == nil {
				t.Error("Run succeeded; want error")
			}
		})
	}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&fakeSolver{})
	if err != nil {
		t.Fatal(err)
	}
	got := map[int][]string{}
	for d, v := range days {
		for _, p := range v.parts {
			got[d] = append(got[d], p.Name)
		}
	}
	want := map[int][]string{
		1:  {"D1p1", "D1p2"},
		2:  {"D2p1"},
		10: {"D10p1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extractMethods mismatch (-want +got):\n%s", diff)
	}
}

func TestPuzzlePath(t *testing.T) {
	p := &Puzzle{Year: 2025, Day: 8, inputDir: "in", sampleDir: "samples"}
	if got, want := p.Path(), filepath.Join("in", "aoc_25", "day_08.txt"); got != want {
		t.Errorf("Path() = %q; want %q", got, want)
	}
	p.SampleMode = true
	if got, want := p.Path(), filepath.Join("samples", "aoc_25", "day_08_sample.txt"); got != want {
		t.Errorf("Path() = %q; want %q", got, want)
	}
}
