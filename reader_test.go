package aoc

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestForLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	writeFile(t, path, "one\n\nthree\nfour")

	var got []string
	var ys []int
	err := NewFileReader(path).ForLines(func(y int, line string) error {
		ys = append(ys, y)
		got = append(got, line)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"one", "", "three", "four"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, ys); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestForLinesStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	writeFile(t, path, "1\n2\nx\n4\n")

	seen := 0
	err := NewFileReader(path).ForLines(func(_ int, line string) error {
		seen++
		_, err := Int(line)
		return err
	})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v; want *ParseError", err)
	}
	if pe.Line != 3 || pe.Text != "x" {
		t.Errorf("ParseError = line %d %q; want line 3 %q", pe.Line, pe.Text, "x")
	}
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		t.Errorf("err = %v; want wrapped *strconv.NumError", err)
	}
	if seen != 3 {
		t.Errorf("callback ran %d times; want 3", seen)
	}
}

func TestForLinesMissingFile(t *testing.T) {
	r := NewFileReader(filepath.Join(t.TempDir(), "nope.txt"))
	err := r.ForLines(func(int, string) error { return nil })
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v; want fs.ErrNotExist", err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Errorf("err = %v; want *fs.PathError", err)
	}
}

func TestForLinesLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	long := strings.Repeat("#", 200_000)
	writeFile(t, path, long+"\n")
	lines, err := NewFileReader(path).Lines()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != long {
		t.Errorf("got %d lines; want the one long line", len(lines))
	}
}

func TestParseLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	writeFile(t, path, "1 2\n3 4 5\n")

	got, err := ParseLines(NewFileReader(path), Fields)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4, 5}}, got); diff != "" {
		t.Errorf("ParseLines mismatch (-want +got):\n%s", diff)
	}

	writeFile(t, path, "1 2\n3 four\n")
	_, err = ParseLines(NewFileReader(path), Fields)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("err = %v; want ParseError on line 2", err)
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("tile %q", "1;2")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Invalid does not wrap ErrInvalidInput: %v", err)
	}
	if got, want := err.Error(), `invalid input: tile "1;2"`; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}

	pe := &ParseError{Line: 4, Text: "1;2", Err: err}
	if !errors.Is(pe, ErrInvalidInput) {
		t.Error("ParseError does not unwrap")
	}
	if got, want := pe.Error(), `line 4 "1;2": invalid input: tile "1;2"`; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}
