package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// FileReader reads puzzle input line by line from a file.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Path() string {
	return r.path
}

// ForLines calls onLine for each line of the file, in order.
// The y value is the row number, starting with 0.
//
// The file is opened on every call and read exactly once. If onLine returns an
// error the read stops and the error is returned as a *ParseError.
func (r FileReader) ForLines(onLine func(y int, line string) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	y := -1
	for s.Scan() {
		y++
		line := s.Text()
		if err := onLine(y, line); err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return err
			}
			return &ParseError{Line: y + 1, Text: line, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", r.path, err)
	}
	return nil
}

// Lines returns all lines of the file.
func (r FileReader) Lines() ([]string, error) {
	var out []string
	err := r.ForLines(func(_ int, line string) error {
		out = append(out, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseLines parses each line of the file with parse. The whole read fails on
// the first line that does not parse.
func ParseLines[T any](r FileReader, parse func(line string) (T, error)) ([]T, error) {
	var out []T
	err := r.ForLines(func(_ int, line string) error {
		v, err := parse(line)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
