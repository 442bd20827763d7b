// Package y2024 solves the 2024 puzzle collection.
package y2024

import (
	"embed"

	"github.com/puzzlebox/aoc"
)

//go:embed day??.go
var source embed.FS

type Solver struct {
	*aoc.Puzzle
}

// Run runs every 2024 day with r.
func Run(r *aoc.Runner) error {
	return r.Run(2024, source, &Solver{})
}
