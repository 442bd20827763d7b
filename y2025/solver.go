// Package y2025 solves the 2025 puzzle collection.
package y2025

import (
	"embed"

	"github.com/puzzlebox/aoc"
)

//go:embed day??.go
var source embed.FS

// Solver holds a method D{day}p{part} for each solved part of 2025.
type Solver struct {
	*aoc.Puzzle
}

// Run runs every 2025 day with r.
func Run(r *aoc.Runner) error {
	return r.Run(2025, source, &Solver{})
}
