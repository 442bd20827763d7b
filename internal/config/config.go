// Package config holds the defaults of the aoc command, read from the
// environment and an optional .env file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultInputDir  = "resources"
	DefaultSampleDir = "testdata"
)

type Config struct {
	// InputDir holds the real puzzle inputs, laid out as aoc_YY/day_NN.txt.
	InputDir string
	// SampleDir holds the sample inputs, laid out as aoc_YY/day_NN_sample.txt.
	SampleDir string
}

// Load reads the given .env files (or ./.env when none are given), then the
// AOC_INPUT_DIR and AOC_SAMPLE_DIR variables. Missing files are ignored and
// variables already set in the environment win over the files.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)
	return Config{
		InputDir:  firstNonEmpty(os.Getenv("AOC_INPUT_DIR"), DefaultInputDir),
		SampleDir: firstNonEmpty(os.Getenv("AOC_SAMPLE_DIR"), DefaultSampleDir),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
