package y2025

import (
	"testing"

	"github.com/puzzlebox/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperRollsSample(t *testing.T) {
	g, err := ParsePaperRolls(sampleLines(t, 4))
	require.NoError(t, err)
	before := g.Hash()

	assert.Equal(t, 13, AccessibleRolls(g))
	assert.Equal(t, 43, RemoveRolls(g))
	assert.Equal(t, before, g.Hash(), "RemoveRolls modified its input")
	assert.Equal(t, 43, RemoveRolls(g))
}

func TestAccessible(t *testing.T) {
	g, err := ParsePaperRolls([]string{
		"@@@",
		"@@@",
		"@@@",
	})
	require.NoError(t, err)
	assert.True(t, Accessible(g, aoc.Pt{X: 0, Y: 0}), "corner has three neighbours")
	assert.False(t, Accessible(g, aoc.Pt{X: 1, Y: 0}), "edge has five neighbours")
	assert.False(t, Accessible(g, aoc.Pt{X: 1, Y: 1}))
	assert.False(t, Accessible(g, aoc.Pt{X: 5, Y: 5}), "outside the floor")
	assert.Equal(t, 9, RemoveRolls(g))
}

func TestParsePaperRollsEmpty(t *testing.T) {
	_, err := ParsePaperRolls(nil)
	assert.ErrorIs(t, err, aoc.ErrInvalidInput)
}
