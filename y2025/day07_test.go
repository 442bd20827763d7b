package y2025

import (
	"testing"

	"github.com/puzzlebox/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifoldSample(t *testing.T) {
	m, err := ParseManifold(sampleLines(t, 7))
	require.NoError(t, err)
	assert.Equal(t, 21, m.Splits())
	assert.Equal(t, int64(40), m.Timelines())

	// Counting does not change the manifold.
	assert.Equal(t, 21, m.Splits())
	assert.Equal(t, int64(40), m.Timelines())
}

func TestManifold(t *testing.T) {
	tests := []struct {
		name      string
		diagram   []string
		splits    int
		timelines int64
	}{
		{
			name:      "no splitters",
			diagram:   []string{"..S..", ".....", "....."},
			splits:    0,
			timelines: 1,
		},
		{
			name:      "only the entry row",
			diagram:   []string{"S"},
			splits:    0,
			timelines: 1,
		},
		{
			name:      "beams merge",
			diagram:   []string{"..S..", "..^..", ".^.^.", "....."},
			splits:    3,
			timelines: 4,
		},
		{
			name:      "beam leaves at the edge",
			diagram:   []string{"S..", "^..", "..."},
			splits:    1,
			timelines: 1,
		},
		{
			name:      "no cascade within a row",
			diagram:   []string{"..S..", "..^..", "^^^.."},
			splits:    2,
			timelines: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseManifold(tt.diagram)
			require.NoError(t, err)
			assert.Equal(t, tt.splits, m.Splits())
			assert.Equal(t, tt.timelines, m.Timelines())
		})
	}
}

func TestParseManifoldErrors(t *testing.T) {
	for name, lines := range map[string][]string{
		"empty":           nil,
		"no entry":        {"...", ".^."},
		"two entries":     {"S.S", "..."},
		"entry below top": {"...", ".S."},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifold(lines)
			assert.ErrorIs(t, err, aoc.ErrInvalidInput)
		})
	}
}
