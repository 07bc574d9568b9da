package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer("Ann:X|7/|9-|X|-8|8/|-6|X|X|X||81")
	require.NoError(t, err)

	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, 167, p.Score)
	assert.Equal(t, Finished, p.Status)
	assert.Equal(t, 17, p.Throws.Len())
	assert.Equal(t, Progress{Throws: 17, Frames: 10, FillExpected: 2, FillSeen: 2}, p.Progress)
	assert.Equal(t, 102, p.Pinfall())
}

func TestParsePlayerNotStarted(t *testing.T) {
	p, err := ParsePlayer("Bob:")
	require.NoError(t, err)

	assert.Equal(t, "Bob", p.Name)
	assert.Zero(t, p.Score)
	assert.Equal(t, NotStarted, p.Status)
	assert.Zero(t, p.Throws.Len())
}

func TestParsePlayerIdempotent(t *testing.T) {
	lines := []string{
		"Ann:",
		"Ann:3-|X|4/|5",
		"Ann:X|X|X|X|X|X|X|X|X|X||XX",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			a, err := ParsePlayer(line)
			require.NoError(t, err)
			b, err := ParsePlayer(line)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestParsePlayerInvalid(t *testing.T) {
	p, err := ParsePlayer("Ann:X|Y")
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, Player{}, p)
}
