package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(n int) []string {
	pool := make([]string, n)
	for i := range pool {
		pool[i] = fmt.Sprintf("word%02d", i)
	}
	return pool
}

func TestGenerateBoard_Properties(t *testing.T) {
	board, err := GenerateBoard(testPool(50))
	require.NoError(t, err)

	colorCounts := map[Color]int{}
	words := map[string]struct{}{}
	positions := map[int]struct{}{}
	for _, c := range board {
		colorCounts[c.Color]++
		words[c.Word] = struct{}{}
		positions[c.Position] = struct{}{}
		assert.False(t, c.Revealed)
	}

	assert.Equal(t, RedCards, colorCounts[ColorRed])
	assert.Equal(t, BlueCards, colorCounts[ColorBlue])
	assert.Equal(t, NeutralCards, colorCounts[ColorNeutral])
	assert.Equal(t, AssassinCards, colorCounts[ColorAssassin])
	assert.Zero(t, colorCounts[ColorHidden])

	assert.Len(t, words, BoardSize, "words must be distinct")

	require.Len(t, positions, BoardSize)
	for i := 0; i < BoardSize; i++ {
		assert.Equal(t, board[i].Position, i, "positions must match board order")
	}
}

func TestGenerateBoard_InsufficientWords(t *testing.T) {
	_, err := GenerateBoard(testPool(24))
	assert.ErrorIs(t, err, ErrInsufficientWords)

	_, err = GenerateBoard(nil)
	assert.ErrorIs(t, err, ErrInsufficientWords)

	_, err = GenerateBoard(testPool(25))
	assert.NoError(t, err)
}

func TestGenerateBoard_DeduplicatesPool(t *testing.T) {
	// 40 entries but only 20 distinct
	pool := append(testPool(20), testPool(20)...)
	_, err := GenerateBoard(pool)
	assert.ErrorIs(t, err, ErrInsufficientWords)

	// plenty of duplicates, still 30 distinct
	pool = append(testPool(30), testPool(30)...)
	board, err := GenerateBoard(pool)
	require.NoError(t, err)

	words := map[string]struct{}{}
	for _, c := range board {
		words[c.Word] = struct{}{}
	}
	assert.Len(t, words, BoardSize)
}
