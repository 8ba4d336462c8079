package game

import (
	"math/rand"
	"time"
)

// GenerateBoard draws 25 distinct words from pool and zips them with a
// shuffled color deck. Both shuffles are Fisher-Yates on a source seeded for
// this call, so concurrent generations never share shuffle state.
func GenerateBoard(pool []string) (Board, error) {
	words := distinct(pool)
	if len(words) < BoardSize {
		return Board{}, ErrInsufficientWords
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	colors := colorDeck()
	r.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	var b Board
	for i := 0; i < BoardSize; i++ {
		b[i] = Card{
			Word:     words[i],
			Color:    colors[i],
			Position: i,
		}
	}
	return b, nil
}

func colorDeck() []Color {
	deck := make([]Color, 0, BoardSize)
	for i := 0; i < RedCards; i++ {
		deck = append(deck, ColorRed)
	}
	for i := 0; i < BlueCards; i++ {
		deck = append(deck, ColorBlue)
	}
	for i := 0; i < NeutralCards; i++ {
		deck = append(deck, ColorNeutral)
	}
	for i := 0; i < AssassinCards; i++ {
		deck = append(deck, ColorAssassin)
	}
	return deck
}

// distinct keeps the first occurrence of each word, in pool order.
func distinct(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
