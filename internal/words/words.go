// Package words is the word source for board generation. It ships a default
// bank compiled into the binary and accepts an override file on disk.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"codenames/internal/game"
)

//go:embed bank.txt
var defaultBank string

// Source supplies the candidate word pool for new boards.
type Source interface {
	// Words returns the full pool. Entries are distinct and trimmed.
	Words() []string
}

type Bank struct {
	words []string
}

// Load builds a Bank from the file at path, or from the embedded default
// bank when path is empty. A bank that cannot fill a board fails here, at
// startup, rather than at room creation.
func Load(path string) (*Bank, error) {
	raw := defaultBank
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read word bank: %w", err)
		}
		raw = string(data)
	}
	return parse(raw)
}

func parse(raw string) (*Bank, error) {
	lines := strings.Split(raw, "\n")
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	if len(out) < game.BoardSize {
		return nil, game.ErrInsufficientWords
	}
	return &Bank{words: out}, nil
}

func (b *Bank) Words() []string {
	// Callers shuffle the pool, hand out a copy.
	return append([]string(nil), b.words...)
}
