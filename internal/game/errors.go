package game

import "errors"

var ErrInsufficientWords = errors.New("word pool has fewer than 25 distinct words")
