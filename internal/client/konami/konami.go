// Package konami matches the classic key sequence easter egg.
package konami

import (
	"slices"
	"time"
)

// Code is the sequence of KeyboardEvent.key values that unlocks the egg.
var Code = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"b", "a",
}

const (
	// FlashColor is the page background while the egg is showing.
	FlashColor = "#FFC857"
	// FlashDuration is how long the background stays flashed.
	FlashDuration = time.Second
)

// Sequence matches the most recent keys against a code.
type Sequence struct {
	code   []string
	recent []string
}

// New returns a matcher for code, or for Code when none is given.
func New(code ...string) *Sequence {
	if len(code) == 0 {
		code = Code
	}
	return &Sequence{code: slices.Clone(code), recent: make([]string, 0, len(code))}
}

// Feed records a key press and reports whether the last keys spell the code.
func (s *Sequence) Feed(key string) bool {
	if len(s.recent) == len(s.code) {
		copy(s.recent, s.recent[1:])
		s.recent = s.recent[:len(s.recent)-1]
	}
	s.recent = append(s.recent, key)
	return slices.Equal(s.recent, s.code)
}

// Reset forgets the keys seen so far.
func (s *Sequence) Reset() { s.recent = s.recent[:0] }
