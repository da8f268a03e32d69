package konami

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedAll(s *Sequence, keys []string) (matched []int) {
	for i, k := range keys {
		if s.Feed(k) {
			matched = append(matched, i)
		}
	}
	return matched
}

func TestSequence_MatchesCode(t *testing.T) {
	s := New()
	assert.Equal(t, []int{9}, feedAll(s, Code))
}

func TestSequence_SlidingWindow(t *testing.T) {
	s := New()
	keys := append([]string{"x", "ArrowUp", "Enter"}, Code...)
	assert.Equal(t, []int{len(keys) - 1}, feedAll(s, keys))

	// Extra keys after a match break it until the full code is typed again.
	assert.False(t, s.Feed("a"))
	assert.Equal(t, []int{9}, feedAll(s, Code))
}

func TestSequence_OverlappingPrefix(t *testing.T) {
	s := New()
	keys := append([]string{"ArrowUp", "ArrowUp"}, Code...)
	assert.Equal(t, []int{len(keys) - 1}, feedAll(s, keys))
}

func TestSequence_WrongOrderNeverMatches(t *testing.T) {
	s := New()
	keys := []string{"ArrowUp", "ArrowDown", "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight", "a", "b"}
	assert.Empty(t, feedAll(s, keys))
}

func TestSequence_CustomCodeAndReset(t *testing.T) {
	s := New("g", "o")
	assert.False(t, s.Feed("g"))
	s.Reset()
	assert.False(t, s.Feed("o"))
	assert.False(t, s.Feed("g"))
	assert.True(t, s.Feed("o"))
}
