package visitedset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmit_FirstCallerWins(t *testing.T) {
	s := New()
	assert.True(t, s.Admit("https://example.com/a"))
	assert.False(t, s.Admit("https://example.com/a"))
	assert.False(t, s.Admit("https://EXAMPLE.com/a")) // same normalized form
}

func TestAdmit_DistinctURLsBothWin(t *testing.T) {
	s := New()
	assert.True(t, s.Admit("https://example.com/a"))
	assert.True(t, s.Admit("https://example.com/b"))
}

func TestAdmit_ConcurrentAdmitExactlyOneWinner(t *testing.T) {
	s := New()
	const n = 200
	var wg sync.WaitGroup
	wins := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i] = s.Admit("https://example.com/shared")
		}(i)
	}
	wg.Wait()

	count := 0
	for _, w := range wins {
		if w {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one caller should win admission for the same URL")
}
