package maze

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("Keys compare by value", func(t *testing.T) {
		s := NewStore(0)
		require.NoError(t, s.Insert(Coordinate{X: 1, Y: 2, Z: 3}, NewDirectionSet(Up)))

		other := Coordinate{X: 1, Y: 2}
		other.Z = 3
		assert.True(t, s.Contains(other))
		dirs, ok := s.Get(other)
		assert.True(t, ok)
		assert.Equal(t, NewDirectionSet(Up), dirs)

		assert.False(t, s.Contains(Coordinate{X: 3, Y: 2, Z: 1}))
		_, ok = s.Get(Coordinate{X: 3, Y: 2, Z: 1})
		assert.False(t, ok)
	})

	t.Run("Overwrite keeps first insertion order", func(t *testing.T) {
		s := NewStore(4)
		a, b, c := Coordinate{X: 2}, Coordinate{Y: 2}, Coordinate{Z: 2}
		require.NoError(t, s.Insert(a, 0))
		require.NoError(t, s.Insert(b, 0))
		require.NoError(t, s.Insert(c, 0))
		require.NoError(t, s.Insert(a, NewDirectionSet(Back)))

		assert.Equal(t, 3, s.Len())
		if diff := cmp.Diff([]Coordinate{a, b, c}, slices.Collect(s.Keys())); diff != "" {
			t.Errorf("key order mismatch (-want +got):\n%s", diff)
		}
		dirs, _ := s.Get(a)
		assert.Equal(t, NewDirectionSet(Back), dirs)
	})

	t.Run("Keys can be traversed more than once", func(t *testing.T) {
		s := NewStore(0)
		for i := 0; i < 5; i++ {
			require.NoError(t, s.Insert(Coordinate{X: i}, 0))
		}
		first := slices.Collect(s.Keys())
		second := slices.Collect(s.Keys())
		assert.Len(t, first, 5)
		assert.Equal(t, first, second)

		seen := 0
		for range s.Keys() {
			seen++
			if seen == 2 {
				break
			}
		}
		assert.Equal(t, 2, seen)
	})

	t.Run("Out of range coordinates are rejected", func(t *testing.T) {
		s := NewStore(0)
		assert.ErrorIs(t, s.Insert(Coordinate{X: -1}, 0), ErrOutOfRange)
		assert.ErrorIs(t, s.Insert(Coordinate{Z: MaxSize}, 0), ErrOutOfRange)
		assert.False(t, s.Contains(Coordinate{X: -1}))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Random entry on empty store", func(t *testing.T) {
		_, ok := NewStore(0).RandomEntry(rand.New(rand.NewSource(1)))
		assert.False(t, ok)
	})

	t.Run("Random entry reaches every key", func(t *testing.T) {
		s := NewStore(0)
		for i := 0; i < 8; i++ {
			require.NoError(t, s.Insert(Coordinate{X: i % 2, Y: i / 2 % 2, Z: i / 4}, 0))
		}

		rnd := rand.New(rand.NewSource(42))
		counts := map[Coordinate]int{}
		for i := 0; i < 8000; i++ {
			pos, ok := s.RandomEntry(rnd)
			require.True(t, ok)
			require.True(t, s.Contains(pos))
			counts[pos]++
		}
		assert.Len(t, counts, 8)
		for pos, n := range counts {
			assert.InDelta(t, 1000, n, 200, "draws for %s", pos)
		}
	})
}
