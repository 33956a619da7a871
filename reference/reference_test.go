package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "abd", 1},
		{"abc", "def", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"café", "cafe", 2}, // byte-level: é is two bytes
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "Distance(%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.want, Distance(tc.b, tc.a), "Distance(%q, %q)", tc.b, tc.a)
	}
}

func TestBoundedDistance(t *testing.T) {
	t.Run("within bound", func(t *testing.T) {
		d, ok := BoundedDistance("kitten", "sitting", 3)
		assert.True(t, ok)
		assert.Equal(t, 3, d)
	})

	t.Run("over bound", func(t *testing.T) {
		_, ok := BoundedDistance("kitten", "sitting", 2)
		assert.False(t, ok)
	})

	t.Run("length difference shortcut", func(t *testing.T) {
		_, ok := BoundedDistance("a", "aaaaaa", 2)
		assert.False(t, ok)
	})

	t.Run("negative bound", func(t *testing.T) {
		_, ok := BoundedDistance("a", "a", -1)
		assert.False(t, ok)
	})

	t.Run("zero bound exact", func(t *testing.T) {
		d, ok := BoundedDistance("same", "same", 0)
		assert.True(t, ok)
		assert.Equal(t, 0, d)
	})
}

func TestMatcher(t *testing.T) {
	m := NewMatcher([]string{"cat", "car", "cart", "cat"})

	t.Run("duplicates collapse", func(t *testing.T) {
		assert.Len(t, m.entries, 3)
	})

	t.Run("exact", func(t *testing.T) {
		entry, ok := m.SearchExact("cart")
		assert.True(t, ok)
		assert.Equal(t, "cart", entry)

		_, ok = m.SearchExact("ca")
		assert.False(t, ok)
	})

	t.Run("closest within budget", func(t *testing.T) {
		entry, dist, ok := m.Search("ct", 1)
		assert.True(t, ok)
		assert.Equal(t, "cat", entry)
		assert.Equal(t, 1, dist)
	})

	t.Run("tie goes to first inserted", func(t *testing.T) {
		entry, dist, ok := m.Search("cap", 1)
		assert.True(t, ok)
		assert.Equal(t, "cat", entry, "cat and car tie; cat came first")
		assert.Equal(t, 1, dist)
	})

	t.Run("nothing within budget", func(t *testing.T) {
		_, _, ok := m.Search("zzzzz", 2)
		assert.False(t, ok)
	})

	t.Run("exact hit short-circuits", func(t *testing.T) {
		entry, dist, ok := m.Search("car", 2)
		assert.True(t, ok)
		assert.Equal(t, "car", entry)
		assert.Equal(t, 0, dist)
	})
}
