package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type book struct {
	title  string
	author string
	genre  string
}

var books = []book{
	{"The Go Programming Language", "Donovan", "reference"},
	{"Linear Algebra Done Right", "Axler", "math"},
	{"Gödel, Escher, Bach", "Hofstadter", "math"},
}

func TestApply(t *testing.T) {
	t.Run("no predicates keeps everything", func(t *testing.T) {
		out := Apply(books)
		assert.Equal(t, books, out)
	})

	t.Run("nil predicates impose no constraint", func(t *testing.T) {
		out := Apply(books, nil, nil)
		assert.Equal(t, books, out)
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		out := Apply(books,
			Equals("math", func(b book) string { return b.genre }),
			TextMatch("bach", func(b book) []string { return []string{b.title} }),
		)
		assert.Len(t, out, 1)
		assert.Equal(t, "Hofstadter", out[0].author)
	})

	t.Run("order is preserved", func(t *testing.T) {
		out := Apply(books, func(b book) bool { return b.genre == "math" })
		assert.Equal(t, []book{books[1], books[2]}, out)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		out := Apply([]book{}, func(b book) bool { return true })
		assert.Empty(t, out)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		pred := TextMatch("go", func(b book) []string { return []string{b.title} })
		once := Apply(books, pred)
		twice := Apply(once, pred)
		assert.Equal(t, once, twice)
	})
}

func TestTextMatch(t *testing.T) {
	fields := func(b book) []string { return []string{b.title, b.author} }

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query matches all", "", 3},
		{"whitespace query matches all", "   ", 3},
		{"case-insensitive title match", "LINEAR", 1},
		{"author match", "donovan", 1},
		{"substring match", "alg", 1},
		{"no match", "chemistry", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(books, TextMatch(tt.query, fields))
			assert.Len(t, out, tt.want)
		})
	}
}

func TestEquals(t *testing.T) {
	t.Run("empty wanted is no constraint", func(t *testing.T) {
		assert.Nil(t, Equals("", func(b book) string { return b.genre }))
	})

	t.Run("exact match only", func(t *testing.T) {
		out := Apply(books, Equals("math", func(b book) string { return b.genre }))
		assert.Len(t, out, 2)
		// Equals is exact, not substring.
		out = Apply(books, Equals("mat", func(b book) string { return b.genre }))
		assert.Empty(t, out)
	})
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Hello World", "WORLD"))
	assert.True(t, ContainsFold("Hello", ""))
	assert.False(t, ContainsFold("Hello", "bye"))
}
