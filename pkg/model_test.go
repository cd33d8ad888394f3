package spell

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speller/pkg/options"
)

func mustTrain(t *testing.T, corpus string, opts ...options.Options) *Model {
	t.Helper()
	m, err := Train([]byte(corpus), opts...)
	require.NoError(t, err)
	return m
}

func TestTrainTokenization(t *testing.T) {
	m := mustTrain(t, "This is a TEST.")

	keys := m.Words()
	slices.Sort(keys)
	assert.Equal(t, []string{"a", "is", "test", "this"}, keys)

	m = mustTrain(t, "This is a test. 123; A TEST this is.")
	assert.Equal(t, 2, m.Count("a"))
	assert.Equal(t, 2, m.Count("is"))
	assert.Equal(t, 2, m.Count("test"))
	assert.Equal(t, 2, m.Count("this"))
	assert.Equal(t, 8, m.Total())
	assert.Equal(t, 4, m.Len())
}

func TestTrainSeparators(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		words  []string
	}{
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"digits are separators", "abc123def", []string{"abc", "def"}},
		{"hyphen splits", "well-known", []string{"known", "well"}},
		{"underscore splits", "snake_case", []string{"case", "snake"}},
		{"non-latin letters kept", "Café déjà", []string{"café", "déjà"}},
		{"only separators", "123 ... \t\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustTrain(t, tt.corpus)
			keys := m.Words()
			slices.Sort(keys)
			assert.Equal(t, tt.words, keys)
		})
	}
}

func TestTrainEmptyCorpus(t *testing.T) {
	m := mustTrain(t, "")

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Total())
	assert.Equal(t, 0.0, m.Probability("the"))
	assert.False(t, m.Known("the"))
	assert.Empty(t, m.Words())
	assert.Empty(t, m.MostCommon(10))
}

func TestTrainRejectsInvalidUTF8(t *testing.T) {
	m, err := Train([]byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestProbability(t *testing.T) {
	m := mustTrain(t, "the the the the cat")

	assert.Equal(t, 4, m.Count("the"))
	assert.Equal(t, 1, m.Count("cat"))
	assert.Equal(t, 0, m.Count("dog"))
	assert.Equal(t, 5, m.Total())
	assert.InDelta(t, 0.8, m.Probability("the"), 1e-12)
	assert.InDelta(t, 0.2, m.Probability("cat"), 1e-12)
	assert.Equal(t, 0.0, m.Probability("dog"))
}

func TestCountThreshold(t *testing.T) {
	m := mustTrain(t, "the the cat", options.WithCountThreshold(2))

	assert.True(t, m.Known("the"))
	assert.False(t, m.Known("cat"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m.Total())
}

func TestExtraWords(t *testing.T) {
	t.Run("merged with given counts", func(t *testing.T) {
		m := mustTrain(t, "the the the",
			options.WithExtraWords(map[string]int{"kubernetes": 1000}))
		assert.Equal(t, 1000, m.Count("kubernetes"))
		assert.Equal(t, 1003, m.Total())
	})

	t.Run("lowercased before merging", func(t *testing.T) {
		m := mustTrain(t, "", options.WithExtraWord("GoLang", 5))
		assert.True(t, m.Known("golang"))
		assert.False(t, m.Known("GoLang"))
	})

	t.Run("counts are raised never lowered", func(t *testing.T) {
		m := mustTrain(t, "the the the", options.WithExtraWord("the", 1))
		assert.Equal(t, 3, m.Count("the"))
		assert.Equal(t, 3, m.Total())

		m = mustTrain(t, "the the the", options.WithExtraWord("the", 10))
		assert.Equal(t, 10, m.Count("the"))
		assert.Equal(t, 10, m.Total())
	})

	t.Run("non-letter entries dropped", func(t *testing.T) {
		m := mustTrain(t, "", options.WithExtraWords(map[string]int{
			"data-base": 10,
			"abc123":    10,
			"":          10,
			"valid":     10,
		}))
		assert.Equal(t, []string{"valid"}, m.Words())
	})

	t.Run("zero and negative counts dropped", func(t *testing.T) {
		m := mustTrain(t, "", options.WithExtraWords(map[string]int{"a": 0, "b": -3}))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("exempt from count threshold", func(t *testing.T) {
		m := mustTrain(t, "the the cat",
			options.WithCountThreshold(2),
			options.WithExtraWord("zebra", 1))
		assert.False(t, m.Known("cat"))
		assert.True(t, m.Known("zebra"))
	})
}

func TestMostCommon(t *testing.T) {
	m := mustTrain(t, "the the the of of and")

	assert.Equal(t, []WordCount{{"the", 3}, {"of", 2}, {"and", 1}}, m.MostCommon(0))
	assert.Equal(t, []WordCount{{"the", 3}, {"of", 2}}, m.MostCommon(2))
	assert.Equal(t, []WordCount{{"the", 3}, {"of", 2}, {"and", 1}}, m.MostCommon(10))

	ties := mustTrain(t, "bb aa")
	assert.Equal(t, []WordCount{{"aa", 1}, {"bb", 1}}, ties.MostCommon(0))
}
