package spell

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/maps"

	"speller/pkg/options"
)

var wordRe = regexp.MustCompile(`\p{L}+`)

// Model maps normalized words to their corpus occurrence counts. Keys
// are non-empty, lowercase, letter-only strings; every count is
// positive and total is their sum. A Model never changes after
// training, so any number of goroutines may read it concurrently.
type Model struct {
	counts  map[string]int
	total   int
	longest int // rune length of the longest known word
}

// Train builds a frequency model from corpus text. Tokens are maximal
// runs of letters, lowercased; everything else separates them. The
// bytes must be valid UTF-8, anything else is a *CorpusError. An empty
// corpus is valid and yields a model with no words.
func Train(text []byte, opts ...options.Options) (*Model, error) {
	conf := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&conf)
	}
	return train(text, conf)
}

func train(text []byte, conf options.SpellerOptions) (*Model, error) {
	if !utf8.Valid(text) {
		return nil, &CorpusError{Err: ErrInvalidEncoding}
	}
	m := &Model{counts: make(map[string]int)}
	for _, token := range wordRe.FindAll(text, -1) {
		m.add(strings.ToLower(string(token)), 1)
	}
	if conf.CountThreshold > 1 {
		m.prune(conf.CountThreshold)
	}
	m.merge(conf.ExtraWords)
	return m, nil
}

func (m *Model) add(word string, n int) {
	if word == "" || n <= 0 {
		return
	}
	m.counts[word] += n
	m.total += n
	if l := utf8.RuneCountInString(word); l > m.longest {
		m.longest = l
	}
}

func (m *Model) prune(threshold int) {
	m.longest = 0
	for word, count := range m.counts {
		if count < threshold {
			delete(m.counts, word)
			m.total -= count
			continue
		}
		if l := utf8.RuneCountInString(word); l > m.longest {
			m.longest = l
		}
	}
}

// merge raises counts for extra words, never lowers them. Words are
// lowercased first; entries that are not pure letter runs are dropped
// so the key invariant holds.
func (m *Model) merge(words map[string]int) {
	for word, count := range words {
		word = strings.ToLower(word)
		if count <= 0 || !isLetters(word) {
			continue
		}
		if cur := m.counts[word]; count > cur {
			m.counts[word] = count
			m.total += count - cur
			if l := utf8.RuneCountInString(word); l > m.longest {
				m.longest = l
			}
		}
	}
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Count returns how many times word occurred in the corpus, 0 if
// unknown.
func (m *Model) Count(word string) int { return m.counts[word] }

// Known reports whether word is in the model.
func (m *Model) Known(word string) bool {
	_, ok := m.counts[word]
	return ok
}

// Probability returns the relative frequency of word, count over
// total. Unknown words score 0, as does every word on an empty model.
func (m *Model) Probability(word string) float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.counts[word]) / float64(m.total)
}

// Total returns the number of counted tokens, repeats included.
func (m *Model) Total() int { return m.total }

// Len returns the number of distinct words.
func (m *Model) Len() int { return len(m.counts) }

// Words returns every known word in no particular order.
func (m *Model) Words() []string { return maps.Keys(m.counts) }

// WordCount pairs a word with its corpus count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MostCommon returns the n highest-count words, most frequent first,
// ties ordered alphabetically. n <= 0 returns all words.
func (m *Model) MostCommon(n int) []WordCount {
	all := make([]WordCount, 0, len(m.counts))
	for word, count := range m.counts {
		all = append(all, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(all, func(a, b WordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Word, b.Word)
	})
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all
}
