// Package spell corrects single-word spelling with a frequency model
// trained from corpus text. An unknown word is replaced by the most
// frequent known word reachable within two atomic edits, preferring
// one edit over two; a word with no known neighbor comes back
// unchanged.
package spell

import (
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"speller/pkg/options"
	"speller/pkg/verbosity"
)

// Corrector proposes corrections for single words. It is immutable
// after construction and safe for concurrent use.
type Corrector struct {
	model    *Model
	alphabet []rune
}

// New trains a model from corpus text and wraps it in a Corrector.
func New(text []byte, opts ...options.Options) (*Corrector, error) {
	conf := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&conf)
	}
	model, err := train(text, conf)
	if err != nil {
		return nil, err
	}
	return &Corrector{model: model, alphabet: []rune(conf.Alphabet)}, nil
}

// NewFromReader trains from r. Read failures surface as *CorpusError.
func NewFromReader(r io.Reader, opts ...options.Options) (*Corrector, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, &CorpusError{Err: err}
	}
	return New(text, opts...)
}

// NewFromModel wraps an already trained model. Only corrector-side
// options apply here; training options are ignored.
func NewFromModel(model *Model, opts ...options.Options) *Corrector {
	conf := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&conf)
	}
	return &Corrector{model: model, alphabet: []rune(conf.Alphabet)}
}

// Model returns the underlying frequency model.
func (c *Corrector) Model() *Model { return c.model }

// Correction returns the most likely spelling of word. The input is
// lowercased first; a known word comes back unchanged. Otherwise the
// highest-count known word at edit distance 1 wins, then at distance
// 2, with ties going to the alphabetically smallest candidate. A word
// with no known candidate comes back as its normalized self, so the
// result is always defined and always the same for the same model.
func (c *Corrector) Correction(word string) string {
	word = strings.ToLower(word)
	if word == "" {
		return ""
	}
	best, bestCount := word, -1
	c.candidates(word).Each(func(candidate string) bool {
		count := c.model.Count(candidate)
		if count > bestCount || (count == bestCount && candidate < best) {
			best, bestCount = candidate, count
		}
		return false
	})
	return best
}

// candidates returns the first non-empty tier for a normalized word:
// the word itself when known, else known words one edit away, else two
// edits away, else the word alone. A one-edit candidate beats any
// two-edit candidate regardless of frequency.
func (c *Corrector) candidates(word string) mapset.Set[string] {
	if c.model.Known(word) {
		return mapset.NewThreadUnsafeSet(word)
	}
	if c.hopeless(word) {
		return mapset.NewThreadUnsafeSet(word)
	}
	if known := c.known(c.edits1(word)); !known.IsEmpty() {
		return known
	}
	if known := c.known(c.edits2(word)); !known.IsEmpty() {
		return known
	}
	return mapset.NewThreadUnsafeSet(word)
}

// hopeless reports a word so much longer than the longest known word
// that no candidate tier can reach the model. Two edits shorten a word
// by at most two runes.
func (c *Corrector) hopeless(word string) bool {
	return utf8.RuneCountInString(word) > c.model.longest+2
}

// Suggestion is a known word proposed as a correction.
type Suggestion struct {
	Term     string `json:"term"`
	Count    int    `json:"count"`
	Distance int    `json:"distance"`
}

// Suggest returns known alternatives for word, ordered by edit
// distance, then count descending, then term. Verbosity selects how
// much of the candidate search to surface; max caps the result and
// max <= 0 means no cap. Unlike Correction there is no identity
// fallback: a word with no known candidate yields an empty slice.
func (c *Corrector) Suggest(word string, v verbosity.Verbosity, max int) []Suggestion {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}
	var suggestions []Suggestion
	seen := mapset.NewThreadUnsafeSet[string]()
	collect := func(candidates mapset.Set[string], distance int) {
		candidates.Each(func(term string) bool {
			if c.model.Known(term) && !seen.Contains(term) {
				seen.Add(term)
				suggestions = append(suggestions, Suggestion{
					Term:     term,
					Count:    c.model.Count(term),
					Distance: distance,
				})
			}
			return false
		})
	}

	collect(mapset.NewThreadUnsafeSet(word), 0)
	if !c.hopeless(word) {
		if v == verbosity.All || len(suggestions) == 0 {
			collect(c.edits1(word), 1)
		}
		if v == verbosity.All || len(suggestions) == 0 {
			collect(c.edits2(word), 2)
		}
	}

	slices.SortFunc(suggestions, func(a, b Suggestion) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Term, b.Term)
	})
	if v == verbosity.Top && len(suggestions) > 1 {
		suggestions = suggestions[:1]
	}
	if max > 0 && len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}
