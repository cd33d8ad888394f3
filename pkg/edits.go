package spell

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// edits1 returns every string exactly one atomic edit away from word:
// deletions, adjacent transpositions, replacements and insertions over
// the corrector's alphabet. Generation is mechanical; no-op members
// such as same-letter replacements collapse in the set instead of
// being special-cased. Nothing is filtered against the model here.
// The sets are thread-unsafe on purpose: every call builds its own.
func (c *Corrector) edits1(word string) mapset.Set[string] {
	runes := []rune(word)
	edits := mapset.NewThreadUnsafeSet[string]()
	for i := 0; i <= len(runes); i++ {
		left, right := string(runes[:i]), runes[i:]
		if len(right) > 0 {
			edits.Add(left + string(right[1:]))
		}
		if len(right) > 1 {
			edits.Add(left + string(right[1]) + string(right[0]) + string(right[2:]))
		}
		for _, letter := range c.alphabet {
			if len(right) > 0 {
				edits.Add(left + string(letter) + string(right[1:]))
			}
			edits.Add(left + string(letter) + string(right))
		}
	}
	return edits
}

// edits2 expands every distance-1 string again, known or not, and
// returns the union.
func (c *Corrector) edits2(word string) mapset.Set[string] {
	edits := mapset.NewThreadUnsafeSet[string]()
	c.edits1(word).Each(func(e1 string) bool {
		c.edits1(e1).Each(func(e2 string) bool {
			edits.Add(e2)
			return false
		})
		return false
	})
	return edits
}

// known filters a candidate set down to words present in the model.
func (c *Corrector) known(candidates mapset.Set[string]) mapset.Set[string] {
	words := mapset.NewThreadUnsafeSet[string]()
	candidates.Each(func(candidate string) bool {
		if c.model.Known(candidate) {
			words.Add(candidate)
		}
		return false
	})
	return words
}
