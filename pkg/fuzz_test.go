package spell

import (
	"errors"
	"testing"
	"unicode/utf8"

	"speller/pkg/verbosity"
)

func FuzzCorrection(f *testing.F) {
	c, err := New([]byte("the quick brown fox jumps over the lazy dog poetry spelling"))
	if err != nil {
		f.Fatal(err)
	}

	f.Add("speling")
	f.Add("")
	f.Add("   ")
	f.Add("THE")
	f.Add("don't")
	f.Add("123")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("ж岸を")
	f.Add("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	f.Fuzz(func(t *testing.T, word string) {
		first := c.Correction(word)

		if second := c.Correction(word); second != first {
			t.Errorf("not deterministic: %q then %q for input %q", first, second, word)
		}
		// Correcting a correction must be stable.
		if again := c.Correction(first); again != first {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", word, first, again)
		}
	})
}

func FuzzSuggest(f *testing.F) {
	c, err := New([]byte("the quick brown fox"))
	if err != nil {
		f.Fatal(err)
	}

	f.Add("teh", 0, 5)
	f.Add("", 1, 0)
	f.Add("quikc", 2, -1)
	f.Add("\xff", 99, 1)

	f.Fuzz(func(t *testing.T, word string, v int, max int) {
		// Must not panic for any verbosity value or cap.
		for _, s := range c.Suggest(word, verbosity.Verbosity(v), max) {
			if !c.Model().Known(s.Term) {
				t.Errorf("suggested unknown word %q", s.Term)
			}
		}
	})
}

func FuzzTrain(f *testing.F) {
	f.Add([]byte("the quick brown fox"))
	f.Add([]byte(""))
	f.Add([]byte("123 !!! ..."))
	f.Add([]byte{0xff, 0xfe})
	f.Add([]byte("Ж 岸 don't mixed CASE"))

	f.Fuzz(func(t *testing.T, corpus []byte) {
		m, err := Train(corpus)
		if err != nil {
			var ce *CorpusError
			if !errors.As(err, &ce) {
				t.Fatalf("construction failed with a non-corpus error: %v", err)
			}
			if utf8.Valid(corpus) {
				t.Fatalf("valid UTF-8 rejected: %q", corpus)
			}
			return
		}
		if !utf8.Valid(corpus) {
			t.Fatalf("invalid UTF-8 accepted: %q", corpus)
		}

		sum := 0
		for _, w := range m.Words() {
			count := m.Count(w)
			if count <= 0 {
				t.Errorf("non-positive count %d for %q", count, w)
			}
			sum += count
		}
		if sum != m.Total() {
			t.Errorf("total %d does not match sum of counts %d", m.Total(), sum)
		}
	})
}
