package corrector

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	spell "speller/pkg"
	"speller/pkg/options"
	"speller/pkg/verbosity"
)

// WordStore supplies custom dictionary words at construction time.
// internal/customdict implements it on Redis.
type WordStore interface {
	All(ctx context.Context) ([]string, error)
}

// SpellCorrector serves spelling corrections from a model trained once
// at construction. Custom words merge into that model with a large
// synthetic count; store mutations made later only show up after a
// restart.
type SpellCorrector struct {
	config  CorrectorConfig
	speller *spell.Corrector
	store   WordStore
}

func NewSpellCorrector(ctx context.Context, cfg CorrectorConfig, store WordStore) (*SpellCorrector, error) {
	sc := &SpellCorrector{config: cfg, store: store}

	var opts []options.Options
	if cfg.Alphabet != "" {
		opts = append(opts, options.WithAlphabet(cfg.Alphabet))
	}
	if cfg.CountThreshold > 1 {
		opts = append(opts, options.WithCountThreshold(cfg.CountThreshold))
	}
	if custom := sc.loadCustomWords(ctx); len(custom) > 0 {
		opts = append(opts, options.WithExtraWords(custom))
	}

	err := readCorpus(cfg.CorpusPath, func(text []byte) error {
		speller, err := spell.New(text, opts...)
		if err != nil {
			return err
		}
		sc.speller = speller
		return nil
	})
	if err != nil {
		var ce *spell.CorpusError
		if errors.As(err, &ce) && ce.Source == "" {
			ce.Source = cfg.CorpusPath
		}
		return nil, err
	}
	return sc, nil
}

func (sc *SpellCorrector) loadCustomWords(ctx context.Context) map[string]int {
	if sc.store == nil {
		return nil
	}
	words, err := sc.store.All(ctx)
	if err != nil {
		log.Printf("warning: could not load custom words: %v", err)
		return nil
	}
	count := sc.config.CustomWordCount
	if count <= 0 {
		count = 1_000_000_000
	}
	custom := make(map[string]int, len(words))
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w))
		if !isWord(lw) {
			log.Printf("warning: skipping custom word %q", w)
			continue
		}
		custom[lw] = count
	}
	return custom
}

// Correct returns the best correction for a single word, optionally
// re-applying the source casing.
func (sc *SpellCorrector) Correct(word string) string {
	corrected := sc.speller.Correction(word)
	if sc.config.PreserveCase {
		corrected = applyCase(word, corrected)
	}
	return corrected
}

// Suggestions returns up to TopKSuggestions alternatives of the
// closest candidate tier.
func (sc *SpellCorrector) Suggestions(word string) []spell.Suggestion {
	return sc.speller.Suggest(word, verbosity.Closest, sc.config.TopKSuggestions)
}

// KnownWords returns the number of distinct words in the served model.
func (sc *SpellCorrector) KnownWords() int {
	return sc.speller.Model().Len()
}

var (
	tokenRe    = regexp.MustCompile(`\p{L}+|\p{N}+|\s+|[^\p{L}\p{N}\s]`)
	wordOnlyRe = regexp.MustCompile(`^\p{L}+$`)
)

func tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool { return wordOnlyRe.MatchString(tok) }

// CorrectText corrects each word token of text independently, leaving
// separators, digits and punctuation alone. Tokens are not corrected
// against each other; this is single-word correction applied per
// token.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	tokens := tokenize(text)
	out := make([]string, len(tokens))
	copy(out, tokens)
	var changes []Change

	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		if sc.config.FilterShortWords && utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		lw := strings.ToLower(tok)
		chosen := sc.speller.Correction(lw)
		if chosen == lw {
			continue
		}
		if sc.config.PreserveCase {
			chosen = applyCase(tok, chosen)
		}
		out[i] = chosen
		changes = append(changes, Change{Original: tok, Corrected: chosen})
	}

	return CorrectionResult{
		Original:  text,
		Corrected: strings.Join(out, ""),
		Changes:   changes,
	}
}
