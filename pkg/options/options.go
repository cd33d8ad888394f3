package options

var DefaultOptions = SpellerOptions{
	Alphabet:       "abcdefghijklmnopqrstuvwxyz",
	CountThreshold: 1,
}

type SpellerOptions struct {
	Alphabet       string
	CountThreshold int
	ExtraWords     map[string]int
}

type Options interface {
	Apply(options *SpellerOptions)
}

type FuncConfig struct {
	ops func(options *SpellerOptions)
}

func (w FuncConfig) Apply(conf *SpellerOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithAlphabet replaces the letters used to build replacement and
// insertion candidates. Corpora in non-Latin scripts need their own
// alphabet here; the default covers a-z.
func WithAlphabet(alphabet string) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.Alphabet = alphabet
	})
}

// WithCountThreshold drops corpus words seen fewer than threshold
// times. The default of 1 keeps every word.
func WithCountThreshold(countThreshold int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		options.CountThreshold = countThreshold
	})
}

// WithExtraWords merges words into the trained model at the given
// counts. An existing count is only ever raised, never lowered, so a
// corpus word cannot be demoted by a smaller extra count.
func WithExtraWords(words map[string]int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		if options.ExtraWords == nil {
			options.ExtraWords = make(map[string]int, len(words))
		}
		for word, count := range words {
			options.ExtraWords[word] = count
		}
	})
}

// WithExtraWord is the single-word form of WithExtraWords.
func WithExtraWord(word string, count int) Options {
	return NewFuncOption(func(options *SpellerOptions) {
		if options.ExtraWords == nil {
			options.ExtraWords = make(map[string]int, 1)
		}
		options.ExtraWords[word] = count
	})
}
