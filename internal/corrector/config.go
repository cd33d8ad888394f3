package corrector

// CorrectorConfig carries the service knobs. cmd/main fills it from
// the environment; the zero value is usable in tests.
type CorrectorConfig struct {
	CorpusPath       string
	Alphabet         string // empty keeps the engine default, a-z
	CountThreshold   int
	TopKSuggestions  int
	CustomWordCount  int // count given to custom words, 0 means 1e9
	PreserveCase     bool
	FilterShortWords bool
}

// Change records one replaced token of a text pass.
type Change struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// CorrectionResult reports a corrected text and the tokens that
// changed.
type CorrectionResult struct {
	Original  string   `json:"original"`
	Corrected string   `json:"corrected"`
	Changes   []Change `json:"changes,omitempty"`
}
