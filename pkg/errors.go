package spell

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding reports corpus bytes that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("corpus is not valid UTF-8")

// CorpusError wraps a failure to read or decode a training corpus.
// Construction is the only error surface of the package; Correction
// itself never fails.
type CorpusError struct {
	Source string // file path, empty when training from memory
	Err    error
}

func (e *CorpusError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("corpus: %v", e.Err)
	}
	return fmt.Sprintf("corpus %s: %v", e.Source, e.Err)
}

func (e *CorpusError) Unwrap() error { return e.Err }
