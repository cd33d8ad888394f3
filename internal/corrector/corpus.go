package corrector

import (
	"os"

	"github.com/edsrzf/mmap-go"

	spell "speller/pkg"
)

// readCorpus memory-maps the corpus file and hands the bytes to fn.
// The mapping only lives for the duration of fn; a model trained from
// it copies every token, so nothing escapes the mapping.
func readCorpus(path string, fn func([]byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &spell.CorpusError{Source: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &spell.CorpusError{Source: path, Err: err}
	}
	if info.Size() == 0 {
		return fn(nil)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Pipes and some filesystems refuse mmap; read normally then.
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return &spell.CorpusError{Source: path, Err: rerr}
		}
		return fn(raw)
	}
	defer data.Unmap()
	return fn(data)
}
