package parse

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// NullDelimiter is the field delimiter used by the legacy catalog dumps.
const NullDelimiter byte = 0x00

// Tokenizer splits a raw catalog buffer into trimmed text tokens.
type Tokenizer struct {
	delim byte
}

// NewTokenizer creates a tokenizer for the standard NUL-delimited format.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{delim: NullDelimiter}
}

// NewTokenizerWithDelimiter creates a tokenizer with a custom single-byte
// delimiter.
func NewTokenizerWithDelimiter(delim byte) *Tokenizer {
	return &Tokenizer{delim: delim}
}

// Tokenize splits the buffer on the delimiter byte and decodes each run as
// ISO 8859-1, which maps every possible byte to a distinct character. The
// dumps mix text encodings with raw binary noise, so no byte may ever be
// rejected as invalid. Tokens are trimmed of surrounding whitespace; tokens
// that are empty after trimming are discarded.
func (t *Tokenizer) Tokenize(data []byte) []string {
	decoder := charmap.ISO8859_1.NewDecoder()

	var tokens []string
	for _, run := range bytes.Split(data, []byte{t.delim}) {
		if len(run) == 0 {
			continue
		}
		decoded, err := decoder.Bytes(run)
		if err != nil {
			// ISO 8859-1 decodes every byte; this cannot happen.
			decoded = run
		}
		text := strings.TrimSpace(string(decoded))
		if text == "" {
			continue
		}
		tokens = append(tokens, text)
	}
	return tokens
}
