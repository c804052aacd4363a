package term

import (
	"fmt"
	"strings"
)

// Kind classifies a scanned span.
type Kind int

const (
	// Word is a maximal run of word runes.
	Word Kind = iota
	// Symbol is a maximal run of non-word runes.
	Symbol
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Term is one classified span of the scanned buffer. Text aliases the
// scanner's input; copy it before the buffer is reused.
type Term struct {
	Kind Kind
	Text []byte
}

// Policy selects the word-boundary rules a Scanner applies.
type Policy int

const (
	// PolicyClassic treats letters, numbers, underscore, and apostrophe as
	// word runes.
	PolicyClassic Policy = iota
	// PolicyUnicode segments on UAX #29 word boundaries.
	PolicyUnicode
)

// String returns the policy's configuration spelling.
func (p Policy) String() string {
	switch p {
	case PolicyClassic:
		return "classic"
	case PolicyUnicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration spelling to a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "classic", "":
		return PolicyClassic, nil
	case "unicode":
		return PolicyUnicode, nil
	default:
		return PolicyClassic, fmt.Errorf("scan.tokenizer: unsupported value %q", value)
	}
}
