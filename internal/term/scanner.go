package term

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// IsWordRune reports whether r belongs to a Word span under PolicyClassic:
// a Unicode letter or number, underscore, or apostrophe.
func IsWordRune(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Scanner emits the Terms of one buffer, in order, exactly once. The zero
// value is not usable; construct with NewScanner.
type Scanner struct {
	policy Policy

	// classic policy state
	rest []byte

	// unicode policy state
	buf      []byte
	segments words.Iterator[[]byte]
	offset   int
	pending  []byte // next coalesced span, already pulled from segments
	pendWord bool
	done     bool

	cur Term
}

// NewScanner prepares a scanner over buf under the given policy. Leading and
// trailing whitespace is trimmed once up front; interior whitespace scans as
// Symbol content.
func NewScanner(buf []byte, policy Policy) *Scanner {
	trimmed := bytes.TrimSpace(buf)
	s := &Scanner{policy: policy}
	switch policy {
	case PolicyUnicode:
		s.buf = trimmed
		s.segments = words.FromBytes(trimmed)
	default:
		s.rest = trimmed
	}
	return s
}

// Scan advances to the next Term. It returns false once the buffer is
// exhausted; no empty Term is ever produced.
func (s *Scanner) Scan() bool {
	if s.policy == PolicyUnicode {
		return s.scanUnicode()
	}
	return s.scanClassic()
}

// Term returns the Term found by the last successful Scan.
func (s *Scanner) Term() Term {
	return s.cur
}

func (s *Scanner) scanClassic() bool {
	if len(s.rest) == 0 {
		return false
	}
	first, _ := utf8.DecodeRune(s.rest)
	inWord := IsWordRune(first)

	end := len(s.rest)
	for i := 0; i < len(s.rest); {
		r, size := utf8.DecodeRune(s.rest[i:])
		if IsWordRune(r) != inWord {
			end = i
			break
		}
		i += size
	}

	kind := Symbol
	if inWord {
		kind = Word
	}
	s.cur = Term{Kind: kind, Text: s.rest[:end]}
	s.rest = s.rest[end:]
	return true
}

// scanUnicode pulls UAX #29 segments and coalesces adjacent segments of the
// same kind, so the emitted sequence alternates between Word and Symbol just
// like the classic policy.
func (s *Scanner) scanUnicode() bool {
	if s.done && s.pending == nil {
		return false
	}

	start := s.offset
	var (
		kind  Kind
		valid bool
	)

	if s.pending != nil {
		kind = Symbol
		if s.pendWord {
			kind = Word
		}
		start = s.offset - len(s.pending)
		s.pending = nil
		valid = true
	}

	for !s.done {
		if !s.segments.Next() {
			s.done = true
			break
		}
		seg := s.segments.Value()
		segKind := Symbol
		if segmentIsWord(seg) {
			segKind = Word
		}
		s.offset += len(seg)
		if !valid {
			kind = segKind
			valid = true
			continue
		}
		if segKind != kind {
			s.pending = seg
			s.pendWord = segKind == Word
			s.cur = Term{Kind: kind, Text: s.buf[start : s.offset-len(seg)]}
			return true
		}
	}

	if !valid || start == s.offset {
		return false
	}
	s.cur = Term{Kind: kind, Text: s.buf[start:s.offset]}
	return true
}

func segmentIsWord(seg []byte) bool {
	for i := 0; i < len(seg); {
		r, size := utf8.DecodeRune(seg[i:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
		i += size
	}
	return false
}
