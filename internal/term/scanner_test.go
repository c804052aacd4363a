package term_test

import (
	"bytes"
	"testing"

	"wordfreq/internal/term"
)

func collect(t *testing.T, input string, policy term.Policy) []term.Term {
	t.Helper()
	sc := term.NewScanner([]byte(input), policy)
	var terms []term.Term
	for sc.Scan() {
		terms = append(terms, sc.Term())
	}
	return terms
}

func TestScannerBreaksIdentifiersAndPunctuation(t *testing.T) {
	terms := collect(t, "_abc.words();", term.PolicyClassic)

	want := []term.Term{
		{Kind: term.Word, Text: []byte("_abc")},
		{Kind: term.Symbol, Text: []byte(".")},
		{Kind: term.Word, Text: []byte("words")},
		{Kind: term.Symbol, Text: []byte("();")},
	}
	if len(terms) != len(want) {
		t.Fatalf("got %d terms, want %d: %v", len(terms), len(want), terms)
	}
	for i, w := range want {
		if terms[i].Kind != w.Kind || !bytes.Equal(terms[i].Text, w.Text) {
			t.Fatalf("term %d: got %v %q, want %v %q", i, terms[i].Kind, terms[i].Text, w.Kind, w.Text)
		}
	}
}

func TestScannerCoversTrimmedInputExactly(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hello",
		"  hello world  ",
		"can't stop, won't stop!",
		"a-b_c'd e;f",
		"!!! ... ;;;",
		"héllo wörld — ünïcode",
		"tabs\tand\nnewlines stay symbol content",
	}

	for _, policy := range []term.Policy{term.PolicyClassic, term.PolicyUnicode} {
		for _, input := range inputs {
			terms := collect(t, input, policy)
			var rebuilt bytes.Buffer
			for i, tm := range terms {
				if len(tm.Text) == 0 {
					t.Fatalf("policy %v input %q: empty term at %d", policy, input, i)
				}
				if i > 0 && terms[i-1].Kind == tm.Kind {
					t.Fatalf("policy %v input %q: adjacent %v terms at %d", policy, input, tm.Kind, i)
				}
				rebuilt.Write(tm.Text)
			}
			trimmed := bytes.TrimSpace([]byte(input))
			if !bytes.Equal(rebuilt.Bytes(), trimmed) {
				t.Fatalf("policy %v input %q: rebuilt %q, want %q", policy, input, rebuilt.Bytes(), trimmed)
			}
		}
	}
}

func TestScannerEmptyInputYieldsNothing(t *testing.T) {
	for _, policy := range []term.Policy{term.PolicyClassic, term.PolicyUnicode} {
		sc := term.NewScanner(nil, policy)
		if sc.Scan() {
			t.Fatalf("policy %v: Scan on empty input returned true", policy)
		}
	}
}

func TestScannerClassicKeepsApostropheAndUnderscoreWords(t *testing.T) {
	terms := collect(t, "can't _foo", term.PolicyClassic)
	var wordTexts []string
	for _, tm := range terms {
		if tm.Kind == term.Word {
			wordTexts = append(wordTexts, string(tm.Text))
		}
	}
	if len(wordTexts) != 2 || wordTexts[0] != "can't" || wordTexts[1] != "_foo" {
		t.Fatalf("unexpected words: %v", wordTexts)
	}
}

func TestScannerClassicTreatsUnicodeLettersAsWordRunes(t *testing.T) {
	terms := collect(t, "héllo,世界", term.PolicyClassic)
	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3: %v", len(terms), terms)
	}
	if terms[0].Kind != term.Word || string(terms[0].Text) != "héllo" {
		t.Fatalf("unexpected first term: %v %q", terms[0].Kind, terms[0].Text)
	}
	if terms[1].Kind != term.Symbol || string(terms[1].Text) != "," {
		t.Fatalf("unexpected second term: %v %q", terms[1].Kind, terms[1].Text)
	}
	if terms[2].Kind != term.Word || string(terms[2].Text) != "世界" {
		t.Fatalf("unexpected third term: %v %q", terms[2].Kind, terms[2].Text)
	}
}

func TestScannerUnicodePolicyCoalescesSymbolRuns(t *testing.T) {
	terms := collect(t, "one... two", term.PolicyUnicode)
	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3: %v", len(terms), terms)
	}
	if terms[0].Kind != term.Word || string(terms[0].Text) != "one" {
		t.Fatalf("unexpected first term: %v %q", terms[0].Kind, terms[0].Text)
	}
	if terms[1].Kind != term.Symbol || string(terms[1].Text) != "... " {
		t.Fatalf("unexpected second term: %v %q", terms[1].Kind, terms[1].Text)
	}
	if terms[2].Kind != term.Word || string(terms[2].Text) != "two" {
		t.Fatalf("unexpected third term: %v %q", terms[2].Kind, terms[2].Text)
	}
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		value   string
		want    term.Policy
		wantErr bool
	}{
		{"classic", term.PolicyClassic, false},
		{"", term.PolicyClassic, false},
		{" Unicode ", term.PolicyUnicode, false},
		{"bytes", term.PolicyClassic, true},
	}
	for _, tc := range cases {
		got, err := term.ParsePolicy(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParsePolicy(%q): expected error", tc.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePolicy(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
