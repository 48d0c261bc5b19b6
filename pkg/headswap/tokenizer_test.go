package headswap

import (
	"strings"
	"testing"
)

// collectFragments drains a tokenizer, failing the test on a logic
// fault.
func collectFragments(t *testing.T, text string) []Fragment {
	t.Helper()
	tok := NewTokenizer(text)
	var frags []Fragment
	for {
		frag, ok, err := tok.Next()
		if err != nil {
			t.Fatalf("Next() on %q: %v", text, err)
		}
		if !ok {
			return frags
		}
		frags = append(frags, frag)
	}
}

func TestTokenizer_Fragments(t *testing.T) {
	tests := []struct {
		input    string
		expected []Fragment
	}{
		{
			input: "fooma barbu",
			expected: []Fragment{
				{FragmentHead, "foo"},
				{FragmentTail, "ma"},
				{FragmentSpace, " "},
				{FragmentHead, "ba"},
				{FragmentTail, "rbu"},
			},
		},
		{
			// Word ends before any vowel: the head is the whole word.
			input: "bcd",
			expected: []Fragment{
				{FragmentHead, "bcd"},
			},
		},
		{
			// Vowel-only word: empty consonant run, head is the whole word.
			input: "aa",
			expected: []Fragment{
				{FragmentHead, "aa"},
			},
		},
		{
			// Word ending exactly at its head produces no tail.
			input: "die",
			expected: []Fragment{
				{FragmentHead, "die"},
			},
		},
		{
			input: "  aa bb  ",
			expected: []Fragment{
				{FragmentSpace, "  "},
				{FragmentHead, "aa"},
				{FragmentSpace, " "},
				{FragmentHead, "bb"},
				{FragmentSpace, "  "},
			},
		},
		{
			// Uppercase vowels count as consonants, so the head runs
			// through them until a lowercase vowel or word end.
			input: "Ithaca",
			expected: []Fragment{
				{FragmentHead, "Itha"},
				{FragmentTail, "ca"},
			},
		},
		{
			// Apostrophes and periods are consonants inside words.
			input: "I'd here.",
			expected: []Fragment{
				{FragmentHead, "I'd"},
				{FragmentSpace, " "},
				{FragmentHead, "he"},
				{FragmentTail, "re."},
			},
		},
		{
			// Multi-byte vowels.
			input: "mäölnö",
			expected: []Fragment{
				{FragmentHead, "mäö"},
				{FragmentTail, "lnö"},
			},
		},
		{
			// Empty input yields a single zero-length space fragment.
			input: "",
			expected: []Fragment{
				{FragmentSpace, ""},
			},
		},
		{
			input: "   ",
			expected: []Fragment{
				{FragmentSpace, "   "},
			},
		},
		{
			// Tab and newline are consonants, so this is one word.
			input: "a\tb\nc",
			expected: []Fragment{
				{FragmentHead, "a"},
				{FragmentTail, "\tb\nc"},
			},
		},
	}

	for _, tt := range tests {
		result := collectFragments(t, tt.input)
		if len(result) != len(tt.expected) {
			t.Errorf("tokenize(%q) returned %d fragments %v, want %d", tt.input, len(result), result, len(tt.expected))
			continue
		}
		for i, frag := range result {
			if frag != tt.expected[i] {
				t.Errorf("tokenize(%q)[%d] = {%v, %q}, want {%v, %q}",
					tt.input, i, frag.Kind, frag.Text, tt.expected[i].Kind, tt.expected[i].Text)
			}
		}
	}
}

func TestTokenizer_Reconstruction(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"          ",
		"fooma barbu",
		"amama   bomomo foo",
		"  aa bb  ",
		"I'd rather die here.",
		"vuoirkage mäölnö",
		"a\tb\nc d",
		strings.Repeat("abcde", 10000),
		strings.Repeat("fooma barbu ", 1000),
	}

	for _, input := range inputs {
		var b strings.Builder
		for _, frag := range collectFragments(t, input) {
			b.WriteString(frag.Text)
		}
		if b.String() != input {
			t.Errorf("fragments of %.40q do not reconstruct the input", input)
		}
	}
}

// TestTransitionTable checks the table is exhaustive: every producing
// state defines a transition for every character class, every target is
// a valid state, and every entry makes progress.
func TestTransitionTable(t *testing.T) {
	producing := []state{stateInit, stateReadSpace, stateReadHeadConsonants, stateReadHeadVowels, stateReadTail}

	for _, s := range producing {
		for class := CharClass(0); class < numClasses; class++ {
			tr := transitions[s][class]
			if tr.next < 0 || tr.next >= numStates {
				t.Errorf("transition (%v, %v) targets invalid state %d", s, class, tr.next)
			}
			if class == ClassEnd && tr.next != stateEnd {
				t.Errorf("transition (%v, end) must terminate, targets %v", s, tr.next)
			}
			// A step that neither consumes nor changes state would
			// loop forever.
			if tr.next == s && tr.act != actConsume {
				t.Errorf("transition (%v, %v) makes no progress", s, class)
			}
		}
	}
}

func TestTokenizer_SinglePass(t *testing.T) {
	tok := NewTokenizer("aa")
	for {
		if _, ok, err := tok.Next(); err != nil {
			t.Fatalf("Next(): %v", err)
		} else if !ok {
			break
		}
	}

	// Exhausted tokenizers keep reporting end of input.
	for i := 0; i < 3; i++ {
		if _, ok, err := tok.Next(); ok || err != nil {
			t.Fatalf("Next() after exhaustion = (ok=%v, err=%v), want (false, nil)", ok, err)
		}
	}
}
