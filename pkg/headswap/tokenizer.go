package headswap

// state identifies a tokenizer state. Each non-terminal state is tagged
// with the fragment kind it produces when it finishes.
type state int

const (
	stateInit state = iota
	stateReadSpace
	stateReadHeadConsonants
	stateReadHeadVowels
	stateReadTail
	stateEnd

	numStates = iota
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateReadSpace:
		return "read-space"
	case stateReadHeadConsonants:
		return "read-head-consonants"
	case stateReadHeadVowels:
		return "read-head-vowels"
	case stateReadTail:
		return "read-tail"
	case stateEnd:
		return "end"
	}
	return "invalid"
}

// stateKinds tags each producing state with its fragment kind. Init is
// tagged space so that empty input yields a zero-length space fragment.
var stateKinds = [numStates]FragmentKind{
	stateInit:               FragmentSpace,
	stateReadSpace:          FragmentSpace,
	stateReadHeadConsonants: FragmentHead,
	stateReadHeadVowels:     FragmentHead,
	stateReadTail:           FragmentTail,
}

// action selects what a transition does with the current character.
type action int

const (
	// actNone selects the next state without touching the character.
	actNone action = iota
	// actConsume appends the current character to the fragment buffer
	// and advances the cursor.
	actConsume
	// actFinish emits the buffered fragment and leaves the cursor in
	// place, so the triggering character is re-examined by the next
	// state.
	actFinish
)

type transition struct {
	next state
	act  action
}

// transitions is the full state machine, keyed by (state, class).
// Every producing state defines all four class transitions, so the
// table is exhaustively checkable.
var transitions = [numStates][numClasses]transition{
	stateInit: {
		ClassSpace:     {stateReadSpace, actNone},
		ClassVowel:     {stateReadHeadVowels, actNone},
		ClassConsonant: {stateReadHeadConsonants, actNone},
		ClassEnd:       {stateEnd, actFinish},
	},
	stateReadSpace: {
		ClassSpace:     {stateReadSpace, actConsume},
		ClassVowel:     {stateReadHeadVowels, actFinish},
		ClassConsonant: {stateReadHeadConsonants, actFinish},
		ClassEnd:       {stateEnd, actFinish},
	},
	stateReadHeadConsonants: {
		ClassSpace:     {stateReadSpace, actFinish},
		ClassVowel:     {stateReadHeadVowels, actConsume},
		ClassConsonant: {stateReadHeadConsonants, actConsume},
		ClassEnd:       {stateEnd, actFinish},
	},
	stateReadHeadVowels: {
		ClassSpace:     {stateReadSpace, actFinish},
		ClassVowel:     {stateReadHeadVowels, actConsume},
		ClassConsonant: {stateReadTail, actFinish},
		ClassEnd:       {stateEnd, actFinish},
	},
	stateReadTail: {
		ClassSpace:     {stateReadSpace, actFinish},
		ClassVowel:     {stateReadTail, actConsume},
		ClassConsonant: {stateReadTail, actConsume},
		ClassEnd:       {stateEnd, actFinish},
	},
}

// Tokenizer splits text into space, head and tail fragments in a single
// forward pass. It is pull-based and non-restartable: fragments come
// out one Next call at a time, and memory use is bounded by the longest
// fragment, not the input length. The input itself stays with the
// caller, read-only.
type Tokenizer struct {
	runes []rune
	pos   int
	cur   state
	buf   []rune
}

// NewTokenizer creates a tokenizer over text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{runes: []rune(text), cur: stateInit}
}

// classify returns the class of the character at the cursor, or
// ClassEnd when the cursor has passed the end of the input.
func (t *Tokenizer) classify() CharClass {
	if t.pos >= len(t.runes) {
		return ClassEnd
	}
	return Classify(t.runes[t.pos])
}

// Next returns the next fragment. The second return value is false once
// the input is exhausted. A non-nil error is always a *LogicError and
// means the machine failed to make progress on some step.
func (t *Tokenizer) Next() (Fragment, bool, error) {
	for t.cur != stateEnd {
		class := t.classify()
		tr := transitions[t.cur][class]

		prevState, prevPos := t.cur, t.pos

		var frag Fragment
		emitted := false
		switch tr.act {
		case actConsume:
			t.buf = append(t.buf, t.runes[t.pos])
			t.pos++
		case actFinish:
			frag = Fragment{Kind: stateKinds[t.cur], Text: string(t.buf)}
			t.buf = t.buf[:0]
			emitted = true
		}
		t.cur = tr.next

		// Every step must consume a character or change state.
		if t.cur == prevState && t.pos == prevPos {
			return Fragment{}, false, &LogicError{State: prevState.String(), Pos: prevPos, Class: class.String()}
		}

		if emitted {
			return frag, true, nil
		}
	}
	return Fragment{}, false, nil
}
