package headswap

// FragmentKind identifies the kind of fragment.
type FragmentKind int

const (
	// FragmentSpace is a run of space characters (possibly zero-length,
	// for empty input).
	FragmentSpace FragmentKind = iota
	// FragmentHead is the transformable prefix of a word: the leading
	// consonants plus the first run of vowels, or the whole word if it
	// ends before any vowel appears.
	FragmentHead
	// FragmentTail is the remainder of a word after its head. Words
	// that end at their head produce no tail fragment.
	FragmentTail
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentSpace:
		return "space"
	case FragmentHead:
		return "head"
	case FragmentTail:
		return "tail"
	}
	return "invalid"
}

// Fragment is one classified, order-preserving piece of the input.
// Concatenating all fragments in emission order reconstructs the input
// exactly.
type Fragment struct {
	Kind FragmentKind
	Text string
}
