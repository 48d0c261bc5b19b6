package headswap

// CharClass classifies a single input character for the tokenizer.
type CharClass int

const (
	ClassSpace CharClass = iota
	ClassVowel
	ClassConsonant
	// ClassEnd is a synthetic class driving the final transition.
	// It never corresponds to a real character.
	ClassEnd

	numClasses = iota
)

func (c CharClass) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassVowel:
		return "vowel"
	case ClassConsonant:
		return "consonant"
	case ClassEnd:
		return "end"
	}
	return "invalid"
}

// vowels is the fixed vowel set, lowercase only. It covers the Finnish
// alphabet; uppercase vowels deliberately classify as consonants.
var vowels = map[rune]struct{}{
	'a': {}, 'e': {}, 'i': {}, 'o': {}, 'u': {}, 'y': {},
	'å': {}, 'ä': {}, 'ö': {},
}

// Classify maps a rune to its character class.
// Only the ASCII space counts as space; tab, newline and all other
// whitespace classify as consonants, as do punctuation and digits.
func Classify(r rune) CharClass {
	if r == ' ' {
		return ClassSpace
	}
	if _, ok := vowels[r]; ok {
		return ClassVowel
	}
	return ClassConsonant
}
