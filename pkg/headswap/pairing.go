package headswap

import "strings"

// Stream is the pairing engine: it consumes the tokenizer's fragments
// and produces the transformed text as a lazy sequence of chunks. Among
// the fragments in stream order, the text of every two successive head
// fragments is exchanged; space and tail fragments keep their original
// positions, and an unpaired trailing head is left untouched.
//
// An unpaired head cannot be emitted until its partner arrives, so the
// engine holds the head and whatever space and tail fragments follow it
// until the pair is complete or the input ends. Held memory is bounded
// by one word plus one space run, never the whole input. A stream is
// single-pass and non-restartable.
type Stream struct {
	tok *Tokenizer
	// held starts with a pending head fragment, followed by the space
	// and tail fragments seen while waiting for its partner.
	held []string
	// out buffers chunks ready for emission.
	out []string
	eof bool
}

// Transform tokenizes text and returns the lazy chunk stream.
// Concatenating all chunks yields the transformed text.
func Transform(text string) *Stream {
	return &Stream{tok: NewTokenizer(text)}
}

// Next returns the next output chunk. The second return value is false
// once the stream is exhausted. A non-nil error is a *LogicError from
// the underlying tokenizer.
func (s *Stream) Next() (string, bool, error) {
	for {
		if len(s.out) > 0 {
			chunk := s.out[0]
			s.out = s.out[1:]
			return chunk, true, nil
		}
		if s.eof {
			return "", false, nil
		}

		frag, ok, err := s.tok.Next()
		if err != nil {
			return "", false, err
		}
		if !ok {
			// Odd word count: the last head never found a partner.
			// Flush it, and anything held behind it, unswapped.
			s.out, s.held = s.held, nil
			s.eof = true
			continue
		}

		switch {
		case frag.Kind != FragmentHead:
			if len(s.held) > 0 {
				s.held = append(s.held, frag.Text)
			} else {
				s.out = append(s.out, frag.Text)
			}
		case len(s.held) == 0:
			s.held = append(s.held, frag.Text)
		default:
			// Pair complete: the incoming head takes the held head's
			// position, everything in between stays put, and the held
			// head lands in the incoming one's place.
			s.out = append(s.out, frag.Text)
			s.out = append(s.out, s.held[1:]...)
			s.out = append(s.out, s.held[0])
			s.held = nil
		}
	}
}

// TransformString runs the whole transform and returns the assembled
// output. The only possible error is a *LogicError.
func TransformString(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	stream := Transform(text)
	for {
		chunk, ok, err := stream.Next()
		if err != nil {
			return "", err
		}
		if !ok {
			return b.String(), nil
		}
		b.WriteString(chunk)
	}
}
