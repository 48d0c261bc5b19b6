package headswap

import "fmt"

// LogicError reports a state machine step that made no progress: the
// state and the cursor position were both left unchanged. This is a
// transition-table bug, not bad input, and callers should map it to an
// internal-error response rather than a bad-request one. Tokenization
// is deterministic, so retrying reproduces the same fault.
type LogicError struct {
	State string
	Pos   int
	Class string
}

func (e *LogicError) Error() string {
	return fmt.Sprintf("headswap: state machine stuck in state %s at position %d on %s", e.State, e.Pos, e.Class)
}
