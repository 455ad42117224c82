package validate

import "fmt"

// ArgumentError reports a malformed call to the engine itself: the
// caller passed a value outside the operation's contract. It indicates
// a bug in the calling code, not in the validated document, and is
// never produced for malformed or unreachable remote documents.
type ArgumentError struct {
	// Op is the operation that rejected the call.
	Op string

	// Arg names the offending argument.
	Arg string

	// Value is the rejected value.
	Value any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %s has unsupported value of type %T", e.Op, e.Arg, e.Value)
}
