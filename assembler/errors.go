package assembler

import (
	"fmt"
)

// Kind classifies an assembly failure.
type Kind int

const (
	// SyntaxError means the operands do not match the instruction's grammar.
	SyntaxError Kind = iota + 1
	// UnknownMnemonic means no decoder accepts the mnemonic.
	UnknownMnemonic
	// UnknownLabel means a $lbl reference names no label.
	UnknownLabel
	// RegisterOutOfRange means a value does not fit its field.
	RegisterOutOfRange
	// NegativeOperand means a push value is negative.
	NegativeOperand
	// InvalidOperand means an operand could not be resolved to a number.
	InvalidOperand
	// IOFailure means reading the source or writing the image failed.
	IOFailure
)

var kindNames = map[Kind]string{
	SyntaxError:        "syntax error",
	UnknownMnemonic:    "unknown mnemonic",
	UnknownLabel:       "unknown label",
	RegisterOutOfRange: "out of range",
	NegativeOperand:    "negative operand",
	InvalidOperand:     "invalid operand",
	IOFailure:          "i/o failure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a failure tied to a source line. Line is 0 when the failure
// is not about a particular line, such as an output write error.
type Error struct {
	Kind Kind
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf builds a line error; the line number is filled in by the encoder.
func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
