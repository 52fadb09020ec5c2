package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertionFailed is wrapped by every AssertionFailure.
var ErrAssertionFailed = errors.New("assertion failed")

const (
	// OperatorEqual is the operator of an equality assertion.
	OperatorEqual = "=="

	// OperatorNotEqual is the operator of an inequality assertion.
	OperatorNotEqual = "!="
)

// AssertionFailure describes a comparison that did not hold. Left and Right
// hold the already-rendered operands; Message is the optional caller context.
//
// Its Error text is:
//
//	assertion failed: `(left == right)`
//	  left: `0x50`,
//	 right: `0x46`: optional message
type AssertionFailure struct {
	Operator string
	Left     string
	Right    string
	Message  string
}

// NewAssertionFailure builds an AssertionFailure, resolving the message from
// msgAndArgs with Message.
func NewAssertionFailure(operator, left, right string, msgAndArgs ...any) *AssertionFailure {
	return &AssertionFailure{
		Operator: operator,
		Left:     left,
		Right:    right,
		Message:  Message(msgAndArgs...),
	}
}

// Error returns the multi-line failure report.
func (f *AssertionFailure) Error() string {
	var sb strings.Builder

	sb.WriteString("assertion failed: `(left ")
	sb.WriteString(f.Operator)
	sb.WriteString(" right)`\n  left: `")
	sb.WriteString(f.Left)
	sb.WriteString("`,\n right: `")
	sb.WriteString(f.Right)
	sb.WriteString("`")

	if len(f.Message) > 0 {
		sb.WriteString(": ")
		sb.WriteString(f.Message)
	}

	return sb.String()
}

// Unwrap returns ErrAssertionFailed.
func (f *AssertionFailure) Unwrap() error {
	return ErrAssertionFailed
}

// Message turns the optional trailing arguments of an assertion into text:
//   - no args yield an empty message.
//   - a leading string is used as a format string with the remaining args.
//   - a leading func() string is called and its result used as is.
//   - anything else is printed with %+v.
//
// Arguments are only stringified here, so callers that reach Message only on
// failure never run a Stringer on the passing path.
func Message(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	first := msgAndArgs[0]
	remaining := msgAndArgs[1:]

	switch msg := first.(type) {
	case string:
		if len(remaining) == 0 {
			return msg
		}

		return fmt.Sprintf(msg, remaining...)
	case func() string:
		return msg()
	}

	if len(remaining) == 0 {
		return fmt.Sprintf("%+v", first)
	}

	return fmt.Sprintf("%+v", msgAndArgs)
}
