// Package assert provides equality assertions that report their operands in hex.
//
// EqualHex and NotEqualHex panic with an *errors.AssertionFailure when the
// comparison does not hold. Building with the assertions_disabled tag turns
// them into no-ops. CheckEqualHex and CheckNotEqualHex are always compiled and
// return the failure instead of raising it.
//
// The optional msgAndArgs follow errors.Message: a leading string is a format
// string for the remaining args, a leading func() string is called lazily.
// Nothing is rendered or formatted unless the assertion fails.
package assert

import (
	"github.com/amp-labs/amp-hexassert/compare"
	"github.com/amp-labs/amp-hexassert/errors"
	"github.com/amp-labs/amp-hexassert/hexfmt"
)

// CheckEqualHex returns nil if left equals right, and an *errors.AssertionFailure
// with both operands rendered in the given mode otherwise.
func CheckEqualHex[T any](mode hexfmt.Mode, left, right T, msgAndArgs ...any) error {
	if compare.Equal(left, right) {
		return nil
	}

	return failure(errors.OperatorEqual, mode, left, right, msgAndArgs)
}

// CheckNotEqualHex returns nil if left differs from right, and an
// *errors.AssertionFailure with both operands rendered in the given mode otherwise.
func CheckNotEqualHex[T any](mode hexfmt.Mode, left, right T, msgAndArgs ...any) error {
	if !compare.Equal(left, right) {
		return nil
	}

	return failure(errors.OperatorNotEqual, mode, left, right, msgAndArgs)
}

func failure[T any](operator string, mode hexfmt.Mode, left, right T, msgAndArgs []any) error {
	return errors.NewAssertionFailure(
		operator,
		hexfmt.Format(left, mode),
		hexfmt.Format(right, mode),
		msgAndArgs...,
	)
}
