//go:build !assertions_disabled

package assert

import "github.com/amp-labs/amp-hexassert/hexfmt"

// EqualHex asserts that left equals right.
// If the assertion fails, it panics with an *errors.AssertionFailure whose
// operands are rendered in compact hex.
func EqualHex[T any](left, right T, msgAndArgs ...any) {
	if err := CheckEqualHex(hexfmt.Compact, left, right, msgAndArgs...); err != nil {
		panic(err)
	}
}

// NotEqualHex asserts that left differs from right.
// If the assertion fails, it panics with an *errors.AssertionFailure whose
// operands are rendered in compact hex.
func NotEqualHex[T any](left, right T, msgAndArgs ...any) {
	if err := CheckNotEqualHex(hexfmt.Compact, left, right, msgAndArgs...); err != nil {
		panic(err)
	}
}

// EqualHexPretty is EqualHex with the operands rendered one element per line.
func EqualHexPretty[T any](left, right T, msgAndArgs ...any) {
	if err := CheckEqualHex(hexfmt.Pretty, left, right, msgAndArgs...); err != nil {
		panic(err)
	}
}

// NotEqualHexPretty is NotEqualHex with the operands rendered one element per line.
func NotEqualHexPretty[T any](left, right T, msgAndArgs ...any) {
	if err := CheckNotEqualHex(hexfmt.Pretty, left, right, msgAndArgs...); err != nil {
		panic(err)
	}
}
