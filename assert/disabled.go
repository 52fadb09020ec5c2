//go:build assertions_disabled

package assert

// EqualHex asserts that left equals right.
// If the assertion fails, it panics with an *errors.AssertionFailure whose
// operands are rendered in compact hex.
func EqualHex[T any](left, right T, msgAndArgs ...any) {
	// Intentionally left blank
}

// NotEqualHex asserts that left differs from right.
// If the assertion fails, it panics with an *errors.AssertionFailure whose
// operands are rendered in compact hex.
func NotEqualHex[T any](left, right T, msgAndArgs ...any) {
	// Intentionally left blank
}

// EqualHexPretty is EqualHex with the operands rendered one element per line.
func EqualHexPretty[T any](left, right T, msgAndArgs ...any) {
	// Intentionally left blank
}

// NotEqualHexPretty is NotEqualHex with the operands rendered one element per line.
func NotEqualHexPretty[T any](left, right T, msgAndArgs ...any) {
	// Intentionally left blank
}
