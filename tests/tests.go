// Package tests provides hex-reporting equality assertions for use inside tests.
//
// Unlike package assert, which panics, these functions report through the
// test handle: the failure text is passed to t.Errorf and then t.FailNow stops
// the current test. Other tests, parallel or not, keep running.
//
// Example:
//
//	func TestHeader(t *testing.T) {
//	    got := encodeHeader(h)
//	    tests.EqualHex(t, []byte{0xca, 0xfe, 0x00, 0x01}, got, "header for %v", h)
//	}
//
// A failure reads:
//
//	assertion failed: `(left == right)`
//	  left: `0x[ca, fe, 00, 01]`,
//	 right: `0x[ca, fe, 00, 02]`: header for {...}
package tests

import (
	"github.com/amp-labs/amp-hexassert/assert"
	"github.com/amp-labs/amp-hexassert/hexfmt"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// EqualHex fails the test immediately if left does not equal right, reporting
// both values in compact hex.
func EqualHex[T any](t require.TestingT, left, right T, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	fail(t, assert.CheckEqualHex(hexfmt.Compact, left, right, msgAndArgs...))
}

// NotEqualHex fails the test immediately if left equals right, reporting
// both values in compact hex.
func NotEqualHex[T any](t require.TestingT, left, right T, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	fail(t, assert.CheckNotEqualHex(hexfmt.Compact, left, right, msgAndArgs...))
}

// EqualHexPretty is EqualHex with the values reported one element per line.
func EqualHexPretty[T any](t require.TestingT, left, right T, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	fail(t, assert.CheckEqualHex(hexfmt.Pretty, left, right, msgAndArgs...))
}

// NotEqualHexPretty is NotEqualHex with the values reported one element per line.
func NotEqualHexPretty[T any](t require.TestingT, left, right T, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	fail(t, assert.CheckNotEqualHex(hexfmt.Pretty, left, right, msgAndArgs...))
}

func fail(t require.TestingT, err error) {
	if err == nil {
		return
	}

	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	t.Errorf("%s", err.Error())
	t.FailNow()
}
