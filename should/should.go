// Package should provides soft hex assertions: comparisons that should hold
// but are not worth aborting for. A failed check is logged through the default
// slog logger and reported as false, which suits invariant checks in
// long-running code where a panic would do more harm than the mismatch.
//
// Example:
//
//	if !should.EqualHex(frame.Checksum, computed, "frame %d", frame.Seq) {
//	    metrics.BadChecksums.Inc()
//	}
package should

import (
	"errors"
	"log/slog"

	"github.com/amp-labs/amp-hexassert/assert"
	commonerrors "github.com/amp-labs/amp-hexassert/errors"
	"github.com/amp-labs/amp-hexassert/hexfmt"
)

// EqualHex reports whether left equals right. On mismatch it logs both values
// in compact hex at error level.
func EqualHex[T any](left, right T, msgAndArgs ...any) bool {
	return report(assert.CheckEqualHex(hexfmt.Compact, left, right, msgAndArgs...))
}

// NotEqualHex reports whether left differs from right. On equality it logs both
// values in compact hex at error level.
func NotEqualHex[T any](left, right T, msgAndArgs ...any) bool {
	return report(assert.CheckNotEqualHex(hexfmt.Compact, left, right, msgAndArgs...))
}

// EqualHexPretty is EqualHex with the values logged one element per line.
func EqualHexPretty[T any](left, right T, msgAndArgs ...any) bool {
	return report(assert.CheckEqualHex(hexfmt.Pretty, left, right, msgAndArgs...))
}

// NotEqualHexPretty is NotEqualHex with the values logged one element per line.
func NotEqualHexPretty[T any](left, right T, msgAndArgs ...any) bool {
	return report(assert.CheckNotEqualHex(hexfmt.Pretty, left, right, msgAndArgs...))
}

// report logs err if it is an assertion failure and reports whether the check held.
func report(err error) bool {
	var failure *commonerrors.AssertionFailure
	if !errors.As(err, &failure) {
		return true
	}

	attrs := []any{
		"operator", failure.Operator,
		"left", failure.Left,
		"right", failure.Right,
	}

	if len(failure.Message) > 0 {
		attrs = append(attrs, "message", failure.Message)
	}

	slog.Error("assertion failed", attrs...)

	return false
}
