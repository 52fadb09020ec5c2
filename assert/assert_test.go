package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-hexassert/assert"
	commonerrors "github.com/amp-labs/amp-hexassert/errors"
	"github.com/amp-labs/amp-hexassert/hexfmt"
	"github.com/stretchr/testify/require"
)

type statusWord uint16

// Equals ignores the reserved high byte.
func (s statusWord) Equals(other statusWord) bool {
	return s&0xff == other&0xff
}

func TestCheckEqualHex(t *testing.T) {
	t.Parallel()

	t.Run("equal values pass", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, assert.CheckEqualHex(hexfmt.Compact, 0x50, 0x50))
		require.NoError(t, assert.CheckEqualHex(hexfmt.Compact, []byte{1, 2}, []byte{1, 2}))
	})

	t.Run("different values fail", func(t *testing.T) {
		t.Parallel()

		err := assert.CheckEqualHex(hexfmt.Compact, 0x50, 0x46)
		require.ErrorIs(t, err, commonerrors.ErrAssertionFailed)
		require.EqualError(t, err, "assertion failed: `(left == right)`\n  left: `0x50`,\n right: `0x46`")
	})

	t.Run("custom equality", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, assert.CheckEqualHex(hexfmt.Compact, statusWord(0xaa01), statusWord(0xbb01)))
		require.EqualError(t,
			assert.CheckEqualHex(hexfmt.Compact, statusWord(0xaa01), statusWord(0xaa02)),
			"assertion failed: `(left == right)`\n  left: `0xaa01`,\n right: `0xaa02`")
	})

	t.Run("pretty mode", func(t *testing.T) {
		t.Parallel()

		err := assert.CheckEqualHex(hexfmt.Pretty, []uint8{0, 1}, []uint8{2})
		require.EqualError(t, err,
			"assertion failed: `(left == right)`\n  left: `[\n    0x00,\n    0x01,\n]`,\n right: `[\n    0x02,\n]`")
	})

	t.Run("failure carries the message", func(t *testing.T) {
		t.Parallel()

		err := assert.CheckEqualHex(hexfmt.Compact, 1, 2, "ctx %s", "X")

		var failure *commonerrors.AssertionFailure

		require.ErrorAs(t, err, &failure)
		require.Equal(t, "0x01", failure.Left)
		require.Equal(t, "0x02", failure.Right)
		require.Equal(t, "ctx X", failure.Message)
	})
}

func TestCheckNotEqualHex(t *testing.T) {
	t.Parallel()

	require.NoError(t, assert.CheckNotEqualHex(hexfmt.Compact, 0x50, 0x46))

	err := assert.CheckNotEqualHex(hexfmt.Compact, 0xff, 0xff)
	require.ErrorIs(t, err, commonerrors.ErrAssertionFailed)
	require.EqualError(t, err, "assertion failed: `(left != right)`\n  left: `0xff`,\n right: `0xff`")
}

func TestCheckNotEqualHex_SelfReferencingSlice(t *testing.T) {
	t.Parallel()

	self := []any{nil}
	self[0] = self

	require.EqualError(t, assert.CheckNotEqualHex(hexfmt.Compact, self, self),
		"assertion failed: `(left != right)`\n  left: `0x[<cycle>]`,\n right: `0x[<cycle>]`")
}

func TestCheck_PassingPathSkipsMessage(t *testing.T) {
	t.Parallel()

	called := false
	lazy := func() string {
		called = true

		return "expensive"
	}

	require.NoError(t, assert.CheckEqualHex(hexfmt.Compact, 7, 7, lazy))
	require.NoError(t, assert.CheckNotEqualHex(hexfmt.Compact, 7, 8, lazy))
	require.False(t, called)

	require.EqualError(t, assert.CheckEqualHex(hexfmt.Compact, 7, 8, lazy),
		"assertion failed: `(left == right)`\n  left: `0x07`,\n right: `0x08`: expensive")
	require.True(t, called)
}
