//go:build assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-hexassert/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled_NeverPanics(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.EqualHex(1, 2)
		assert.NotEqualHex(1, 1)
		assert.EqualHexPretty([]byte{1}, []byte{2})
		assert.NotEqualHexPretty("a", "a")
	})
}
