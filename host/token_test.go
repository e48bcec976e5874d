package host

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_String(t *testing.T) {
	t.Parallel()
	t.Run("redacted", func(t *testing.T) {
		assert := assert.New(t)
		const want = RedactedToken
		tk := Token("super secret token")
		assert.Equalf(want, tk.String(), "Token.String() = %v, want %v", tk.String(), want)
	})
}

func TestToken_MarshalJSON(t *testing.T) {
	t.Parallel()
	t.Run("redacted", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		want := fmt.Sprintf(`"%s"`, RedactedToken)
		tk := Token("super secret token")
		got, err := tk.MarshalJSON()
		require.NoError(err)
		assert.Equalf([]byte(want), got, "Token.MarshalJSON() = %s, want %s", got, want)
	})
}

func TestToken_IsZero(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	assert.True(Token("").IsZero())
	assert.False(Token("tok").IsZero())
}
