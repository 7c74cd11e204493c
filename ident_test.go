package hdrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdent(t *testing.T) {
	t.Run("two construction paths compare equal", func(t *testing.T) {
		a := Ident("IUnknown")
		b := Ident("IUnknown"[:])
		assert.Equal(t, a, b)
		assert.Equal(t, "IUnknown", a.String())
	})

	t.Run("zero value is zero", func(t *testing.T) {
		var z Ident
		assert.True(t, z.IsZero())
		assert.False(t, Ident("X").IsZero())
	})
}
