package hdrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdent(t *testing.T) {
	valid := []string{"IUnknown", "x", "X1", "HRESULT", "a_b_c", "D3D12_RESOURCE_DESC"}
	for _, s := range valid {
		assert.Truef(t, IsValidIdent(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "_leadingUnderscore", "has space", "has-dash"}
	for _, s := range invalid {
		assert.Falsef(t, IsValidIdent(s), "expected %q to be invalid", s)
	}
}

func TestIsValidIdentAllowsLeadingDigit(t *testing.T) {
	// Matches the original's is_ascii_alphanumeric() first-char check:
	// only a leading underscore is rejected, a leading digit is not.
	assert.True(t, IsValidIdent("1ST_FOO"))
}
