package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCuratedHeadersNonEmptyAndRelative(t *testing.T) {
	assert.NotEmpty(t, CuratedHeaders)
	for _, h := range CuratedHeaders {
		assert.NotEqual(t, "", h)
		assert.NotContains(t, h, `\`)
	}
}

func TestDiscoverDoesNotPanicWithoutEnvironment(t *testing.T) {
	assert.NotPanics(t, func() {
		_, _ = Discover()
	})
}
