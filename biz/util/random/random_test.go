package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStr(t *testing.T) {
	for i := 0; i <= 10; i++ {
		s := RandStr(i)
		assert.Equal(t, i, len(s))
	}

	assert.NotEqual(t, RandStr(16), RandStr(16))
}
