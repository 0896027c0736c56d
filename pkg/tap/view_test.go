package tap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_TracksOwner(t *testing.T) {
	t.Parallel()

	x := 1
	v := NewView(&x)
	assert.Equal(t, 1, v.Get())

	x = 2
	assert.Equal(t, 2, v.Get())
	assert.Equal(t, "2", v.String())
	assert.False(t, v.IsZero())
}

func TestView_Zero(t *testing.T) {
	t.Parallel()

	var v View[string]
	assert.True(t, v.IsZero())
	assert.Equal(t, "<nil>", v.String())
}
