package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, *p)

	// Each call gets its own copy
	assert.NotSame(t, Ptr(42), p)
}

func TestOrZero(t *testing.T) {
	assert.Equal(t, 0, OrZero[int](nil))
	assert.Equal(t, "", OrZero[string](nil))
	assert.Equal(t, 7, OrZero(Ptr(7)))
	assert.True(t, OrZero(Ptr(true)))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "unknown", OrDefault(nil, "unknown"))
	assert.Equal(t, "CLASSIC", OrDefault(Ptr("CLASSIC"), "unknown"))
}
