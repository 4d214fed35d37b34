package cratesio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimits(t *testing.T) {
	assert.Equal(t, MaxInt, -(MinInt + 1))
	assert.Equal(t, int32(-2147483648), MinInt32)
	assert.Equal(t, int32(2147483647), MaxInt32)
	assert.Equal(t, int64(-9223372036854775808), MinInt64)

	maxInt, minInt := MaxInt, MinInt
	switch IntBits {
	case 64:
		assert.Equal(t, MaxInt64, int64(maxInt))
		assert.Equal(t, MinInt64, int64(minInt))
	case 32:
		assert.Equal(t, MaxInt32, int32(maxInt))
		assert.Equal(t, MinInt32, int32(minInt))
	default:
		t.Fatalf("unexpected int size %d", IntBits)
	}
}
