package cratesio

// Bounds of the platform `int` that AddOne works on.
const (
	MaxUint = ^uint(0)
	MaxInt  = int(MaxUint >> 1)
	MinInt  = -MaxInt - 1

	// IntBits number of bits in an int.
	// It is (32 << 1) on 64 bit platforms and (32 << 0) on 32 bit ones
	IntBits = 32 << (MaxUint >> 63)
)

// Fixed width bounds, mostly useful to callers that narrow the result.
const (
	MaxInt32 = int32(^uint32(0) >> 1)
	MinInt32 = -MaxInt32 - 1
	MaxInt64 = int64(^uint64(0) >> 1)
	MinInt64 = -MaxInt64 - 1
)
