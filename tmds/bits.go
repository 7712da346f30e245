package tmds

import (
	"math/bits"

	"github.com/wippyai/tmdsgen/errors"
)

// Popcount returns the number of set bits in x.
func Popcount(x uint32) int {
	return bits.OnesCount32(x)
}

// ByteImbalance returns N1(x) - N0(x) for an 8-bit value, i.e. 2*popcount(x) - 8.
func ByteImbalance(x uint8) int {
	return 2*bits.OnesCount8(x) - 8
}

// SymbolImbalance returns N1 - N0 over the ten bits of s.
func SymbolImbalance(s Symbol) int {
	return 2*bits.OnesCount16(uint16(s&Mask)) - 10
}

// Differentialise expands the low n bits of x, most significant first, into n
// pseudo-differential bit pairs: 1 becomes 01 and 0 becomes 10. The result holds
// at most 16 pairs; n outside [0,16] panics.
func Differentialise(x uint32, n int) uint32 {
	if n < 0 || n > 16 {
		panic(errors.OutOfRange(errors.PhaseEncode, "differential width", n, 0, 16))
	}
	var acc uint32
	for i := n - 1; i >= 0; i-- {
		acc <<= 2
		if x&(1<<i) != 0 {
			acc |= 0b01
		} else {
			acc |= 0b10
		}
	}
	return acc
}
