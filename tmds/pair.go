package tmds

import (
	"fmt"

	"github.com/wippyai/tmdsgen/errors"
)

// Pair packs two consecutive symbols into 20 bits, first symbol in the low half.
type Pair uint32

// MakePair packs s0 (sent first) and s1.
func MakePair(s0, s1 Symbol) Pair {
	return Pair(s0&Mask) | Pair(s1&Mask)<<10
}

// First returns the symbol sent first.
func (p Pair) First() Symbol {
	return Symbol(p) & Mask
}

// Second returns the symbol sent second.
func (p Pair) Second() Symbol {
	return Symbol(p>>10) & Mask
}

// Doubled returns the pair repeating s, as used for control periods.
func Doubled(s Symbol) Pair {
	return MakePair(s, s)
}

// EncodePair encodes d0 then d1 on a fresh encoder and returns the packed pair with
// the disparity left behind.
func EncodePair(d0, d1 uint8) (Pair, int) {
	var enc Encoder
	s0 := enc.EncodeData(d0)
	s1 := enc.EncodeData(d1)
	return MakePair(s0, s1), enc.Disparity()
}

// BalancedPair is EncodePair for callers that require a zero net disparity.
func BalancedPair(d0, d1 uint8) (Pair, error) {
	p, disparity := EncodePair(d0, d1)
	if disparity != 0 {
		return 0, errors.Invariant(errors.PhaseEncode,
			[]string{fmt.Sprintf("%02x/%02x", d0, d1)},
			"pair leaves disparity %d", disparity)
	}
	return p, nil
}

// DoublePixel returns the balanced pair for d followed by d^1, i.e. one pixel drawn
// twice at the cost of the low bit. Every byte value balances; the check panics only
// if the encoder itself is broken.
func DoublePixel(d uint8) Pair {
	p, err := BalancedPair(d, d^1)
	if err != nil {
		panic(err)
	}
	return p
}
