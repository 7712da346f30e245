package tmds

import (
	"github.com/wippyai/tmdsgen/errors"
)

// Symbol is a 10-bit TMDS symbol.
type Symbol uint16

// Mask covers the ten significant bits of a Symbol.
const Mask Symbol = 0x3FF

// Control is a 2-bit control code sent during blanking.
type Control uint8

const (
	Control00 Control = iota
	Control01
	Control10
	Control11
)

// Channel 0 carries HSYNC on bit 0 and VSYNC on bit 1.
const (
	CtrlNone  = Control00
	CtrlHSync = Control01
	CtrlVSync = Control10
	CtrlBoth  = Control11
)

var controlSymbols = [4]Symbol{
	0b1101010100,
	0b0010101011,
	0b0101010100,
	0b1010101011,
}

const (
	flagBit       = 0x100
	inversionMask = 0x2FF
)

// ControlSymbol returns the fixed symbol for c. It panics if c is not a 2-bit value.
func ControlSymbol(c Control) Symbol {
	checkControl(c)
	return controlSymbols[c]
}

func checkControl(c Control) {
	if c > Control11 {
		panic(errors.OutOfRange(errors.PhaseEncode, "control code", c, 0, 3))
	}
}

// Encoder is a TMDS encoder for one symbol stream. The zero value is ready to use.
type Encoder struct {
	disparity int
	last      Symbol
}

// Disparity returns the running disparity: the excess of ones over zeros emitted
// since the last control symbol.
func (e *Encoder) Disparity() int {
	return e.disparity
}

// SetDisparity seeds the running disparity. Table generators use this to encode
// symbols for a known incoming balance.
func (e *Encoder) SetDisparity(d int) {
	e.disparity = d
}

// Last returns the most recently emitted symbol.
func (e *Encoder) Last() Symbol {
	return e.last
}

// Reset returns the encoder to the blanking state without emitting a symbol.
func (e *Encoder) Reset() {
	e.disparity = 0
}

// EncodeData encodes one 8-bit sample during active video.
func (e *Encoder) EncodeData(d uint8) Symbol {
	return e.Encode(d, Control00, true)
}

// EncodeControl emits the control symbol for c and resets the running disparity.
func (e *Encoder) EncodeControl(c Control) Symbol {
	return e.Encode(0, c, false)
}

// Encode produces the next symbol of the stream. With de (data enable) clear it emits
// the control symbol selected by ctrl and resets the disparity; otherwise it encodes data.
// A ctrl value above 3 is a caller bug and panics.
func (e *Encoder) Encode(data uint8, ctrl Control, de bool) Symbol {
	checkControl(ctrl)

	if !de {
		e.disparity = 0
		e.last = controlSymbols[ctrl]
		return e.last
	}

	qm := minimiseTransitions(data)
	imbalance := ByteImbalance(uint8(qm))

	var out uint16
	switch {
	case e.disparity == 0 || imbalance == 0:
		if qm&flagBit != 0 {
			out = qm
			e.disparity += imbalance
		} else {
			out = qm ^ inversionMask
			e.disparity -= imbalance
		}
	case (e.disparity > 0) == (imbalance > 0):
		out = qm ^ inversionMask
		e.disparity += int((qm&flagBit)>>7) - imbalance
	default:
		out = qm
		e.disparity += imbalance - int((^qm&flagBit)>>7)
	}

	e.last = Symbol(out)
	return e.last
}

// minimiseTransitions builds q_m: eight chained bits plus the chain flag in bit 8
// (1 = XOR chain, 0 = XNOR chain).
func minimiseTransitions(d uint8) uint16 {
	n := Popcount(uint32(d))
	src := uint16(d)
	qm := src & 1

	if n > 4 || (n == 4 && d&1 == 0) {
		for i := 0; i < 7; i++ {
			qm |= (^(qm>>i ^ src>>(i+1)) & 1) << (i + 1)
		}
		return qm
	}

	for i := 0; i < 7; i++ {
		qm |= ((qm>>i ^ src>>(i+1)) & 1) << (i + 1)
	}
	return qm | flagBit
}
