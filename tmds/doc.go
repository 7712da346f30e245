// Package tmds implements the DVI 1.0 TMDS encoder used to pre-compute video lookup tables.
//
// TMDS (Transition-Minimized Differential Signaling) maps each 8-bit channel sample to a
// 10-bit symbol in two stages: an XOR/XNOR chain that minimises bit transitions, followed by
// a conditional inversion that keeps the line DC balanced. The balance is tracked as a running
// disparity across consecutive data symbols and is reset by every control (blanking) symbol.
//
// # Encoder
//
// The zero Encoder is ready to use and starts at disparity 0:
//
//	var enc tmds.Encoder
//	sym := enc.EncodeData(0x00)         // 0x100, disparity -8
//	sym = enc.EncodeData(0x01)          // 0x1ff, disparity 0
//	sym = enc.EncodeControl(tmds.CtrlHSync) // 0b0010101011, disparity reset
//
// One Encoder represents one symbol stream (a colour channel of a scanline). Calls on an
// instance must follow emission order. Separate instances share nothing and may be used from
// separate goroutines.
//
// # Balanced pairs
//
// Starting from disparity 0, encoding any byte d followed by d^1 returns the disparity
// to 0. Each 20-bit Pair is therefore self-contained, and pixel-doubled scanlines can be
// emitted by plain table lookup, concatenating Pairs without re-encoding.
//
//	p := tmds.DoublePixel(0x80) // 0x5fd80
//
// # Control symbols
//
// The four control codes map to fixed symbols defined by DVI 1.0:
//
//	code  symbol
//	00    1101010100
//	01    0010101011
//	10    0101010100
//	11    1010101011
package tmds
