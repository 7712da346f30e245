package tmds

// Decode reverses Encode for a single symbol, the way a sink does. Control symbols
// report de == false; any other symbol is treated as data.
func Decode(s Symbol) (data uint8, ctrl Control, de bool) {
	s &= Mask
	for i, c := range controlSymbols {
		if s == c {
			return 0, Control(i), false
		}
	}

	q := uint16(s)
	if q&0x200 != 0 {
		q ^= 0xFF
	}

	data = uint8(q & 1)
	for i := 1; i < 8; i++ {
		b := (q>>i ^ q>>(i-1)) & 1
		if q&flagBit == 0 {
			b ^= 1
		}
		data |= uint8(b) << i
	}
	return data, 0, true
}
