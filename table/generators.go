package table

import (
	"fmt"
	"strings"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/palette"
	"github.com/wippyai/tmdsgen/tmds"
)

// Level sets for the 2bpp table: each even level is paired with an odd level so
// that any combination returns the encoder to zero disparity.
var (
	levels2bppEven = [4]uint8{0x05, 0x50, 0xaf, 0xfa}
	levels2bppOdd  = [4]uint8{0x04, 0x51, 0xae, 0xfb}
)

func checkBalanced(enc *tmds.Encoder, table, label string) error {
	if d := enc.Disparity(); d != 0 {
		return errors.Invariant(errors.PhaseGenerate, []string{table, label},
			"running disparity %d after balanced group", d)
	}
	return nil
}

// DoublePixel builds the pixel-doubled table: for each 6-bit channel value d
// (d = 0, 4, ..., 252) the 20-bit pair encoding d then d^1.
func DoublePixel() (*Table, error) {
	t := &Table{
		Name:   "tmds_double_pixel",
		Title:  "TMDS symbol pairs for pixel-doubled 6-bit channel data",
		Digits: 5,
	}
	var s Section
	for d := 0; d < 256; d += 4 {
		p, disparity := tmds.EncodePair(uint8(d), uint8(d)^1)
		if disparity != 0 {
			return nil, errors.Invariant(errors.PhaseGenerate,
				[]string{t.Name, fmt.Sprintf("%02x", d)}, "pair leaves disparity %d", disparity)
		}
		s.Entries = append(s.Entries, Entry{
			Words:   []uint32{uint32(p)},
			Comment: fmt.Sprintf("%02x", d),
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

// Mono1bpp builds the full-resolution 1bpp table. Each entry covers four pixels as
// two words. Dark pixels alternate 0x00/0x01 and light pixels 0xff/0xfe: either
// first symbol takes the disparity to -8 and either second symbol brings it back,
// at the price of faint vertical banding.
func Mono1bpp() (*Table, error) {
	t := &Table{
		Name:   "tmds_mono_1bpp",
		Title:  "TMDS symbols for 4 full-resolution 1bpp pixels, two words per entry",
		Digits: 5,
	}
	var enc tmds.Encoder
	var s Section
	for i := 0; i < 16; i++ {
		var syms [4]tmds.Symbol
		for j := 0; j < 4; j++ {
			var d uint8
			if i&(1<<j) != 0 {
				d = 0xff
			}
			syms[j] = enc.EncodeData(d ^ uint8(j&1))
		}
		label := fmt.Sprintf("%04b", i)
		if err := checkBalanced(&enc, t.Name, label); err != nil {
			return nil, err
		}
		s.Entries = append(s.Entries, Entry{
			Words: []uint32{
				uint32(tmds.MakePair(syms[0], syms[1])),
				uint32(tmds.MakePair(syms[2], syms[3])),
			},
			Comment: label,
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

// Levels2bpp builds the 2bpp table: one word per pair of 2-bit pixels, chosen from
// the four-level sets whose pairs are all zero-balance.
func Levels2bpp() (*Table, error) {
	t := &Table{
		Name:   "tmds_2bpp",
		Title:  "TMDS symbol pairs for two 2bpp pixels",
		Digits: 5,
	}
	var enc tmds.Encoder
	var s Section
	for i1, p1 := range levels2bppOdd {
		for i0, p0 := range levels2bppEven {
			sym0 := enc.EncodeData(p0)
			sym1 := enc.EncodeData(p1)
			label := fmt.Sprintf("%02b, %02b", i0, i1)
			if err := checkBalanced(&enc, t.Name, label); err != nil {
				return nil, err
			}
			s.Entries = append(s.Entries, Entry{
				Words:   []uint32{uint32(tmds.MakePair(sym0, sym1))},
				Comment: label,
			})
		}
	}
	t.Sections = []Section{s}
	return t, nil
}

// disparityWord packs a symbol with its 6-bit two's complement imbalance in bits 26..31.
func disparityWord(s tmds.Symbol) uint32 {
	return uint32(s) | uint32(tmds.SymbolImbalance(s)&0x3f)<<26
}

// Disparity builds the full-resolution tables for a software encoder: every 6-bit
// channel value encoded from a non-negative (+1) and a negative (-1) running
// disparity, each symbol tagged with its own imbalance.
func Disparity() (*Table, error) {
	t := &Table{
		Name:   "tmds_disparity",
		Title:  "TMDS symbols tagged with their imbalance (bits 26..31)",
		Digits: 8,
	}
	var enc tmds.Encoder
	for _, sec := range []struct {
		heading string
		seed    int
	}{
		{"Non-negative running disparity:", 1},
		{"Negative running disparity:", -1},
	} {
		s := Section{Heading: sec.heading}
		for d := 0; d < 256; d += 4 {
			enc.SetDisparity(sec.seed)
			sym := enc.EncodeData(uint8(d))
			s.Entries = append(s.Entries, Entry{
				Words:   []uint32{disparityWord(sym)},
				Comment: fmt.Sprintf("%02x", d),
			})
		}
		t.Sections = append(t.Sections, s)
	}
	return t, nil
}

// Control builds the four control symbols, each repeated to fill a 20-bit pair.
func Control() (*Table, error) {
	t := &Table{
		Name:   "tmds_ctrl",
		Title:  "TMDS control symbol pairs (VSYNC, HSYNC)",
		Digits: 5,
	}
	var enc tmds.Encoder
	var s Section
	for c := tmds.Control00; c <= tmds.Control11; c++ {
		sym := enc.EncodeControl(c)
		label := fmt.Sprintf("%02b", uint8(c))
		s.Entries = append(s.Entries, Entry{
			Words:   []uint32{uint32(tmds.Doubled(sym))},
			Label:   label,
			Comment: label,
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

// ZeroBalance lists every data byte whose symbol leaves a fresh encoder at zero
// disparity. Such symbols can be repeated freely.
func ZeroBalance() (*Table, error) {
	t := &Table{
		Name:   "tmds_zero_balance",
		Title:  "Data bytes with zero-balance TMDS symbols",
		Digits: 3,
	}
	var s Section
	for d := 0; d < 256; d++ {
		var enc tmds.Encoder
		sym := enc.EncodeData(uint8(d))
		if enc.Disparity() != 0 {
			continue
		}
		s.Entries = append(s.Entries, Entry{
			Words:   []uint32{uint32(sym)},
			Label:   fmt.Sprintf("%02x", d),
			Comment: fmt.Sprintf("%02x", d),
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

// monoPairs are the hand-picked data pairs behind the monochrome double-pixel
// constants. Labels name the intended intensities; comments the bytes sent.
var monoPairs = []struct {
	label  string
	d0, d1 uint8
}{
	{"0_0", 0x00, 0x01},
	{"255_0", 0xfe, 0x00},
	{"0_255", 0x00, 0xfe},
	{"255_255", 0xff, 0xfe},
	{"128_0", 0x80, 0x02},
	{"0_128", 0x00, 0x80},
	{"128_128", 0x80, 0x81},
}

// Mono builds the balanced symbol pairs used to draw monochrome text and graphics.
func Mono() (*Table, error) {
	t := &Table{
		Name:   "tmds_symbol",
		Title:  "Balanced TMDS pairs for monochrome pixel patterns",
		Digits: 5,
	}
	var s Section
	for _, mp := range monoPairs {
		p, disparity := tmds.EncodePair(mp.d0, mp.d1)
		if disparity != 0 {
			return nil, errors.Invariant(errors.PhaseGenerate, []string{t.Name, mp.label},
				"pair %02x/%02x leaves disparity %d", mp.d0, mp.d1, disparity)
		}
		s.Entries = append(s.Entries, Entry{
			Words:   []uint32{uint32(p)},
			Label:   mp.label,
			Comment: fmt.Sprintf("%02X/%02X", mp.d0, mp.d1),
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

// MonoPixelPair builds the two-pixel patterns for each lit monochrome colour.
// Every channel gets four words: off/off, on/off, off/on and on/on, where "on"
// is the channel's intensity in that colour. The background colour is skipped.
func MonoPixelPair() (*Table, error) {
	t := &Table{
		Name:   "tmds_mono_pixel_pair",
		Title:  "TMDS data for RGB channels for a pattern of two pixels",
		Digits: 5,
	}

	pairs := make(map[string]tmds.Pair, len(monoPairs))
	for _, mp := range monoPairs {
		p, err := tmds.BalancedPair(mp.d0, mp.d1)
		if err != nil {
			return nil, err
		}
		pairs[mp.label] = p
	}

	for _, c := range palette.Mono.Colors {
		if c.R|c.G|c.B == 0 {
			continue
		}
		s := Section{Heading: c.Name}
		for _, ch := range palette.Channels {
			level := int(c.Channel(ch))
			e := Entry{
				Label:   c.Name + "_" + strings.ToLower(ch.String()),
				Comment: ch.String(),
			}
			for pattern := 0; pattern < 4; pattern++ {
				p0, p1 := 0, 0
				if pattern&1 != 0 {
					p0 = level
				}
				if pattern&2 != 0 {
					p1 = level
				}
				key := fmt.Sprintf("%d_%d", p0, p1)
				p, ok := pairs[key]
				if !ok {
					return nil, errors.Invariant(errors.PhaseGenerate, []string{t.Name, e.Label},
						"no balanced pair for intensity %s", key)
				}
				e.Words = append(e.Words, uint32(p))
			}
			s.Entries = append(s.Entries, e)
		}
		t.Sections = append(t.Sections, s)
	}
	return t, nil
}

// Differential builds the 8-pixel bitmap to pseudo-differential bit pair table.
func Differential() (*Table, error) {
	t := &Table{
		Name:   "tmds_differential",
		Title:  "8-bit bitmaps expanded to pseudo-differential bit pairs",
		Digits: 4,
	}
	var s Section
	for i := 0; i < 256; i++ {
		s.Entries = append(s.Entries, Entry{
			Words:   []uint32{tmds.Differentialise(uint32(i), 8)},
			Comment: fmt.Sprintf("%08b", i),
		})
	}
	t.Sections = []Section{s}
	return t, nil
}
