package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/tmdsgen/tmds"
)

func mustBuild(t *testing.T, build func() (*Table, error)) *Table {
	t.Helper()
	tbl, err := build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tbl
}

func equalWords(t *testing.T, got, want []uint32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestDoublePixel(t *testing.T) {
	tbl := mustBuild(t, DoublePixel)
	words := tbl.Words()
	if len(words) != 64 {
		t.Fatalf("got %d entries, want 64", len(words))
	}
	equalWords(t, words[:4], []uint32{0x7fd00, 0x40dfc, 0x41df8, 0x7ed04})
	if words[32] != 0x5fd80 {
		t.Errorf("entry 0x80 = %#x, want 0x5fd80", words[32])
	}
	if words[63] != 0xbfa01 {
		t.Errorf("entry 0xfc = %#x, want 0xbfa01", words[63])
	}
	for i, w := range words {
		if got := uint32(tmds.DoublePixel(uint8(i * 4))); got != w {
			t.Errorf("entry %d = %#x, DoublePixel = %#x", i, w, got)
		}
	}
}

func TestMono1bpp(t *testing.T) {
	tbl := mustBuild(t, Mono1bpp)
	// Word per two-pixel pattern, indexed by the pattern bits (pixel 0 in bit 0).
	halves := [4]uint32{0x7fd00, 0x7fe00, 0xbfd00, 0xbfe00}
	var want []uint32
	for i := 0; i < 16; i++ {
		want = append(want, halves[i&3], halves[(i>>2)&3])
	}
	equalWords(t, tbl.Words(), want)
	if tbl.Entries()[5].Comment != "0101" {
		t.Errorf("comment = %q", tbl.Entries()[5].Comment)
	}
}

func TestLevels2bpp(t *testing.T) {
	tbl := mustBuild(t, Levels2bpp)
	equalWords(t, tbl.Words(), []uint32{
		0x7f103, 0x7f130, 0x7f230, 0x7f203,
		0x73d03, 0x73d30, 0x73e30, 0x73e03,
		0xb3d03, 0xb3d30, 0xb3e30, 0xb3e03,
		0xbf103, 0xbf130, 0xbf230, 0xbf203,
	})

	var buf bytes.Buffer
	if err := tbl.Render(&buf, FormatAsm); err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		"    .word 0x7f103 // 00, 00\n",
		"    .word 0x73e30 // 10, 01\n",
		"    .word 0xbf203 // 11, 11\n",
	} {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("asm output missing %q", line)
		}
	}
}

func TestDisparity(t *testing.T) {
	tbl := mustBuild(t, Disparity)
	if len(tbl.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(tbl.Sections))
	}
	pos := tbl.Sections[0].Entries
	neg := tbl.Sections[1].Entries
	if len(pos) != 64 || len(neg) != 64 {
		t.Fatalf("section sizes %d/%d, want 64/64", len(pos), len(neg))
	}

	tests := []struct {
		entries []Entry
		idx     int
		want    uint32
	}{
		{pos, 0, 0xe0000100},
		{pos, 1, 0xf8000303},
		{pos, 2, 0x00000307},
		{pos, 3, 0xe8000104},
		{pos, 63, 0xe8000201},
		{neg, 0, 0x280003ff},
		{neg, 1, 0x100001fc},
		{neg, 2, 0x080001f8},
		{neg, 3, 0x200003fb},
		{neg, 63, 0x100000fe},
	}
	for _, tt := range tests {
		if got := tt.entries[tt.idx].Words[0]; got != tt.want {
			t.Errorf("entry %d = %#08x, want %#08x", tt.idx, got, tt.want)
		}
	}
}

func TestControl(t *testing.T) {
	tbl := mustBuild(t, Control)
	equalWords(t, tbl.Words(), []uint32{0xd5354, 0x2acab, 0x55154, 0xaaeab})
}

func TestZeroBalance(t *testing.T) {
	tbl := mustBuild(t, ZeroBalance)
	entries := tbl.Entries()
	if len(entries) != 52 {
		t.Fatalf("got %d zero-balance bytes, want 52", len(entries))
	}
	if entries[0].Label != "10" || entries[0].Words[0] != 0x1f0 {
		t.Errorf("first = %s:%#x, want 10:0x1f0", entries[0].Label, entries[0].Words[0])
	}
	if entries[1].Label != "11" || entries[1].Words[0] != 0x10f {
		t.Errorf("second = %s:%#x, want 11:0x10f", entries[1].Label, entries[1].Words[0])
	}
	for _, e := range entries {
		if tmds.SymbolImbalance(tmds.Symbol(e.Words[0])) != 0 {
			t.Errorf("%s: symbol %#x is not balanced", e.Label, e.Words[0])
		}
	}
}

func TestMono(t *testing.T) {
	tbl := mustBuild(t, Mono)
	equalWords(t, tbl.Words(), []uint32{0x7fd00, 0x402ff, 0xbfd00, 0xbfe00, 0x7f980, 0xdfd00, 0x5fd80})

	var buf bytes.Buffer
	if err := tbl.Render(&buf, FormatDefine); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "#define TMDS_SYMBOL_255_0") {
		t.Errorf("define output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "0x402ff // FE/00\n") {
		t.Errorf("define output missing value/comment:\n%s", buf.String())
	}
}

func TestMonoPixelPair(t *testing.T) {
	const (
		s00   = 0x7fd00
		s10   = 0x402ff
		s01   = 0xbfd00
		s11   = 0xbfe00
		h10   = 0x7f980
		h01   = 0xdfd00
		h11   = 0x5fd80
		black = s00
	)
	// tmds_mono_pixel_pair from the firmware, white, green and amber.
	want := []uint32{
		s00, s10, s01, s11,
		s00, s10, s01, s11,
		s00, s10, s01, s11,

		black, black, black, black,
		s00, s10, s01, s11,
		black, black, black, black,

		s00, s10, s01, s11,
		s00, h10, h01, h11,
		black, black, black, black,
	}

	tbl := mustBuild(t, MonoPixelPair)
	if tbl.Len() != 4*3*3 {
		t.Fatalf("Len = %d, want 36", tbl.Len())
	}
	equalWords(t, tbl.Words(), want)

	if got := tbl.Sections[2].Heading; got != "amber" {
		t.Errorf("third section = %q, want amber", got)
	}

	var buf bytes.Buffer
	if err := tbl.Render(&buf, FormatC); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "const uint32_t tmds_mono_pixel_pair[36] = {\n") {
		t.Errorf("C output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "    0x7fd00, 0x7f980, 0xdfd00, 0x5fd80, // G\n") {
		t.Errorf("amber green row missing:\n%s", buf.String())
	}
}

func TestDifferential(t *testing.T) {
	tbl := mustBuild(t, Differential)
	words := tbl.Words()
	if len(words) != 256 {
		t.Fatalf("got %d entries", len(words))
	}
	if words[0] != 0xaaaa || words[0xff] != 0x5555 || words[0xa5] != 0x6699 {
		t.Errorf("unexpected words %#x %#x %#x", words[0], words[0xff], words[0xa5])
	}
}
