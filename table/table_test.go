package table

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/palette"
)

func sampleTable() *Table {
	return &Table{
		Name:   "t",
		Title:  "x",
		Digits: 5,
		Sections: []Section{{
			Heading: "h",
			Entries: []Entry{{Words: []uint32{1, 2}, Comment: "c"}},
		}},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatC, "// x\nconst uint32_t t[2] = {\n    // h\n    0x00001, 0x00002, // c\n};\n"},
		{FormatAsm, "// x\nt:\n    // h\n    .word 0x00001, 0x00002 // c\n"},
		{FormatHex, "// h\n0x00001, 0x00002, // c\n"},
		{FormatDefine, "// x\n// h\n" +
			fmt.Sprintf("#define %-24s 0x00001 // c\n", "T_0_0") +
			fmt.Sprintf("#define %-24s 0x00002 // c\n", "T_0_1")},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := sampleTable().Render(&buf, tt.format); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", buf.String(), tt.want)
			}
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	err := sampleTable().Render(&bytes.Buffer{}, Format(42))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRender, Kind: errors.KindUnsupported}) {
		t.Fatalf("error = %v", err)
	}
}

func TestRender_InvalidIdentifiers(t *testing.T) {
	target := &errors.Error{Phase: errors.PhaseRender, Kind: errors.KindInvalidInput}

	badName := sampleTable()
	badName.Name = "my table"
	for _, f := range []Format{FormatC, FormatAsm, FormatDefine} {
		var buf bytes.Buffer
		if err := badName.Render(&buf, f); !stderrors.Is(err, target) {
			t.Errorf("%s: error = %v, want render/invalid_input", f, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: wrote %q before failing", f, buf.String())
		}
	}
	if err := badName.Render(&bytes.Buffer{}, FormatHex); err != nil {
		t.Errorf("hex output carries no identifier, got %v", err)
	}

	badLabel := sampleTable()
	badLabel.Sections[0].Entries[0].Label = "light-red"
	if err := badLabel.Render(&bytes.Buffer{}, FormatDefine); !stderrors.Is(err, target) {
		t.Errorf("define label: error = %v, want render/invalid_input", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := sampleTable().Render(failingWriter{}, FormatC)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRender, Kind: errors.KindIO}) {
		t.Fatalf("error = %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"c", "asm", "hex", "define", "ASM"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

var loresGolden = [16][3]uint32{
	{0x7fd00, 0x7fd00, 0x7fd00},
	{0x886de, 0x7e107, 0xa2277},
	{0x465e6, 0x465e6, 0x826f6},
	{0x85ee8, 0x44dec, 0xbfe00},
	{0x7fd00, 0x5fd80, 0x7fd00},
	{0x5fd80, 0x5fd80, 0x5fd80},
	{0x411fb, 0x5819f, 0xbfe00},
	{0xb3233, 0xb3233, 0xbfe00},
	{0x73133, 0x73133, 0x7fd00},
	{0x812fb, 0x9829f, 0x7fd00},
	{0x5fd80, 0x5fd80, 0x5fd80},
	{0xbfe00, 0x5e187, 0x826f6},
	{0x45de8, 0x84eec, 0x7fd00},
	{0x866e6, 0x866e6, 0x425f6},
	{0x485de, 0xbe207, 0x62177},
	{0xbfe00, 0xbfe00, 0xbfe00},
}

func TestPalette_Lores(t *testing.T) {
	tbl, err := Palette(context.Background(), palette.LoresRGB)
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if tbl.Name != "tmds_lores_color" {
		t.Errorf("Name = %q", tbl.Name)
	}
	entries := tbl.Entries()
	if len(entries) != 16 {
		t.Fatalf("got %d entries", len(entries))
	}
	for i, want := range loresGolden {
		got := entries[i].Words
		if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("%s = %#x, want %#x", entries[i].Comment, got, want)
		}
	}
}

func TestPalette_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Palette(ctx, palette.LoresRGB); !stderrors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestPalette_Empty(t *testing.T) {
	if _, err := Palette(context.Background(), palette.Palette{Name: "none"}); err == nil {
		t.Fatal("expected error for empty palette")
	}
}

func TestGenerate(t *testing.T) {
	for _, g := range Generators() {
		t.Run(g.Name, func(t *testing.T) {
			tbl, err := Generate(context.Background(), g.Name, Options{})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if tbl.Len() == 0 {
				t.Fatal("empty table")
			}
			var buf bytes.Buffer
			if err := tbl.Render(&buf, g.Format); err != nil {
				t.Fatalf("Render: %v", err)
			}
		})
	}

	tbl, err := Generate(context.Background(), "palette", Options{Palette: palette.Mono, Name: "tmds_mono_double_pixel"})
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Name != "tmds_mono_double_pixel" {
		t.Errorf("Name = %q", tbl.Name)
	}
	// white, green, amber, black as in the firmware table.
	equalWords(t, tbl.Words()[:6], []uint32{0xbfe00, 0xbfe00, 0xbfe00, 0x7fd00, 0xbfe00, 0x7fd00})
	if got := tbl.Words()[7]; got != 0x5fd80 {
		t.Errorf("amber green = %#x, want 0x5fd80", got)
	}
}

func TestGenerate_RejectsBadName(t *testing.T) {
	target := &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindInvalidInput}
	for _, name := range []string{"my table", "tmds-symbol", "1st", "a.b"} {
		t.Run(name, func(t *testing.T) {
			_, err := Generate(context.Background(), "mono", Options{Name: name})
			if !stderrors.Is(err, target) {
				t.Fatalf("error = %v, want generate/invalid_input", err)
			}
		})
	}
}

func TestPalette_RejectsBadColourNames(t *testing.T) {
	tests := []struct {
		name   string
		colors []palette.Color
	}{
		{"space", []palette.Color{{Name: "dark blue", B: 0x80}}},
		{"dash", []palette.Color{{Name: "light-red", R: 0xff}}},
		{"duplicate", []palette.Color{{Name: "red", R: 0xff}, {Name: "red", R: 0xfe}}},
	}
	target := &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindInvalidData}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := palette.Palette{Name: "mine", Colors: tt.colors}
			_, err := Generate(context.Background(), "palette", Options{Palette: p})
			if !stderrors.Is(err, target) {
				t.Fatalf("error = %v, want generate/invalid_data", err)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Generate(context.Background(), "bogus", Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseGenerate, Kind: errors.KindNotFound}) {
		t.Fatalf("error = %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"lores":            "lores",
		"lores-ntsc":       "lores_ntsc",
		"/tmp/My Pal.txt":  "my_pal",
		"palettes/apple2e": "apple2e",
	}
	for in, want := range tests {
		if got := identifier(in); got != want {
			t.Errorf("identifier(%q) = %q, want %q", in, got, want)
		}
	}
}
