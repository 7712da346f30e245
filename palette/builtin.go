package palette

import "sort"

// loresNTSC are the measured Apple II low-resolution colours.
const loresNTSC = `
black:     000000
magenta:   bf1a3d
darkblue:  452dff
purple:    fe43ff
darkgreen: 00813d
grey1:     808080
mediumblue:369cff
lightblue: c39eff
brown:     3e6a00
orange:    fc6e00
grey2:     808080
pink:      ff86c1
green:     3aec00
yellow:    c2eb00
aqua:      57ffc0
white:     ffffff
`

// LoresRGB is the tuned low-resolution palette the firmware tables are built from.
var LoresRGB = Palette{
	Name: "lores",
	Colors: []Color{
		{"black", 0x00, 0x00, 0x00},
		{"magenta", 0x9d, 0x09, 0x66},
		{"darkblue", 0x2a, 0x2a, 0xe5},
		{"purple", 0xc7, 0x34, 0xff},
		{"darkgreen", 0x00, 0x80, 0x00},
		{"grey1", 0x80, 0x80, 0x80},
		{"mediumblue", 0x0d, 0xa1, 0xff},
		{"lightblue", 0xaa, 0xaa, 0xff},
		{"brown", 0x55, 0x55, 0x00},
		{"orange", 0xf2, 0x5e, 0x00},
		{"grey2", 0x80, 0x80, 0x80},
		{"pink", 0xff, 0x89, 0xe5},
		{"green", 0x38, 0xcb, 0x00},
		{"yellow", 0xd5, 0xd5, 0x1a},
		{"aqua", 0x62, 0xf6, 0x99},
		{"white", 0xff, 0xff, 0xff},
	},
}

// LoresNTSC is the measured palette, kept for comparison tables.
var LoresNTSC = mustParse("lores-ntsc", loresNTSC)

// Mono holds the monochrome display colours: white, green and amber on black.
var Mono = Palette{
	Name: "mono",
	Colors: []Color{
		{"white", 0xff, 0xff, 0xff},
		{"green", 0x00, 0xff, 0x00},
		{"amber", 0xff, 0x80, 0x00},
		{"black", 0x00, 0x00, 0x00},
	},
}

var builtins = map[string]Palette{
	LoresRGB.Name:  LoresRGB,
	LoresNTSC.Name: LoresNTSC,
	Mono.Name:      Mono,
}

// Lookup returns a built-in palette.
func Lookup(name string) (Palette, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names lists the built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func mustParse(name, text string) Palette {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return p
}
