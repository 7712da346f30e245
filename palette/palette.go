// Package palette holds RGB colour palettes that table generators split into channels.
package palette

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/internal/cident"
)

// Channel selects one component of a colour.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists R, G, B in output order.
var Channels = [3]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Color is a named 24-bit RGB colour.
type Color struct {
	Name    string
	R, G, B uint8
}

// Channel returns the 8-bit value of ch.
func (c Color) Channel(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}

// Palette is an ordered list of colours; the index is the hardware colour number.
type Palette struct {
	Name   string
	Colors []Color
}

// Parse reads a palette in "name: rrggbb" form, one colour per line. Blank lines
// and lines starting with '#' are skipped. Colour names become C identifiers, so
// they must be valid identifiers and unique. Any malformed line fails the whole parse.
func Parse(name, text string) (Palette, error) {
	p := Palette{Name: name}

	seen := make(map[string]int)
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseLine(line)
		if err == nil {
			if first, dup := seen[c.Name]; dup {
				err = fmt.Errorf("colour %q already defined on line %d", c.Name, first)
			}
		}
		if err != nil {
			return Palette{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Path(name, fmt.Sprintf("line %d", lineNo)).
				Value(line).
				Cause(err).
				Detail("malformed palette entry").
				Build()
		}
		seen[c.Name] = lineNo
		p.Colors = append(p.Colors, c)
	}
	if err := sc.Err(); err != nil {
		return Palette{}, errors.ParseFailed("palette "+name, err)
	}
	if len(p.Colors) == 0 {
		return Palette{}, errors.InvalidData(errors.PhaseParse, []string{name}, "palette has no colours")
	}
	return p, nil
}

func parseLine(line string) (Color, error) {
	name, hex, ok := strings.Cut(line, ":")
	if !ok {
		return Color{}, fmt.Errorf("missing ':' separator")
	}
	name = strings.TrimSpace(name)
	hex = strings.TrimSpace(hex)
	if name == "" {
		return Color{}, fmt.Errorf("empty colour name")
	}
	if !cident.Valid(name) {
		return Color{}, fmt.Errorf("colour name %q is not a C identifier", name)
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("want 6 hex digits, got %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, err
	}
	return Color{Name: name, R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Load reads and parses a palette file. The palette is named after the path.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, errors.Load("read palette "+path, err)
	}
	return Parse(path, string(data))
}

// Resolve returns a built-in palette by name, or loads name as a file.
func Resolve(name string) (Palette, error) {
	if p, ok := Lookup(name); ok {
		return p, nil
	}
	if _, err := os.Stat(name); err != nil {
		return Palette{}, errors.NotFound(errors.PhaseLoad, "palette", name)
	}
	return Load(name)
}
