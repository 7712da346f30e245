package table

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/internal/cident"
)

// Format selects the textual form of a rendered table.
type Format int

const (
	FormatC      Format = iota // C array initialiser
	FormatAsm                  // assembler .word directives
	FormatHex                  // bare hex literals, one entry per line
	FormatDefine               // one #define per word
)

var formatNames = map[string]Format{
	"c":      FormatC,
	"asm":    FormatAsm,
	"hex":    FormatHex,
	"define": FormatDefine,
}

// ParseFormat maps a command-line format name to a Format.
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[strings.ToLower(s)]
	if !ok {
		return 0, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Value(s).
			Detail("unknown format %q (want c, asm, hex or define)", s).
			Build()
	}
	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Entry is one row of a table.
type Entry struct {
	Words   []uint32
	Label   string // identifier suffix for FormatDefine; the row index when empty
	Comment string
}

// Section is a run of entries under an optional heading comment.
type Section struct {
	Heading string
	Entries []Entry
}

// Table is a generated lookup table ready to be rendered as source text.
type Table struct {
	Name     string
	Title    string
	Digits   int // hex digits per word
	Sections []Section
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	n := 0
	for _, s := range t.Sections {
		for _, e := range s.Entries {
			n += len(e.Words)
		}
	}
	return n
}

// Entries returns all entries across sections.
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, s := range t.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Words returns the flattened table contents.
func (t *Table) Words() []uint32 {
	out := make([]uint32, 0, t.Len())
	for _, e := range t.Entries() {
		out = append(out, e.Words...)
	}
	return out
}

// Render writes the table to w in format f. Names that would not be valid C
// identifiers are rejected before anything is written.
func (t *Table) Render(w io.Writer, f Format) error {
	if f != FormatHex && !cident.Valid(t.Name) {
		return errors.InvalidInput(errors.PhaseRender,
			fmt.Sprintf("table name %q is not a C identifier", t.Name))
	}

	var buf bytes.Buffer

	if t.Title != "" && f != FormatHex {
		fmt.Fprintf(&buf, "// %s\n", t.Title)
	}

	switch f {
	case FormatC:
		fmt.Fprintf(&buf, "const uint32_t %s[%d] = {\n", t.Name, t.Len())
		t.renderRows(&buf, "    ", "", ",")
		buf.WriteString("};\n")
	case FormatAsm:
		fmt.Fprintf(&buf, "%s:\n", t.Name)
		t.renderRows(&buf, "    ", ".word ", "")
	case FormatHex:
		t.renderRows(&buf, "", "", ",")
	case FormatDefine:
		if err := t.renderDefines(&buf); err != nil {
			return err
		}
	default:
		return errors.Unsupported(errors.PhaseRender, "format "+f.String())
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, "write table "+t.Name)
	}
	return nil
}

func (t *Table) hex(v uint32) string {
	return fmt.Sprintf("0x%0*x", t.Digits, v)
}

func (t *Table) renderRows(buf *bytes.Buffer, indent, directive, trailer string) {
	for _, s := range t.Sections {
		if s.Heading != "" {
			fmt.Fprintf(buf, "%s// %s\n", indent, s.Heading)
		}
		for _, e := range s.Entries {
			words := make([]string, len(e.Words))
			for i, v := range e.Words {
				words[i] = t.hex(v)
			}
			buf.WriteString(indent)
			buf.WriteString(directive)
			buf.WriteString(strings.Join(words, ", "))
			buf.WriteString(trailer)
			if e.Comment != "" {
				buf.WriteString(" // ")
				buf.WriteString(e.Comment)
			}
			buf.WriteByte('\n')
		}
	}
}

func (t *Table) renderDefines(buf *bytes.Buffer) error {
	prefix := strings.ToUpper(t.Name)
	row := 0
	for _, s := range t.Sections {
		if s.Heading != "" {
			fmt.Fprintf(buf, "// %s\n", s.Heading)
		}
		for _, e := range s.Entries {
			label := e.Label
			if label == "" {
				label = strconv.Itoa(row)
			}
			for i, v := range e.Words {
				name := prefix + "_" + strings.ToUpper(label)
				if len(e.Words) > 1 {
					name += "_" + strconv.Itoa(i)
				}
				if !cident.Valid(name) {
					return errors.InvalidInput(errors.PhaseRender,
						fmt.Sprintf("define name %q is not a C identifier", name))
				}
				fmt.Fprintf(buf, "#define %-24s %s", name, t.hex(v))
				if e.Comment != "" {
					buf.WriteString(" // ")
					buf.WriteString(e.Comment)
				}
				buf.WriteByte('\n')
			}
			row++
		}
	}
	return nil
}
