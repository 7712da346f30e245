// Package srcarray converts text and binary files into C source array declarations
// so that fonts, help texts and other resources can be compiled into firmware.
//
// Text files become string literals, one per input line:
//
//	const char HELP_TXT[] = {
//	    "first line\n"
//	    "second \"quoted\" line\n"
//	};
//
// Binary files become byte lists, optionally padded to a multiple of a block size
// and optionally zstd-compressed.
package srcarray

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/wippyai/tmdsgen/errors"
)

// Output types for binary data.
const (
	TypeUint8 = "uint8_t"
	TypeChar  = "char"
)

// PaddingByte fills binary data up to the requested alignment.
const PaddingByte = 0xff

const (
	uint8LineLimit = 70
	charLineLimit  = 60
)

// Options controls a conversion.
type Options struct {
	// Strip trims each line and drops blank lines and // comments.
	Strip bool
	// Binary emits raw bytes instead of text lines.
	Binary bool
	// Arduino, when set, names a PROGMEM uint8_t array instead of the derived name.
	Arduino string
	// Padding aligns binary data to a multiple of this many bytes.
	Padding int
	// OutputType is TypeUint8 (default) or TypeChar for binary data.
	OutputType string
	// Compress zstd-compresses binary data before it is emitted.
	Compress bool
}

func (o Options) validate() error {
	switch o.OutputType {
	case "", TypeUint8, TypeChar:
	default:
		return errors.New(errors.PhaseConvert, errors.KindInvalidInput).
			Value(o.OutputType).
			Detail("unknown output type %q (want %s or %s)", o.OutputType, TypeUint8, TypeChar).
			Build()
	}
	if o.Padding < 0 {
		return errors.InvalidInput(errors.PhaseConvert, fmt.Sprintf("negative padding %d", o.Padding))
	}
	if o.Compress && !o.Binary {
		return errors.InvalidInput(errors.PhaseConvert, "compression requires binary mode")
	}
	return nil
}

func (o Options) outputType() string {
	if o.OutputType == "" {
		return TypeUint8
	}
	return o.OutputType
}

// WriteBanner writes the generated-file banner that precedes the first array.
func WriteBanner(w io.Writer) error {
	_, err := io.WriteString(w,
		"/*******************************************************\n"+
			" * GENERATED FILE\n"+
			" *******************************************************/\n"+
			"\n")
	if err != nil {
		return errors.Wrap(errors.PhaseConvert, errors.KindIO, err, "write banner")
	}
	return nil
}

// VariableName derives the array name from a file name: "help.txt" becomes "HELP_TXT".
func VariableName(path string) string {
	return strings.ToUpper(strings.ReplaceAll(filepath.Base(path), ".", "_"))
}

// ConvertFile converts the file at path.
func ConvertFile(w io.Writer, path string, opts Options) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Load("open "+path, err)
	}
	defer f.Close()
	return Convert(w, path, f, opts)
}

// Convert reads r and writes one array declaration named after name.
func Convert(w io.Writer, name string, r io.Reader, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(errors.PhaseConvert, errors.KindIO, err, "read "+name)
	}

	varName := VariableName(name)
	var preamble, out []string

	if opts.Compress {
		raw := len(data)
		data, err = compress(data)
		if err != nil {
			return errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, "compress "+name)
		}
		preamble = append(preamble,
			fmt.Sprintf("// zstd compressed: %d bytes, %d uncompressed", len(data), raw),
			fmt.Sprintf("#define %s_UNCOMPRESSED_SIZE %d", varName, raw))
	}

	var lines []string
	if opts.Binary {
		data = pad(data, opts.Padding)
		lines = byteLines(data, opts.outputType())
	} else {
		lines = textLines(data)
	}

	switch {
	case opts.Arduino != "":
		out = append(out, "const uint8_t "+opts.Arduino+"[] PROGMEM = {")
	case opts.Binary && opts.outputType() == TypeUint8:
		out = append(out, "const uint8_t "+varName+"[] = {")
	default:
		out = append(out, "const char "+varName+"[] = {")
	}

	emitted := 0
	for _, e := range lines {
		if opts.Strip {
			e = strings.TrimSpace(e)
			if e == "" || strings.HasPrefix(e, "//") {
				continue
			}
		} else {
			e = strings.TrimRight(e, "\r\n")
		}

		switch {
		case opts.Binary && opts.outputType() == TypeChar:
			e = `    "` + e + `" `
		case opts.Binary:
			// uint8_t lines are emitted as built
		default:
			e = strings.ReplaceAll(e, `\`, `\\`)
			e = strings.ReplaceAll(e, `"`, `\"`)
			e = `    "` + e + `\n" `
		}
		out = append(out, e)
		emitted++
	}
	out = append(out, "};")

	sep := "\n"
	if opts.Binary && opts.outputType() == TypeChar {
		sep = "\\\n"
	}

	var buf bytes.Buffer
	for _, p := range preamble {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Join(out, sep))
	buf.WriteString("\n\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.PhaseConvert, errors.KindIO, err, "write "+varName)
	}

	Logger().Debug("converted",
		zap.String("file", name),
		zap.String("variable", varName),
		zap.Bool("binary", opts.Binary),
		zap.Int("bytes", len(data)),
		zap.Int("lines", emitted))
	return nil
}

func pad(data []byte, align int) []byte {
	if align <= 1 {
		return data
	}
	if rem := len(data) % align; rem != 0 {
		data = append(data, bytes.Repeat([]byte{PaddingByte}, align-rem)...)
	}
	return data
}

// textLines splits data into lines that keep their terminators, like a line reader.
func textLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func byteLines(data []byte, outputType string) []string {
	var lines []string
	var s strings.Builder

	for i, b := range data {
		if outputType == TypeChar {
			fmt.Fprintf(&s, "\\x%02x", b)
			if s.Len() > charLineLimit {
				lines = append(lines, s.String())
				s.Reset()
			}
			continue
		}

		if s.Len() == 0 {
			s.WriteByte(' ')
		}
		fmt.Fprintf(&s, " 0x%02x", b)
		if i < len(data)-1 {
			s.WriteByte(',')
		}
		if s.Len() > uint8LineLimit {
			lines = append(lines, s.String())
			s.Reset()
		}
	}
	if s.Len() > 0 {
		lines = append(lines, s.String())
	}
	return lines
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
