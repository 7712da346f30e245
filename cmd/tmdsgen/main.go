package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/internal/logging"
	"github.com/wippyai/tmdsgen/internal/tty"
	"github.com/wippyai/tmdsgen/palette"
	"github.com/wippyai/tmdsgen/table"
)

func main() {
	var (
		tableName   = flag.String("table", "doublepixel", "Table to generate (see -list)")
		formatName  = flag.String("format", "", "Output format: c, asm, hex, define (default depends on table)")
		paletteName = flag.String("palette", "lores", "Built-in palette name or palette file for -table palette")
		name        = flag.String("name", "", "Override the generated table identifier")
		outFile     = flag.String("o", "", "Write output to file instead of stdout")
		list        = flag.Bool("list", false, "List tables and palettes and exit")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	log, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	table.SetLogger(log)

	if *list {
		printList(os.Stdout, tty.IsWriterTerminal(os.Stdout))
		return
	}

	if *interactive {
		if !tty.Interactive() {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal on stdin and stdout")
			os.Exit(1)
		}
		if err := runInteractive(*paletteName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(log, *tableName, *formatName, *paletteName, *name, *outFile); err != nil {
		log.Error("generation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, tableName, formatName, paletteName, name, outFile string) error {
	ctx := context.Background()

	gen, err := table.Lookup(tableName)
	if err != nil {
		return err
	}

	format := gen.Format
	if formatName != "" {
		if format, err = table.ParseFormat(formatName); err != nil {
			return err
		}
	}

	opts := table.Options{Name: name}
	if gen.Name == "palette" {
		if opts.Palette, err = palette.Resolve(paletteName); err != nil {
			return err
		}
	}

	t, err := table.Generate(ctx, gen.Name, opts)
	if err != nil {
		return err
	}

	if err := writeTable(os.Stdout, t, format, outFile); err != nil {
		return err
	}

	log.Debug("table written",
		zap.String("table", gen.Name),
		zap.Stringer("format", format),
		zap.String("output", outFile),
		zap.Int("words", t.Len()))
	return nil
}

// writeTable renders t to stdout, or to outFile when set. A failed render or
// close removes the partial file.
func writeTable(stdout io.Writer, t *table.Table, format table.Format, outFile string) error {
	if outFile == "" {
		return t.Render(stdout, format)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, "create "+outFile)
	}
	if err := t.Render(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(outFile)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(outFile)
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, "close "+outFile)
	}
	return nil
}

var listHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

func printList(w io.Writer, styled bool) {
	heading := func(s string) string {
		if styled {
			return listHeading.Render(s)
		}
		return s
	}

	fmt.Fprintln(w, heading("Tables:"))
	for _, g := range table.Generators() {
		fmt.Fprintf(w, "  %-14s %-7s %s\n", g.Name, g.Format, g.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Palettes:"))
	for _, n := range palette.Names() {
		p, _ := palette.Lookup(n)
		fmt.Fprintf(w, "  %-14s %d colours\n", n, len(p.Colors))
	}
}
