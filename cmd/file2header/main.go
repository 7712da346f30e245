// Command file2header converts text and binary files into C array declarations
// that can be included in firmware sources.
//
// Usage:
//
//	file2header [-strip] [-binary] [-arduino name] [-padding n] [-type uint8_t|char] [-zstd] file...
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/tmdsgen/internal/logging"
	"github.com/wippyai/tmdsgen/srcarray"
)

func main() {
	var (
		strip      = flag.Bool("strip", false, "Trim lines and drop empty lines and // comments from text sources")
		binary     = flag.Bool("binary", false, "Treat files as binary")
		arduino    = flag.String("arduino", "", "Generate an Arduino PROGMEM uint8_t array with the given name")
		padding    = flag.Int("padding", 0, "Pad binary contents to a multiple of the given value")
		outputType = flag.String("type", srcarray.TypeUint8, "Element type for binary data: uint8_t or char")
		compress   = flag.Bool("zstd", false, "zstd-compress binary contents (implies -binary)")
		verbose    = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	srcarray.SetLogger(log)

	opts := srcarray.Options{
		Strip:      *strip,
		Binary:     *binary || *compress,
		Arduino:    *arduino,
		Padding:    *padding,
		OutputType: *outputType,
		Compress:   *compress,
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(out, flag.Args(), opts); err != nil {
		_ = out.Flush()
		log.Error("conversion failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, files []string, opts srcarray.Options) error {
	if err := srcarray.WriteBanner(w); err != nil {
		return err
	}
	for _, path := range files {
		if err := srcarray.ConvertFile(w, path, opts); err != nil {
			return err
		}
	}
	return nil
}
