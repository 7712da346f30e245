// Package tmdsgen generates TMDS (DVI 1.0) symbol tables for software video
// output on microcontrollers.
//
// A DVI link carries 10-bit symbols per colour channel. Firmware that bit-bangs
// or PIO-shifts the link cannot afford to run the encoder per pixel, so it reads
// pre-encoded symbol pairs from tables generated here.
//
// # Architecture Overview
//
//	tmdsgen/
//	├── tmds/            Encoder state machine, balanced pairs, decoding
//	├── table/           Table generators and C / asm / hex / #define rendering
//	├── palette/         Colour palettes, built-in and file based
//	├── srcarray/        Text and binary files to C array declarations
//	├── errors/          Structured error types
//	├── internal/tty     Terminal detection for the commands
//	├── internal/logging zap setup for the commands
//	├── cmd/tmdsgen      Table generator CLI with an interactive explorer
//	└── cmd/file2header  Resource file converter CLI
//
// # Quick Start
//
// Encode a run of pixels:
//
//	var enc tmds.Encoder
//	for _, d := range pixels {
//	    sym := enc.EncodeData(d)
//	    ...
//	}
//	enc.EncodeControl(tmds.CtrlHSync) // resets the running disparity
//
// Build and print a table:
//
//	t, err := table.DoublePixel()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.Render(os.Stdout, table.FormatC)
//
// # Balanced Pairs
//
// From a zero running disparity, every byte d encoded as the pair (d, d^1)
// leaves the disparity back at zero. Tables built from such pairs can be
// replayed in any order without the link drifting.
//
// # Thread Safety
//
// An Encoder is a small value carrying one channel's disparity. It is not safe
// for concurrent use; give each goroutine its own. Table generation and
// rendering are safe to call concurrently.
package tmdsgen
