package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/tmdsgen/tmds"
)

// traceStep is one encoder call made from the explorer's trace line.
type traceStep struct {
	input     string
	symbol    tmds.Symbol
	disparity int
}

// runTrace feeds a whitespace or comma separated list of inputs to a fresh encoder.
// Tokens are hex data bytes ("80", "0xff") or control codes "ctl0".."ctl3".
func runTrace(line string) ([]traceStep, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("nothing to encode")
	}

	var enc tmds.Encoder
	steps := make([]traceStep, 0, len(fields))
	for _, f := range fields {
		tok := strings.ToLower(f)
		var sym tmds.Symbol

		if ctl, ok := strings.CutPrefix(tok, "ctl"); ok {
			c, err := strconv.ParseUint(ctl, 10, 2)
			if err != nil {
				return nil, fmt.Errorf("bad control code %q (want ctl0..ctl3)", f)
			}
			sym = enc.EncodeControl(tmds.Control(c))
		} else {
			v, err := strconv.ParseUint(strings.TrimPrefix(tok, "0x"), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad data byte %q (want 00..ff)", f)
			}
			sym = enc.EncodeData(uint8(v))
		}

		steps = append(steps, traceStep{input: f, symbol: sym, disparity: enc.Disparity()})
	}
	return steps, nil
}

func formatTrace(steps []traceStep) string {
	var b strings.Builder
	b.WriteString("input   symbol       hex    disparity\n")
	for _, s := range steps {
		fmt.Fprintf(&b, "%-7s %010b   0x%03x  %+d\n", s.input, s.symbol, s.symbol, s.disparity)
	}
	return b.String()
}
