package table

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/internal/cident"
	"github.com/wippyai/tmdsgen/palette"
	"github.com/wippyai/tmdsgen/tmds"
)

// Palette builds the double-pixel symbols for every colour of p, one R, G, B word
// per colour. Each channel is encoded by its own goroutine and encoder; pairs are
// balanced, so a channel's stream never needs resetting between colours.
func Palette(ctx context.Context, p palette.Palette) (*Table, error) {
	if len(p.Colors) == 0 {
		return nil, errors.InvalidData(errors.PhaseGenerate, []string{p.Name}, "palette has no colours")
	}
	seen := make(map[string]bool, len(p.Colors))
	for _, c := range p.Colors {
		if !cident.Valid(c.Name) {
			return nil, errors.InvalidData(errors.PhaseGenerate, []string{p.Name, c.Name},
				"colour name is not a C identifier")
		}
		if seen[c.Name] {
			return nil, errors.InvalidData(errors.PhaseGenerate, []string{p.Name, c.Name},
				"duplicate colour name")
		}
		seen[c.Name] = true
	}

	var channels [3][]tmds.Pair
	g, ctx := errgroup.WithContext(ctx)
	for i, ch := range palette.Channels {
		i, ch := i, ch
		g.Go(func() error {
			pairs, err := encodeChannel(ctx, p, ch)
			if err != nil {
				return err
			}
			channels[i] = pairs
			Logger().Debug("channel encoded",
				zap.String("palette", p.Name),
				zap.Stringer("channel", ch),
				zap.Int("colours", len(pairs)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := &Table{
		Name:   "tmds_" + identifier(p.Name) + "_color",
		Title:  fmt.Sprintf("TMDS double-pixel symbols for the %s palette", p.Name),
		Digits: 5,
	}
	s := Section{Heading: "R        G        B"}
	for i, c := range p.Colors {
		s.Entries = append(s.Entries, Entry{
			Words: []uint32{
				uint32(channels[0][i]),
				uint32(channels[1][i]),
				uint32(channels[2][i]),
			},
			Label:   c.Name,
			Comment: c.Name,
		})
	}
	t.Sections = []Section{s}
	return t, nil
}

func encodeChannel(ctx context.Context, p palette.Palette, ch palette.Channel) ([]tmds.Pair, error) {
	var enc tmds.Encoder
	pairs := make([]tmds.Pair, 0, len(p.Colors))
	for _, c := range p.Colors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v := c.Channel(ch)
		s0 := enc.EncodeData(v)
		s1 := enc.EncodeData(v ^ 1)
		if err := checkBalanced(&enc, p.Name, c.Name+"."+ch.String()); err != nil {
			return nil, err
		}
		pairs = append(pairs, tmds.MakePair(s0, s1))
	}
	return pairs, nil
}

// identifier turns a palette name (possibly a file path) into a C identifier fragment.
func identifier(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
