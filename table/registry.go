package table

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/tmdsgen/errors"
	"github.com/wippyai/tmdsgen/internal/cident"
	"github.com/wippyai/tmdsgen/palette"
)

// Options configures a generator run.
type Options struct {
	// Palette is used by the palette generator; LoresRGB when zero.
	Palette palette.Palette
	// Name overrides the generated table's identifier.
	Name string
}

// Generator is a named table recipe.
type Generator struct {
	Name        string
	Description string
	Format      Format // preferred output format
	Build       func(ctx context.Context, opts Options) (*Table, error)
}

func fixed(build func() (*Table, error)) func(context.Context, Options) (*Table, error) {
	return func(context.Context, Options) (*Table, error) {
		return build()
	}
}

var generators = []Generator{
	{
		Name:        "doublepixel",
		Description: "pixel-doubled pairs for 6-bit channel values",
		Format:      FormatC,
		Build:       fixed(DoublePixel),
	},
	{
		Name:        "mono1bpp",
		Description: "full-resolution 1bpp, 4 pixels per entry",
		Format:      FormatC,
		Build:       fixed(Mono1bpp),
	},
	{
		Name:        "levels2bpp",
		Description: "two 2bpp pixels per word",
		Format:      FormatAsm,
		Build:       fixed(Levels2bpp),
	},
	{
		Name:        "disparity",
		Description: "full-resolution symbols tagged with imbalance, per disparity sign",
		Format:      FormatC,
		Build:       fixed(Disparity),
	},
	{
		Name:        "control",
		Description: "doubled control symbols",
		Format:      FormatC,
		Build:       fixed(Control),
	},
	{
		Name:        "zerobalance",
		Description: "data bytes whose symbol has zero imbalance",
		Format:      FormatHex,
		Build:       fixed(ZeroBalance),
	},
	{
		Name:        "mono",
		Description: "balanced monochrome pixel pattern constants",
		Format:      FormatDefine,
		Build:       fixed(Mono),
	},
	{
		Name:        "monopair",
		Description: "two-pixel patterns per mono colour and channel",
		Format:      FormatC,
		Build:       fixed(MonoPixelPair),
	},
	{
		Name:        "differential",
		Description: "8-pixel bitmap to pseudo-differential pairs",
		Format:      FormatC,
		Build:       fixed(Differential),
	},
	{
		Name:        "palette",
		Description: "R, G, B double-pixel symbols per palette colour",
		Format:      FormatC,
		Build: func(ctx context.Context, opts Options) (*Table, error) {
			p := opts.Palette
			if len(p.Colors) == 0 {
				p = palette.LoresRGB
			}
			return Palette(ctx, p)
		},
	},
}

// Generators returns the available generators in display order.
func Generators() []Generator {
	out := make([]Generator, len(generators))
	copy(out, generators)
	return out
}

// Lookup finds a generator by name.
func Lookup(name string) (Generator, error) {
	for _, g := range generators {
		if g.Name == name {
			return g, nil
		}
	}
	return Generator{}, errors.NotFound(errors.PhaseGenerate, "table", name)
}

// Generate looks up and runs the named generator, applying opts.Name.
// opts.Name must be a valid C identifier.
func Generate(ctx context.Context, name string, opts Options) (*Table, error) {
	g, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if opts.Name != "" && !cident.Valid(opts.Name) {
		return nil, errors.InvalidInput(errors.PhaseGenerate,
			fmt.Sprintf("table name %q is not a C identifier", opts.Name))
	}

	start := time.Now()
	t, err := g.Build(ctx, opts)
	if err != nil {
		Logger().Error("table generation failed", zap.String("table", name), zap.Error(err))
		return nil, err
	}
	if opts.Name != "" {
		t.Name = opts.Name
	}

	Logger().Debug("table generated",
		zap.String("table", name),
		zap.String("identifier", t.Name),
		zap.Int("words", t.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return t, nil
}
