package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ansiterm/terminal"
)

const sampleText = "The quick brown fox jumps over the lazy dog"

type swatchOptions struct {
	fg, bg              string
	brightFg, brightBg  bool
	underline, negative bool
	palette             bool
}

func newSwatchCmd(a *app) *cobra.Command {
	var o swatchOptions
	cmd := &cobra.Command{
		Use:   "swatch [TEXT...]",
		Short: "Print text with a font built from flags",
		Long: `Prints TEXT using the given style and colors, then resets the rendition.
Colors are preset names (red, bright blue...), palette indices 0-255, or any
name or #rrggbb value tcell understands. --palette downsamples RGB colors to
the 256-color table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			font, err := o.font()
			if err != nil {
				return err
			}
			text := sampleText
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}
			return terminal.Run(func(t *terminal.Terminal) error {
				return t.Print(font, terminal.Text(text), terminal.Reset, terminal.Text("\n"))
			}, a.termOptions()...)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.fg, "fg", "", "foreground color")
	f.StringVar(&o.bg, "bg", "", "background color")
	f.BoolVar(&o.brightFg, "bright-fg", false, "use the bright variant of a preset foreground")
	f.BoolVar(&o.brightBg, "bright-bg", false, "use the bright variant of a preset background")
	f.BoolVar(&o.underline, "underline", false, "underline")
	f.BoolVar(&o.negative, "negative", false, "swap foreground and background")
	f.BoolVar(&o.palette, "palette", false, "map RGB colors to the 256-color table")
	return cmd
}

func (o swatchOptions) font() (terminal.FontSpec, error) {
	fg, err := parseColor(o.fg, o.brightFg, o.palette)
	if err != nil {
		return terminal.FontSpec{}, fmt.Errorf("--fg: %w", err)
	}
	bg, err := parseColor(o.bg, o.brightBg, o.palette)
	if err != nil {
		return terminal.FontSpec{}, fmt.Errorf("--bg: %w", err)
	}
	return terminal.FontSpec{
		Style:      terminal.Style{Underline: o.underline, Negative: o.negative},
		Foreground: fg,
		Background: bg,
	}, nil
}

// parseColor resolves a color argument. Empty is the terminal default (nil).
// A "bright " or "bright-" prefix is equivalent to bright=true for presets.
func parseColor(s string, bright, palette bool) (terminal.ColorSpec, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}

	for _, prefix := range []string{"bright-", "bright "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			if c, ok := terminal.PresetColorByName(rest); ok {
				return terminal.PresetColorSpec{Color: c, Bright: true}, nil
			}
		}
	}
	if c, ok := terminal.PresetColorByName(s); ok {
		return terminal.PresetColorSpec{Color: c, Bright: bright}, nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return terminal.ColorTable(n), nil
	}

	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	r, g, b := tc.RGB()
	rgb := terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	if palette {
		return rgb.ColorTable(), nil
	}
	return rgb, nil
}
