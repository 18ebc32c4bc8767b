package terminal

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle(t *testing.T) {
	assert.Equal(t, "\x1b[24;27m", Style{}.String())
	assert.Equal(t, "\x1b[4;27m", Style{Underline: true}.String())
	assert.Equal(t, "\x1b[24;7m", Style{Negative: true}.String())
	assert.Equal(t, "\x1b[4;7m", Style{Underline: true, Negative: true}.String())
}

func TestFontSpecThreeEscapes(t *testing.T) {
	f := FontSpec{
		Style:      Style{Underline: true, Negative: false},
		Foreground: PresetColorSpec{Color: Red, Bright: true},
		Background: nil,
	}

	parts := f.Escapes()
	want := []string{"\x1b[4;27m", "\x1b[91m", "\x1b[49m"}
	require.Len(t, parts, len(want))
	for i, p := range parts {
		got := string(Encode(p))
		assert.Equal(t, want[i], got)
		assert.Empty(t, ansi.Strip(got), "escape %d should stand alone", i)
	}

	assert.Equal(t, "\x1b[4;27m\x1b[91m\x1b[49m", f.String())
}

func TestFontSpecExtendedColors(t *testing.T) {
	f := FontSpec{
		Foreground: ColorTable(208),
		Background: RGB{10, 20, 30},
	}
	assert.Equal(t, "\x1b[24;27m\x1b[38;5;208m\x1b[48;2;10;20;30m", f.String())
}

func TestFontSpecPartialWriteStaysOnBoundary(t *testing.T) {
	full := FontSpec{Style: Style{Negative: true}, Foreground: Green, Background: Blue}
	parts := full.Escapes()

	// Any prefix made of whole parts is a sequence of complete escapes
	var prefix []byte
	for _, p := range parts {
		prefix = p.Append(prefix)
		assert.Empty(t, ansi.Strip(string(prefix)))
	}
}

func TestBrightRenditionWithBrightPreset(t *testing.T) {
	// Both are applied independently: SGR 1 then the 90-97 range
	var out []byte
	out = Bright.Append(out)
	out = PresetColorSpec{Color: Yellow, Bright: true}.Append(out)
	assert.Equal(t, "\x1b[1m\x1b[93m", string(out))
}
