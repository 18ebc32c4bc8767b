// @lixen: #focus{sys[term,ansi,sgr]}
package terminal

// Rendition is a single-code SGR escape; the constant value is the SGR code
type Rendition uint8

const (
	Reset       Rendition = 0
	Bright      Rendition = 1
	Underline   Rendition = 4
	Negative    Rendition = 7
	NoUnderline Rendition = 24
	Positive    Rendition = 27
)

// Normal foreground 30-37, default 39
const (
	ForegroundBlack Rendition = 30 + iota
	ForegroundRed
	ForegroundGreen
	ForegroundYellow
	ForegroundBlue
	ForegroundMagenta
	ForegroundCyan
	ForegroundWhite
	_
	ForegroundDefault
)

// Normal background 40-47, default 49
const (
	BackgroundBlack Rendition = 40 + iota
	BackgroundRed
	BackgroundGreen
	BackgroundYellow
	BackgroundBlue
	BackgroundMagenta
	BackgroundCyan
	BackgroundWhite
	_
	BackgroundDefault
)

// Bright foreground 90-97
const (
	BrightForegroundBlack Rendition = 90 + iota
	BrightForegroundRed
	BrightForegroundGreen
	BrightForegroundYellow
	BrightForegroundBlue
	BrightForegroundMagenta
	BrightForegroundCyan
	BrightForegroundWhite
)

// Bright background 100-107
const (
	BrightBackgroundBlack Rendition = 100 + iota
	BrightBackgroundRed
	BrightBackgroundGreen
	BrightBackgroundYellow
	BrightBackgroundBlue
	BrightBackgroundMagenta
	BrightBackgroundCyan
	BrightBackgroundWhite
)

func (r Rendition) Append(dst []byte) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, int(r))
	return append(dst, 'm')
}

func (r Rendition) String() string { return string(r.Append(nil)) }

// Foreground sets an extended (palette or RGB) foreground color: ESC[38;...m
type Foreground struct {
	Color ExtendedColor
}

// Background sets an extended (palette or RGB) background color: ESC[48;...m
type Background struct {
	Color ExtendedColor
}

func (f Foreground) Append(dst []byte) []byte {
	if f.Color == nil {
		return ForegroundDefault.Append(dst)
	}
	return appendSGR(dst, func(b []byte) []byte {
		return f.Color.appendParams(appendInt(b, sgrFgExtended))
	})
}

func (b Background) Append(dst []byte) []byte {
	if b.Color == nil {
		return BackgroundDefault.Append(dst)
	}
	return appendSGR(dst, func(p []byte) []byte {
		return b.Color.appendParams(appendInt(p, sgrBgExtended))
	})
}

func (f Foreground) String() string { return string(f.Append(nil)) }
func (b Background) String() string { return string(b.Append(nil)) }
