package terminal

// Style is the underline and reverse-video state of text.
// It encodes as one SGR escape carrying both decisions, e.g. ESC[4;27m.
type Style struct {
	Underline bool
	Negative  bool
}

func (s Style) Append(dst []byte) []byte {
	return appendSGR(dst, func(p []byte) []byte {
		if s.Underline {
			p = appendInt(p, int(Underline))
		} else {
			p = appendInt(p, int(NoUnderline))
		}
		p = append(p, ';')
		if s.Negative {
			return appendInt(p, int(Negative))
		}
		return appendInt(p, int(Positive))
	})
}

func (s Style) String() string { return string(s.Append(nil)) }

// FontSpec is a complete text rendition: style, foreground and background.
// Nil colors resolve to the terminal default.
//
// It encodes as three separate SGR escapes (style, foreground, background) so that a
// partially written FontSpec still leaves the terminal on a sequence boundary.
type FontSpec struct {
	Style      Style
	Foreground ColorSpec
	Background ColorSpec
}

func (f FontSpec) Append(dst []byte) []byte {
	for _, o := range f.Escapes() {
		dst = o.Append(dst)
	}
	return dst
}

func (f FontSpec) String() string { return string(f.Append(nil)) }

// Escapes returns the three component escapes in write order
func (f FontSpec) Escapes() [3]Output {
	return [3]Output{f.Style, foreground{f.Foreground}, background{f.Background}}
}

func appendFg(dst []byte, c ColorSpec) []byte {
	if c == nil {
		return appendInt(dst, int(ForegroundDefault))
	}
	return c.appendFg(dst)
}

func appendBg(dst []byte, c ColorSpec) []byte {
	if c == nil {
		return appendInt(dst, int(BackgroundDefault))
	}
	return c.appendBg(dst)
}

// foreground and background wrap any ColorSpec as a standalone SGR escape
type foreground struct{ c ColorSpec }
type background struct{ c ColorSpec }

func (f foreground) Append(dst []byte) []byte {
	return appendSGR(dst, func(p []byte) []byte { return appendFg(p, f.c) })
}

func (b background) Append(dst []byte) []byte {
	return appendSGR(dst, func(p []byte) []byte { return appendBg(p, b.c) })
}

// FgColor returns an escape setting the foreground to any ColorSpec
func FgColor(c ColorSpec) Output { return foreground{c} }

// BgColor returns an escape setting the background to any ColorSpec
func BgColor(c ColorSpec) Output { return background{c} }
