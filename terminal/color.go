// @lixen: #focus{sys[term,color]}
package terminal

// ColorSpec is a color resolvable to either a foreground or a background SGR parameter list.
// Implemented by PresetColor, PresetColorSpec, ColorTable and RGB. A nil ColorSpec is the default color.
type ColorSpec interface {
	appendFg(dst []byte) []byte
	appendBg(dst []byte) []byte
}

// ExtendedColor is a color outside the 16 named presets, encoded through SGR 38/48
type ExtendedColor interface {
	ColorSpec
	Output
	// appendParams appends the sub-parameters following 38/48, including the leading ';'
	appendParams(dst []byte) []byte
}

// PresetColor is one of the eight named ANSI colors, or the terminal default
type PresetColor uint8

const (
	DefaultColor PresetColor = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var presetNames = [...]string{
	DefaultColor: "default",
	Black:        "black",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	White:        "white",
}

// Name returns the lowercase color name
func (c PresetColor) Name() string {
	if int(c) >= len(presetNames) {
		return "invalid"
	}
	return presetNames[c]
}

// PresetColorByName resolves a lowercase color name
func PresetColorByName(name string) (PresetColor, bool) {
	for i, n := range presetNames {
		if n == name {
			return PresetColor(i), true
		}
	}
	return DefaultColor, false
}

// code maps a preset to its SGR code given the range bases for normal, bright and default
func (c PresetColor) code(normal, bright, def int, isBright bool) int {
	if c == DefaultColor || c > White {
		return def
	}
	if isBright {
		return bright + int(c-Black)
	}
	return normal + int(c-Black)
}

func (c PresetColor) appendFg(dst []byte) []byte {
	return appendInt(dst, c.code(30, 90, 39, false))
}

func (c PresetColor) appendBg(dst []byte) []byte {
	return appendInt(dst, c.code(40, 100, 49, false))
}

// Append writes the preset as a normal-intensity foreground color
func (c PresetColor) Append(dst []byte) []byte {
	return appendSGR(dst, c.appendFg)
}

func (c PresetColor) String() string { return string(c.Append(nil)) }

// PresetColorSpec selects a preset in its normal (30-37/40-47) or bright (90-97/100-107) form.
// Bright here is a distinct code range, independent of the Bright (SGR 1) rendition.
type PresetColorSpec struct {
	Color  PresetColor
	Bright bool
}

func (p PresetColorSpec) appendFg(dst []byte) []byte {
	return appendInt(dst, p.Color.code(30, 90, 39, p.Bright))
}

func (p PresetColorSpec) appendBg(dst []byte) []byte {
	return appendInt(dst, p.Color.code(40, 100, 49, p.Bright))
}

// Append writes the preset as a foreground color
func (p PresetColorSpec) Append(dst []byte) []byte {
	return appendSGR(dst, p.appendFg)
}

func (p PresetColorSpec) String() string { return string(p.Append(nil)) }

// ColorTable is an index into the 256-color palette
type ColorTable uint8

func (c ColorTable) appendParams(dst []byte) []byte {
	dst = append(dst, ';')
	dst = appendInt(dst, sgrPalette)
	dst = append(dst, ';')
	return appendInt(dst, int(c))
}

func (c ColorTable) appendFg(dst []byte) []byte {
	return c.appendParams(appendInt(dst, sgrFgExtended))
}

func (c ColorTable) appendBg(dst []byte) []byte {
	return c.appendParams(appendInt(dst, sgrBgExtended))
}

// Append writes the palette index as a foreground color
func (c ColorTable) Append(dst []byte) []byte {
	return appendSGR(dst, c.appendFg)
}

func (c ColorTable) String() string { return string(c.Append(nil)) }

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

func (c RGB) appendParams(dst []byte) []byte {
	dst = append(dst, ';')
	dst = appendInt(dst, sgrRGB)
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.R))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.G))
	dst = append(dst, ';')
	return appendInt(dst, int(c.B))
}

func (c RGB) appendFg(dst []byte) []byte {
	return c.appendParams(appendInt(dst, sgrFgExtended))
}

func (c RGB) appendBg(dst []byte) []byte {
	return c.appendParams(appendInt(dst, sgrBgExtended))
}

// Append writes the color as a 24-bit foreground color
func (c RGB) Append(dst []byte) []byte {
	return appendSGR(dst, c.appendFg)
}

func (c RGB) String() string { return string(c.Append(nil)) }

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// cubeIndex maps 0-255 to the nearest cube level 0-5
func cubeIndex(v uint8) int {
	best := 0
	bestDist := abs(int(v) - cubeValues[0])
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ColorTable returns the nearest 256-color palette index.
// Near-gray colors are matched against the grayscale ramp (232-255) as well as the cube.
func (c RGB) ColorTable() ColorTable {
	r, g, b := int(c.R), int(c.G), int(c.B)
	cr, cg, cb := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cube := ColorTable(16 + 36*cr + 6*cg + cb)

	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))
	if maxDiff >= 10 {
		return cube
	}

	// Ramp covers levels 8..238; beyond it the cube corners are exact
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}
	step := min((gray-3)/10, 23)
	grayLevel := 8 + step*10
	grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)
	cubeDist := abs(r-cubeValues[cr]) + abs(g-cubeValues[cg]) + abs(b-cubeValues[cb])

	if grayDist < cubeDist {
		return ColorTable(grayscaleStart + step)
	}
	return cube
}
