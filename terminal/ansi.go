// @lixen: #focus{sys[term,ansi]}
package terminal

// CSI fragments. Parameterised sequences are built as csi + params + final byte.
const (
	csi = "\x1b["

	// Private-mode sequences (no parameters)
	csiCursorShow     = "\x1b[?25h"
	csiCursorHide     = "\x1b[?25l"
	csiCursorBlinkOn  = "\x1b[?12h"
	csiCursorBlinkOff = "\x1b[?12l"
	csiAltScreenEnter = "\x1b[?1049h"
	csiAltScreenExit  = "\x1b[?1049l"

	csiSavePosition    = "\x1b[s"
	csiRestorePosition = "\x1b[u"
	csiSGR0            = "\x1b[0m"

	// Extended color prefixes, followed by params and 'm'
	sgrFgExtended = 38
	sgrBgExtended = 48
	sgrPalette    = 5
	sgrRGB        = 2
)

// appendInt appends n in ASCII decimal without leading zeros
// Terminal parameters are 0-65535; small values take the fast paths
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// appendCSI appends ESC [ n final
func appendCSI(dst []byte, n uint16, final byte) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, int(n))
	return append(dst, final)
}

// appendCSI2 appends ESC [ a ; b final
func appendCSI2(dst []byte, a, b uint16, final byte) []byte {
	dst = append(dst, csi...)
	dst = appendInt(dst, int(a))
	dst = append(dst, ';')
	dst = appendInt(dst, int(b))
	return append(dst, final)
}

// appendSGR wraps already-rendered SGR params: ESC [ params m
func appendSGR(dst []byte, params func([]byte) []byte) []byte {
	dst = append(dst, csi...)
	dst = params(dst)
	return append(dst, 'm')
}
