package grid

// Color is a palette color for one cell channel. The zero value is Black.
// Named colors map to fixed xterm-256 indices; Xterm passes an arbitrary
// palette index through unchanged.
type Color struct {
	xterm bool
	index uint8
	name  colorName
}

type colorName uint8

const (
	colorBlack colorName = iota
	colorWhite
	colorGrey
	colorDarkGrey
	colorLightGrey
	colorRed
	colorGreen
	colorBlue
	colorCyan
	colorYellow
	colorMagenta
)

// Named palette. The codes are a wire-level contract; changing one changes
// the bytes every program emits.
var (
	Black     = Color{name: colorBlack}
	White     = Color{name: colorWhite}
	Grey      = Color{name: colorGrey}
	DarkGrey  = Color{name: colorDarkGrey}
	LightGrey = Color{name: colorLightGrey}
	Red       = Color{name: colorRed}
	Green     = Color{name: colorGreen}
	Blue      = Color{name: colorBlue}
	Cyan      = Color{name: colorCyan}
	Yellow    = Color{name: colorYellow}
	Magenta   = Color{name: colorMagenta}
)

// Xterm returns a color addressing palette index n directly
func Xterm(n uint8) Color {
	return Color{xterm: true, index: n}
}

var namedCodes = [...]uint8{
	colorBlack:     16,
	colorWhite:     231,
	colorGrey:      244,
	colorDarkGrey:  238,
	colorLightGrey: 250,
	colorRed:       196,
	colorGreen:     46,
	colorBlue:      21,
	colorCyan:      51,
	colorYellow:    226,
	colorMagenta:   201,
}

// Code returns the xterm-256 palette index for the color. Total: every
// color resolves to exactly one code.
func (c Color) Code() uint8 {
	if c.xterm {
		return c.index
	}
	return namedCodes[c.name]
}

func (c Color) String() string {
	if c.xterm {
		return "Xterm"
	}
	switch c.name {
	case colorBlack:
		return "Black"
	case colorWhite:
		return "White"
	case colorGrey:
		return "Grey"
	case colorDarkGrey:
		return "DarkGrey"
	case colorLightGrey:
		return "LightGrey"
	case colorRed:
		return "Red"
	case colorGreen:
		return "Green"
	case colorBlue:
		return "Blue"
	case colorCyan:
		return "Cyan"
	case colorYellow:
		return "Yellow"
	case colorMagenta:
		return "Magenta"
	}
	return "Unknown"
}
