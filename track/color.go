package track

// Color is one cell color in a rendered alignment track.
type Color uint8

const (
	// Base-identity colors, used for mismatch and insertion cells and for
	// the reference row.
	Green Color = iota // A
	Red                // T
	Gold               // G
	Blue               // C
	// Gray marks match cells and is the fallback for letters outside ACGT.
	Gray
	// White marks deletion cells and row padding.
	White
	// Purple is the background of insertion length labels in truncated mode.
	Purple
)

var colorNames = [...]string{"green", "red", "gold", "blue", "gray", "white", "purple"}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// BaseColor returns the identity color of a base letter.  Letters outside
// ACGT (ambiguity codes, 'N') fall back to Gray.
func BaseColor(base byte) Color {
	switch base {
	case 'A':
		return Green
	case 'T':
		return Red
	case 'G':
		return Gold
	case 'C':
		return Blue
	}
	return Gray
}
