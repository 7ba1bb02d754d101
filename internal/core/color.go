package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the garden renderer.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorGrassAlt
	ColorWeed
	ColorToughWeed
	ColorUnowned
	ColorPurchasable
	ColorSelected
	ColorPlayer
	ColorMoney
	ColorWarning
	ColorDanger
	ColorInfo
	ColorMuted
	ColorHighlight
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGrass:
		return "grass"
	case ColorGrassAlt:
		return "grass-alt"
	case ColorWeed:
		return "weed"
	case ColorToughWeed:
		return "tough-weed"
	case ColorUnowned:
		return "unowned"
	case ColorPurchasable:
		return "purchasable"
	case ColorSelected:
		return "selected"
	case ColorPlayer:
		return "player"
	case ColorMoney:
		return "money"
	case ColorWarning:
		return "warning"
	case ColorDanger:
		return "danger"
	case ColorInfo:
		return "info"
	case ColorMuted:
		return "muted"
	case ColorHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}
