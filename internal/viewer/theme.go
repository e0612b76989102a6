package viewer

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/utf16text/cluster"
)

// Theme holds the viewer's color scheme.
type Theme struct {
	// Bar styles the title and status bars.
	Bar tcell.Style

	// Header styles the column header.
	Header tcell.Style

	// Selected styles the cursor row.
	Selected tcell.Style

	// Unit, Pair, Regional and Lone style rows by cluster kind.
	Unit     tcell.Style
	Pair     tcell.Style
	Regional tcell.Style
	Lone     tcell.Style
}

const defaultSeed = "#268bd2"

// NewTheme derives a color scheme from a seed color, a hex string like
// "#268bd2". Cluster kinds get hues rotated around the seed so each
// shape reads distinctly. An unparseable seed falls back to the
// default.
func NewTheme(seed string) Theme {
	base, err := colorful.Hex(seed)
	if err != nil {
		base, _ = colorful.Hex(defaultSeed)
	}

	h, c, l := base.Hcl()
	regional := colorful.Hcl(h+120, c, l).Clamped()
	lone := colorful.Hcl(h+240, c, l*0.8).Clamped()
	barBg := colorful.Hcl(h, c, l*0.4).Clamped()

	return Theme{
		Bar:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toTcell(barBg)),
		Header:   tcell.StyleDefault.Bold(true),
		Selected: tcell.StyleDefault.Reverse(true).Bold(true),
		Unit:     tcell.StyleDefault,
		Pair:     tcell.StyleDefault.Foreground(toTcell(base)),
		Regional: tcell.StyleDefault.Foreground(toTcell(regional)),
		Lone:     tcell.StyleDefault.Foreground(toTcell(lone)).Bold(true),
	}
}

// PaletteTheme returns a scheme built from the standard terminal
// colors, for screens without RGB support.
func PaletteTheme() Theme {
	return Theme{
		Bar:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Header:   tcell.StyleDefault.Bold(true),
		Selected: tcell.StyleDefault.Reverse(true).Bold(true),
		Unit:     tcell.StyleDefault,
		Pair:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Regional: tcell.StyleDefault.Foreground(tcell.ColorTeal),
		Lone:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
}

// kindStyle returns the row style for a cluster kind.
func (t Theme) kindStyle(k cluster.Kind) tcell.Style {
	switch k {
	case cluster.KindSurrogatePair:
		return t.Pair
	case cluster.KindRegionalPair:
		return t.Regional
	case cluster.KindLoneSurrogate:
		return t.Lone
	default:
		return t.Unit
	}
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
