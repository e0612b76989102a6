package utf16text

import "github.com/dshills/utf16text/cluster"

// Summary holds metrics for a unit sequence, computed once at
// construction and served by the cheap accessors on Text.
type Summary struct {
	// Units is the code-unit count.
	Units int

	// Chars is the logical character count. Surrogate pairs and
	// regional-indicator pairs count once.
	Chars int

	// CodePoints is the codepoint count. Surrogate pairs count once,
	// regional-indicator pairs twice.
	CodePoints int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates every unit is below 0x80.
	FlagASCII TextFlags = 1 << iota

	// FlagHasPairs indicates at least one surrogate pair is present.
	// Index translation is the identity when this is unset.
	FlagHasPairs

	// FlagHasRegionalPairs indicates at least one regional-indicator
	// pair is present, so character and codepoint counts differ.
	FlagHasRegionalPairs
)

// ComputeSummary calculates metrics for a unit sequence in one pass.
func ComputeSummary(units []uint16) Summary {
	sum := Summary{Units: len(units), Flags: FlagASCII}

	for pos := 0; pos < len(units); {
		w := cluster.Width(units, pos)
		switch w {
		case 4:
			sum.Flags |= FlagHasPairs | FlagHasRegionalPairs
			sum.Flags &^= FlagASCII
			sum.CodePoints += 2
		case 2:
			sum.Flags |= FlagHasPairs
			sum.Flags &^= FlagASCII
			sum.CodePoints++
		default:
			if units[pos] > 127 {
				sum.Flags &^= FlagASCII
			}
			sum.CodePoints++
		}
		sum.Chars++
		pos += w
	}

	return sum
}
