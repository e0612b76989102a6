package cluster

const (
	surr1    = 0xd800 // first high surrogate
	surr2    = 0xdc00 // first low surrogate
	surr3    = 0xe000 // first unit past the surrogate block
	surrSelf = 0x10000

	riLead    = 0xd83c // high unit shared by every regional-indicator symbol
	riTrailLo = 0xdde6 // low unit of U+1F1E6, regional indicator A
	riTrailHi = 0xddff // low unit of U+1F1FF, regional indicator Z
)

// MaxWidth is the widest recognized cluster in code units, reached by a
// regional-indicator pair.
const MaxWidth = 4

// IsHighSurrogate reports whether u is in the high surrogate range.
func IsHighSurrogate(u uint16) bool {
	return surr1 <= u && u < surr2
}

// IsLowSurrogate reports whether u is in the low surrogate range.
func IsLowSurrogate(u uint16) bool {
	return surr2 <= u && u < surr3
}

// IsSurrogate reports whether u is in either surrogate range.
func IsSurrogate(u uint16) bool {
	return surr1 <= u && u < surr3
}

// IsSurrogatePair reports whether hi followed by lo forms a surrogate pair.
func IsSurrogatePair(hi, lo uint16) bool {
	return IsHighSurrogate(hi) && IsLowSurrogate(lo)
}

// IsRegionalIndicator reports whether hi followed by lo encodes one
// regional-indicator symbol.
func IsRegionalIndicator(hi, lo uint16) bool {
	return hi == riLead && riTrailLo <= lo && lo <= riTrailHi
}

// Width returns the number of code units spanned by the cluster
// starting at pos: 4 for a regional-indicator pair, 2 for a surrogate
// pair, 1 for anything else. Out-of-range positions return 0.
//
// The regional-indicator pair is checked first; its leading symbol is
// itself a surrogate pair and would otherwise match as one.
func Width(units []uint16, pos int) int {
	if pos < 0 || pos >= len(units) {
		return 0
	}
	rest := units[pos:]
	if len(rest) >= 4 &&
		IsRegionalIndicator(rest[0], rest[1]) &&
		IsRegionalIndicator(rest[2], rest[3]) {
		return 4
	}
	if len(rest) >= 2 && IsSurrogatePair(rest[0], rest[1]) {
		return 2
	}
	return 1
}

// First returns the cluster starting at pos and its width. The returned
// slice aliases units; it is nil with width 0 when pos is out of range.
func First(units []uint16, pos int) ([]uint16, int) {
	w := Width(units, pos)
	if w == 0 {
		return nil, 0
	}
	return units[pos : pos+w], w
}

// Count returns the number of clusters in units. A scan advancing by
// Width visits every unit exactly once, so counts over a split sequence
// sum to the whole only when no cluster straddles the split.
func Count(units []uint16) int {
	n := 0
	for pos := 0; pos < len(units); pos += Width(units, pos) {
		n++
	}
	return n
}

// Kind identifies the shape of a cluster.
type Kind int

const (
	// KindUnit is a single code unit outside any recognized cluster.
	KindUnit Kind = iota

	// KindSurrogatePair is a high/low surrogate pair.
	KindSurrogatePair

	// KindRegionalPair is two consecutive regional-indicator symbols.
	KindRegionalPair

	// KindLoneSurrogate is a surrogate unit with no usable partner.
	KindLoneSurrogate
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindSurrogatePair:
		return "surrogate-pair"
	case KindRegionalPair:
		return "regional-pair"
	case KindLoneSurrogate:
		return "lone-surrogate"
	default:
		return "unknown"
	}
}

// KindAt classifies the cluster starting at pos and reports its width.
// The width is 0 when pos is out of range; the kind is KindUnit then.
func KindAt(units []uint16, pos int) (Kind, int) {
	switch w := Width(units, pos); w {
	case 4:
		return KindRegionalPair, w
	case 2:
		return KindSurrogatePair, w
	case 1:
		if IsSurrogate(units[pos]) {
			return KindLoneSurrogate, w
		}
		return KindUnit, w
	default:
		return KindUnit, 0
	}
}
