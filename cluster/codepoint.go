package cluster

// CodePointWidth returns the number of code units consumed at pos when
// only surrogate pairs combine: 2 for a pair, 1 for anything else, 0
// for an out-of-range position. Regional-indicator pairs are two
// positions in this mode.
func CodePointWidth(units []uint16, pos int) int {
	if pos < 0 || pos >= len(units) {
		return 0
	}
	if pos+1 < len(units) && IsSurrogatePair(units[pos], units[pos+1]) {
		return 2
	}
	return 1
}

// CodePointCount returns the number of codepoint positions in units.
func CodePointCount(units []uint16) int {
	n := 0
	for pos := 0; pos < len(units); pos += CodePointWidth(units, pos) {
		n++
	}
	return n
}

// DecodePair combines a high and low surrogate into the codepoint they
// encode. The inputs are not validated; a caller that needs a
// well-formed pair checks IsSurrogatePair first.
func DecodePair(hi, lo uint16) rune {
	return (rune(hi)-surr1)*0x400 + (rune(lo) - surr2) + surrSelf
}

// AppendCodePoint appends the UTF-16 encoding of cp to units and
// returns the extended slice. Codepoints above 0xFFFF become a
// surrogate pair; every other value is stored as one unit verbatim,
// surrogate-range values included.
func AppendCodePoint(units []uint16, cp rune) []uint16 {
	if cp >= surrSelf {
		return append(units,
			uint16(surr1+((cp-surrSelf)>>10)),
			uint16(surr2+((cp-surrSelf)&0x3ff)),
		)
	}
	return append(units, uint16(cp))
}
