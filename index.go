package utf16text

import "github.com/dshills/utf16text/cluster"

// FindByteIndex returns the code-unit offset at which the logical
// character charIdx begins, or NotFound when charIdx is out of range.
// Texts without surrogate pairs resolve on the identity fast path.
func (t Text) FindByteIndex(charIdx int) int {
	if charIdx < 0 || charIdx >= t.sum.Chars {
		return NotFound
	}
	if !t.hasPairs() {
		return charIdx
	}

	pos := 0
	for c := 0; c < charIdx; c++ {
		pos += cluster.Width(t.units, pos)
	}
	return pos
}

// FindCharIndex returns the index of the logical character whose span
// contains the code-unit offset byteIdx, or NotFound when byteIdx is
// out of range. An offset inside a cluster resolves to that cluster's
// character. Texts without surrogate pairs resolve on the identity
// fast path.
func (t Text) FindCharIndex(byteIdx int) int {
	if byteIdx < 0 || byteIdx >= len(t.units) {
		return NotFound
	}
	if !t.hasPairs() {
		return byteIdx
	}

	charIdx := 0
	for pos := 0; ; charIdx++ {
		pos += cluster.Width(t.units, pos)
		if byteIdx < pos {
			return charIdx
		}
	}
}

// findCodePointByteIndex translates a codepoint index to a unit offset.
// Only surrogate pairs combine in this space; a regional-indicator
// pair occupies two positions.
func (t Text) findCodePointByteIndex(cpIdx int) int {
	if cpIdx < 0 || cpIdx >= t.sum.CodePoints {
		return NotFound
	}
	if !t.hasPairs() {
		return cpIdx
	}

	pos := 0
	for c := 0; c < cpIdx; c++ {
		pos += cluster.CodePointWidth(t.units, pos)
	}
	return pos
}
