package utf16text

import (
	"unicode/utf16"

	"github.com/dshills/utf16text/cluster"
)

// CharAt returns the logical character at index i, or the empty string
// when i is out of range. A character spanning a recognized cluster is
// returned whole; a lone surrogate decodes to U+FFFD.
func (t Text) CharAt(i int) string {
	pos := t.FindByteIndex(i)
	if pos == NotFound {
		return ""
	}
	w := cluster.Width(t.units, pos)
	return unitsToString(t.units[pos : pos+w])
}

// CharCodeAt returns the codepoint at index i, or NoCodePoint when i
// is out of range. The index counts surrogate pairs as one position
// and every other unit as one, so a regional-indicator pair occupies
// two positions here and never combines into a synthetic codepoint;
// its index space differs from CharAt's when regional pairs are
// present.
//
// A high surrogate combines with whatever unit follows it, valid low
// surrogate or not; a high surrogate at the end of text yields
// NoCodePoint.
func (t Text) CharCodeAt(i int) rune {
	pos := t.findCodePointByteIndex(i)
	if pos == NotFound {
		return NoCodePoint
	}
	return t.codePointAt(pos)
}

// codePointAt decodes the codepoint whose encoding starts at unit
// offset pos. The offset must be in range.
func (t Text) codePointAt(pos int) rune {
	u := t.units[pos]
	if cluster.IsHighSurrogate(u) {
		if pos+1 >= len(t.units) {
			return NoCodePoint
		}
		return cluster.DecodePair(u, t.units[pos+1])
	}
	return rune(u)
}

// IndexOf returns the character index of the first occurrence of
// needle at or after the optional start character index, or NotFound.
// A start index that does not translate to a unit offset, the empty
// text included, yields NotFound. A match beginning inside a cluster
// resolves to that cluster's character index.
func (t Text) IndexOf(needle string, start ...int) int {
	from := 0
	if len(start) > 0 {
		from = start[0]
	}

	pos := t.FindByteIndex(from)
	if pos == NotFound {
		return NotFound
	}

	found := indexOfUnits(t.units, utf16.Encode([]rune(needle)), pos)
	if found < 0 {
		return NotFound
	}
	return t.FindCharIndex(found)
}

// LastIndexOf returns the character index of the last occurrence of
// needle, or NotFound. The optional start character index bounds the
// search: a match must begin at or before its unit offset. Without it
// the whole text is searched.
func (t Text) LastIndexOf(needle string, start ...int) int {
	from := len(t.units)
	if len(start) > 0 {
		pos := t.FindByteIndex(start[0])
		if pos == NotFound {
			return NotFound
		}
		from = pos
	}

	found := lastIndexOfUnits(t.units, utf16.Encode([]rune(needle)), from)
	if found < 0 {
		return NotFound
	}
	return t.FindCharIndex(found)
}

// Slice returns the text between the start and optional end character
// indices. An out-of-range bound, negative values included, clamps to
// the end of text; an omitted end means end of text. A post-clamp end
// at or before start yields the empty text.
func (t Text) Slice(start int, end ...int) Text {
	s := t.FindByteIndex(start)
	if s == NotFound {
		s = len(t.units)
	}

	e := len(t.units)
	if len(end) > 0 {
		e = t.FindByteIndex(end[0])
		if e == NotFound {
			e = len(t.units)
		}
	}

	if e <= s {
		return Text{}
	}
	return wrap(t.units[s:e])
}

// Substr returns up to length logical characters starting at the start
// character index. A negative start counts back from the end of text
// before delegating to Slice.
func (t Text) Substr(start int, length ...int) Text {
	if start < 0 {
		start = t.Len() + start
	}
	if len(length) > 0 {
		return t.Slice(start, start+length[0])
	}
	return t.Slice(start)
}

// Substring is an alias for Substr.
func (t Text) Substring(start int, length ...int) Text {
	return t.Substr(start, length...)
}

// indexOfUnits returns the lowest unit offset >= from at which needle
// occurs in haystack, or -1. An empty needle matches at from.
func indexOfUnits(haystack, needle []uint16, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// lastIndexOfUnits returns the highest unit offset <= from at which
// needle occurs in haystack, or -1.
func lastIndexOfUnits(haystack, needle []uint16, from int) int {
	if from > len(haystack)-len(needle) {
		from = len(haystack) - len(needle)
	}
	for i := from; i >= 0; i-- {
		if matchAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

func matchAt(haystack, needle []uint16, pos int) bool {
	for j, u := range needle {
		if haystack[pos+j] != u {
			return false
		}
	}
	return true
}
