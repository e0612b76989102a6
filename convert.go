package utf16text

import "github.com/dshills/utf16text/cluster"

// CodePoints returns the codepoints of the text in order, surrogate
// pairs combined. Iteration stops at the first zero codepoint, so a
// text containing U+0000 truncates there; Units is the lossless view.
// It also stops at a trailing high surrogate, which decodes to
// NoCodePoint.
func (t Text) CodePoints() []rune {
	cps := make([]rune, 0, t.sum.CodePoints)
	for pos := 0; pos < len(t.units); pos += cluster.CodePointWidth(t.units, pos) {
		cp := t.codePointAt(pos)
		if cp == 0 || cp == NoCodePoint {
			break
		}
		cps = append(cps, cp)
	}
	return cps
}

// Bytes returns the big-endian byte serialization of the units.
// FromBytes reconstructs the text exactly.
func (t Text) Bytes() []byte {
	b := make([]byte, 0, len(t.units)*2)
	for _, u := range t.units {
		b = append(b, byte(u>>8), byte(u))
	}
	return b
}

// Chars splits the text into logical characters, one string per
// character, clusters kept whole.
func (t Text) Chars() []string {
	out := make([]string, 0, t.sum.Chars)
	for it := t.Iter(); it.Next(); {
		out = append(out, it.Char())
	}
	return out
}

// Chars splits s into the logical characters of its UTF-16 encoding.
func Chars(s string) []string {
	return FromString(s).Chars()
}

// CodePoints returns the codepoints of the UTF-16 encoding of s, with
// the same early termination as Text.CodePoints.
func CodePoints(s string) []rune {
	return FromString(s).CodePoints()
}
