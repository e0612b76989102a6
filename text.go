package utf16text

import (
	"unicode/utf16"

	"github.com/dshills/utf16text/cluster"
)

// Sentinel results. Operations on Text never panic or return errors;
// absence is signaled with these values, and slicing bounds clamp.
const (
	// NotFound is returned by index translation and search when the
	// input resolves to no position.
	NotFound = -1

	// NoCodePoint is returned by CharCodeAt when the index resolves to
	// no codepoint.
	NoCodePoint rune = -1
)

// Text wraps an immutable UTF-16 code-unit sequence and indexes it by
// logical character, so surrogate pairs and regional-indicator pairs
// are never split. Operations return new Text values; the original is
// never modified, which makes concurrent reads safe without
// synchronization. The zero value is the empty text.
type Text struct {
	units []uint16
	sum   Summary
}

// wrap adopts units without copying. Callers hand over ownership; the
// slice must not be mutated afterwards.
func wrap(units []uint16) Text {
	return Text{units: units, sum: ComputeSummary(units)}
}

// FromUnits creates a text from a raw code-unit sequence, stored
// verbatim. The slice is copied.
func FromUnits(units []uint16) Text {
	u := make([]uint16, len(units))
	copy(u, units)
	return wrap(u)
}

// FromString creates a text from the UTF-16 encoding of s.
func FromString(s string) Text {
	return wrap(utf16.Encode([]rune(s)))
}

// FromCodePoint creates a text from a single codepoint. Codepoints
// above 0xFFFF are stored as a surrogate pair; every other value is
// stored as one unit verbatim, surrogate-range values included.
func FromCodePoint(cp rune) Text {
	return wrap(cluster.AppendCodePoint(make([]uint16, 0, 2), cp))
}

// FromCodePoints creates a text from a sequence of codepoints, each
// encoded per FromCodePoint and concatenated in order.
func FromCodePoints(cps []rune) Text {
	units := make([]uint16, 0, len(cps))
	for _, cp := range cps {
		units = cluster.AppendCodePoint(units, cp)
	}
	return wrap(units)
}

// FromBytes creates a text from big-endian byte pairs. Callers are
// expected to pass an even number of bytes; an odd trailing byte
// becomes the high byte of a final unit rather than being rejected.
func FromBytes(b []byte) Text {
	units := make([]uint16, 0, (len(b)+1)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	if len(b)%2 != 0 {
		units = append(units, uint16(b[len(b)-1])<<8)
	}
	return wrap(units)
}

// Len returns the number of logical characters.
func (t Text) Len() int {
	return t.sum.Chars
}

// UnitLen returns the number of code units.
func (t Text) UnitLen() int {
	return len(t.units)
}

// IsEmpty returns true if the text contains no units.
func (t Text) IsEmpty() bool {
	return len(t.units) == 0
}

// Summary returns the metrics computed at construction.
func (t Text) Summary() Summary {
	return t.sum
}

// Units returns a copy of the underlying code units.
func (t Text) Units() []uint16 {
	u := make([]uint16, len(t.units))
	copy(u, t.units)
	return u
}

// String returns the text decoded to UTF-8. Unpaired surrogate units
// decode to U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t.units))
}

// Equals returns true if two texts contain the same unit sequence.
func (t Text) Equals(other Text) bool {
	if len(t.units) != len(other.units) {
		return false
	}
	for i := range t.units {
		if t.units[i] != other.units[i] {
			return false
		}
	}
	return true
}

// Concat concatenates two texts. Returns a new text; originals are
// unchanged. Units that were unpaired at the boundary may join into a
// cluster; the metrics are recomputed over the result.
func (t Text) Concat(other Text) Text {
	if t.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return t
	}

	units := make([]uint16, 0, len(t.units)+len(other.units))
	units = append(units, t.units...)
	units = append(units, other.units...)
	return wrap(units)
}

// hasPairs reports whether index translation needs the scanning path.
func (t Text) hasPairs() bool {
	return t.sum.Flags&FlagHasPairs != 0
}

// unitsToString decodes a unit sequence to UTF-8.
func unitsToString(units []uint16) string {
	return string(utf16.Decode(units))
}
