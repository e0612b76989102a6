package utf16text

import "github.com/dshills/utf16text/cluster"

// CharIterator iterates over the logical characters of a text.
type CharIterator struct {
	text    Text
	pos     int
	idx     int
	width   int
	started bool
}

// Iter returns an iterator over all logical characters in the text.
func (t Text) Iter() *CharIterator {
	return &CharIterator{text: t}
}

// Next advances to the next character.
// Returns true if there is a character, false if iteration is complete.
func (it *CharIterator) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.pos += it.width
		it.idx++
	}

	if it.pos >= len(it.text.units) {
		return false
	}
	it.width = cluster.Width(it.text.units, it.pos)
	return true
}

// Char returns the current character as a string.
func (it *CharIterator) Char() string {
	return unitsToString(it.text.units[it.pos : it.pos+it.width])
}

// Units returns a copy of the current character's code units.
func (it *CharIterator) Units() []uint16 {
	u := make([]uint16, it.width)
	copy(u, it.text.units[it.pos:it.pos+it.width])
	return u
}

// Index returns the character index of the current character.
func (it *CharIterator) Index() int {
	return it.idx
}

// Offset returns the unit offset of the current character.
func (it *CharIterator) Offset() int {
	return it.pos
}

// Width returns the unit width of the current character.
func (it *CharIterator) Width() int {
	return it.width
}

// Kind classifies the current character's cluster shape.
func (it *CharIterator) Kind() cluster.Kind {
	k, _ := cluster.KindAt(it.text.units, it.pos)
	return k
}
