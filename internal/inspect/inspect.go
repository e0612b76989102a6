// Package inspect builds per-character reports over a text: offsets,
// unit widths, cluster kinds, code points and terminal columns for
// every logical character, plus whole-text counts.
package inspect

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/utf16text"
	"github.com/dshills/utf16text/cluster"
)

// Char describes one logical character.
type Char struct {
	// Index is the logical character index.
	Index int

	// Offset is the position of the first code unit.
	Offset int

	// Width is the number of code units spanned.
	Width int

	// Kind names the cluster shape.
	Kind cluster.Kind

	// Text is the UTF-8 rendering. Lone surrogates render as U+FFFD.
	Text string

	// Units holds the raw code units.
	Units []uint16

	// CodePoints holds the decoded code points. A lone surrogate keeps
	// its raw value so it stays visible in reports.
	CodePoints []rune

	// Columns is the terminal cell width of Text.
	Columns int
}

// Display returns Text in a form safe to print, quoting characters a
// terminal would garble, controls mostly.
func (c Char) Display() string {
	if c.Columns == 0 {
		return fmt.Sprintf("%q", c.Text)
	}
	return c.Text
}

// Report describes a whole text, one row per logical character.
type Report struct {
	// Source names where the text came from: a path, "-" for stdin, or
	// "flag" for command-line text.
	Source string

	Units      int
	Chars      int
	CodePoints int
	ASCII      bool

	Rows []Char
}

// Inspect walks every logical character of t and collects a report.
func Inspect(source string, t utf16text.Text) Report {
	sum := t.Summary()
	rep := Report{
		Source:     source,
		Units:      sum.Units,
		Chars:      sum.Chars,
		CodePoints: sum.CodePoints,
		ASCII:      sum.Flags&utf16text.FlagASCII != 0,
		Rows:       make([]Char, 0, sum.Chars),
	}

	for it := t.Iter(); it.Next(); {
		units := it.Units()
		text := it.Char()
		rep.Rows = append(rep.Rows, Char{
			Index:      it.Index(),
			Offset:     it.Offset(),
			Width:      it.Width(),
			Kind:       it.Kind(),
			Text:       text,
			Units:      units,
			CodePoints: codePoints(units),
			Columns:    uniseg.StringWidth(text),
		})
	}

	return rep
}

// codePoints decodes the code points of a single cluster. Units that do
// not pair keep their raw value.
func codePoints(units []uint16) []rune {
	cps := make([]rune, 0, 2)
	for pos := 0; pos < len(units); {
		w := cluster.CodePointWidth(units, pos)
		if w == 2 {
			cps = append(cps, cluster.DecodePair(units[pos], units[pos+1]))
		} else {
			cps = append(cps, rune(units[pos]))
		}
		pos += w
	}
	return cps
}
