package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// WriteTable renders r as an aligned table, one row per character,
// followed by a summary line.
func WriteTable(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tOFFSET\tWIDTH\tKIND\tCHAR\tUNITS\tCODEPOINTS\tCOLS")
	for _, c := range r.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%s\t%d\n",
			c.Index, c.Offset, c.Width, c.Kind, c.Display(),
			strings.Join(FormatUnits(c.Units), " "),
			strings.Join(FormatCodePoints(c.CodePoints), " "),
			c.Columns)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s: %d units, %d chars, %d codepoints, ascii=%v\n",
		r.Source, r.Units, r.Chars, r.CodePoints, r.ASCII)
	return err
}

// JSON renders r as a JSON document. Rows land under "chars"; units are
// uppercase hex strings and code points use the U+XXXX form.
func JSON(r Report, prettyPrint bool) []byte {
	doc := "{}"
	doc, _ = sjson.Set(doc, "source", r.Source)
	doc, _ = sjson.Set(doc, "unit_count", r.Units)
	doc, _ = sjson.Set(doc, "char_count", r.Chars)
	doc, _ = sjson.Set(doc, "code_point_count", r.CodePoints)
	doc, _ = sjson.Set(doc, "ascii", r.ASCII)
	doc, _ = sjson.Set(doc, "chars", []interface{}{})

	for _, c := range r.Rows {
		row := "{}"
		row, _ = sjson.Set(row, "index", c.Index)
		row, _ = sjson.Set(row, "offset", c.Offset)
		row, _ = sjson.Set(row, "width", c.Width)
		row, _ = sjson.Set(row, "kind", c.Kind.String())
		row, _ = sjson.Set(row, "text", c.Text)
		row, _ = sjson.Set(row, "units", FormatUnits(c.Units))
		row, _ = sjson.Set(row, "code_points", FormatCodePoints(c.CodePoints))
		row, _ = sjson.Set(row, "columns", c.Columns)
		doc, _ = sjson.SetRaw(doc, "chars.-1", row)
	}

	if prettyPrint {
		return pretty.Pretty([]byte(doc))
	}
	return []byte(doc)
}

// FormatUnits renders each code unit as four uppercase hex digits.
func FormatUnits(units []uint16) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = fmt.Sprintf("%04X", u)
	}
	return out
}

// FormatCodePoints renders each code point in the U+XXXX form.
func FormatCodePoints(cps []rune) []string {
	out := make([]string, len(cps))
	for i, cp := range cps {
		out[i] = fmt.Sprintf("U+%04X", cp)
	}
	return out
}
