// Package viewer is an interactive terminal browser for the logical
// characters of a text. Each row is one character; the cursor selects a
// row and the detail line expands its units and code points.
package viewer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/utf16text/internal/inspect"
)

// Viewer displays one inspection report and tracks a cursor over its
// rows.
type Viewer struct {
	screen tcell.Screen
	theme  Theme
	report inspect.Report

	cursor int
	top    int
}

// New creates a viewer for the report on screen. The screen is
// initialized by Run.
func New(screen tcell.Screen, report inspect.Report, theme Theme) *Viewer {
	return &Viewer{
		screen: screen,
		theme:  theme,
		report: report,
	}
}

// Run initializes the screen and processes events until the user
// quits with q, Escape or Ctrl-C.
func (v *Viewer) Run() error {
	if err := v.screen.Init(); err != nil {
		return err
	}
	defer v.screen.Fini()

	if v.screen.Colors() < 256 {
		v.theme = PaletteTheme()
	}
	v.screen.HideCursor()

	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes one key event. It returns false when the viewer
// should exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(-1)
	case tcell.KeyDown:
		v.move(1)
	case tcell.KeyHome:
		v.cursor = 0
	case tcell.KeyEnd:
		v.moveEnd()
	case tcell.KeyPgUp:
		v.move(-v.pageSize())
	case tcell.KeyPgDn:
		v.move(v.pageSize())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.move(-1)
		case 'j':
			v.move(1)
		case 'g':
			v.cursor = 0
		case 'G':
			v.moveEnd()
		}
	}
	return true
}

// move shifts the cursor by delta, clamped to the rows.
func (v *Viewer) move(delta int) {
	n := len(v.report.Rows)
	if n == 0 {
		v.cursor = 0
		return
	}
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= n {
		v.cursor = n - 1
	}
}

// moveEnd jumps to the last row.
func (v *Viewer) moveEnd() {
	if n := len(v.report.Rows); n > 0 {
		v.cursor = n - 1
	}
}

// pageSize returns the number of visible rows.
func (v *Viewer) pageSize() int {
	_, h := v.screen.Size()
	if n := h - 4; n > 0 {
		return n
	}
	return 1
}

// scroll keeps the cursor inside the visible window.
func (v *Viewer) scroll(visible int) {
	if v.cursor < v.top {
		v.top = v.cursor
	}
	if v.cursor >= v.top+visible {
		v.top = v.cursor - visible + 1
	}
	if v.top < 0 {
		v.top = 0
	}
}

// draw renders the title bar, column header, rows, detail line and
// status bar.
func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	visible := v.pageSize()
	v.scroll(visible)

	v.drawBar(0, w, fmt.Sprintf(" textscope  %s", v.report.Source))
	drawString(v.screen, 0, 1, headerLine(), v.theme.Header)

	for i := 0; i < visible; i++ {
		idx := v.top + i
		if idx >= len(v.report.Rows) {
			break
		}
		v.drawRow(2+i, v.report.Rows[idx], idx == v.cursor)
	}

	if h >= 4 {
		drawString(v.screen, 0, h-2, v.detailLine(), v.theme.Header)
		v.drawBar(h-1, w, v.statusLine())
	}

	v.screen.Show()
}

// drawBar fills a row with the bar style and writes text over it.
func (v *Viewer) drawBar(y, w int, text string) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.theme.Bar)
	}
	drawString(v.screen, 0, y, text, v.theme.Bar)
}

// drawRow renders one character row.
func (v *Viewer) drawRow(y int, c inspect.Char, selected bool) {
	style := v.theme.kindStyle(c.Kind)
	if selected {
		style = v.theme.Selected
	}
	drawString(v.screen, 0, y, rowLine(c), style)
}

// headerLine returns the column header, aligned with rowLine.
func headerLine() string {
	return fmt.Sprintf("%5s  %6s  %5s  %-15s  %-6s  %-20s  %s",
		"INDEX", "OFFSET", "WIDTH", "KIND", "CHAR", "UNITS", "CODEPOINTS")
}

// rowLine formats one character row. The char column pads by display
// columns, not runes, so wide characters keep the table aligned.
func rowLine(c inspect.Char) string {
	return fmt.Sprintf("%5d  %6d  %5d  %-15s  %s  %-20s  %s",
		c.Index, c.Offset, c.Width, c.Kind,
		padRight(c.Display(), 6),
		strings.Join(inspect.FormatUnits(c.Units), " "),
		strings.Join(inspect.FormatCodePoints(c.CodePoints), " "))
}

// detailLine describes the selected character.
func (v *Viewer) detailLine() string {
	if len(v.report.Rows) == 0 {
		return " empty text"
	}
	c := v.report.Rows[v.cursor]
	return fmt.Sprintf(" %s  %s  units %s  %s  %d columns",
		c.Display(),
		strings.Join(inspect.FormatCodePoints(c.CodePoints), " "),
		strings.Join(inspect.FormatUnits(c.Units), " "),
		c.Kind, c.Columns)
}

// statusLine summarizes position and keys.
func (v *Viewer) statusLine() string {
	if len(v.report.Rows) == 0 {
		return fmt.Sprintf(" %s  0 chars  q quit", v.report.Source)
	}
	c := v.report.Rows[v.cursor]
	return fmt.Sprintf(" char %d/%d  unit %d/%d  %d codepoints  j/k move  g/G jump  q quit",
		v.cursor+1, v.report.Chars, c.Offset, v.report.Units, v.report.CodePoints)
}

// drawString writes text starting at x, advancing by grapheme cluster
// so wide and combining characters occupy their real cells. It returns
// the next free column.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		if len(runes) == 0 {
			continue
		}
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		s.SetContent(x, y, runes[0], comb, style)
		x += uniseg.StringWidth(gr.Str())
	}
	return x
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
