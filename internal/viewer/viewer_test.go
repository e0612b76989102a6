package viewer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/utf16text"
	"github.com/dshills/utf16text/internal/inspect"
)

func newTestViewer(t *testing.T, text string) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim Init error = %v", err)
	}
	sim.SetSize(100, 24)
	v := New(sim, inspect.Inspect("test", utf16text.FromString(text)), NewTheme(defaultSeed))
	return v, sim
}

// screenRow collects the runes of one screen row into a string.
func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[y*w+x].Runes {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestViewerDraw(t *testing.T) {
	v, sim := newTestViewer(t, "a\U0001F600\U0001F1FA\U0001F1F8")
	defer sim.Fini()

	v.draw()

	title := screenRow(sim, 0)
	if !strings.Contains(title, "textscope") || !strings.Contains(title, "test") {
		t.Errorf("title bar = %q, want name and source", title)
	}

	header := screenRow(sim, 1)
	for _, col := range []string{"INDEX", "KIND", "UNITS", "CODEPOINTS"} {
		if !strings.Contains(header, col) {
			t.Errorf("header %q missing column %q", header, col)
		}
	}

	rows := []struct {
		y    int
		want []string
	}{
		{2, []string{"0", "unit", "0061", "U+0061"}},
		{3, []string{"1", "surrogate-pair", "D83D DE00", "U+1F600"}},
		{4, []string{"2", "regional-pair", "U+1F1FA U+1F1F8"}},
	}
	for _, r := range rows {
		line := screenRow(sim, r.y)
		for _, want := range r.want {
			if !strings.Contains(line, want) {
				t.Errorf("row %d = %q, missing %q", r.y, line, want)
			}
		}
	}

	detail := screenRow(sim, 22)
	if !strings.Contains(detail, "U+0061") {
		t.Errorf("detail line = %q, want selected char code point", detail)
	}

	status := screenRow(sim, 23)
	if !strings.Contains(status, "char 1/3") {
		t.Errorf("status line = %q, want cursor position", status)
	}
}

func TestViewerCursor(t *testing.T) {
	v, sim := newTestViewer(t, "a\U0001F600b")
	defer sim.Fini()

	key := func(k tcell.Key, r rune) {
		v.handleKey(tcell.NewEventKey(k, r, tcell.ModNone))
	}

	if v.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", v.cursor)
	}

	key(tcell.KeyDown, 0)
	if v.cursor != 1 {
		t.Errorf("after down: cursor = %d, want 1", v.cursor)
	}

	key(tcell.KeyDown, 0)
	key(tcell.KeyDown, 0)
	if v.cursor != 2 {
		t.Errorf("cursor clamps at last row: cursor = %d, want 2", v.cursor)
	}

	key(tcell.KeyRune, 'k')
	if v.cursor != 1 {
		t.Errorf("after k: cursor = %d, want 1", v.cursor)
	}

	key(tcell.KeyRune, 'g')
	if v.cursor != 0 {
		t.Errorf("after g: cursor = %d, want 0", v.cursor)
	}

	key(tcell.KeyUp, 0)
	if v.cursor != 0 {
		t.Errorf("cursor clamps at first row: cursor = %d, want 0", v.cursor)
	}

	key(tcell.KeyRune, 'G')
	if v.cursor != 2 {
		t.Errorf("after G: cursor = %d, want 2", v.cursor)
	}

	key(tcell.KeyHome, 0)
	if v.cursor != 0 {
		t.Errorf("after home: cursor = %d, want 0", v.cursor)
	}

	key(tcell.KeyEnd, 0)
	if v.cursor != 2 {
		t.Errorf("after end: cursor = %d, want 2", v.cursor)
	}
}

func TestViewerQuitKeys(t *testing.T) {
	v, sim := newTestViewer(t, "abc")
	defer sim.Fini()

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if v.handleKey(ev) {
			t.Errorf("handleKey(%v) = true, want false", ev.Key())
		}
	}

	if !v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Error("handleKey(down) = false, want true")
	}
}

func TestViewerEmpty(t *testing.T) {
	v, sim := newTestViewer(t, "")
	defer sim.Fini()

	v.draw()

	if !strings.Contains(screenRow(sim, 22), "empty text") {
		t.Errorf("detail line = %q, want empty marker", screenRow(sim, 22))
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if v.cursor != 0 {
		t.Errorf("cursor on empty text = %d, want 0", v.cursor)
	}
}

func TestViewerScroll(t *testing.T) {
	v, sim := newTestViewer(t, strings.Repeat("x", 40))
	defer sim.Fini()

	sim.SetSize(100, 10)

	v.moveEnd()
	v.draw()

	visible := v.pageSize()
	wantTop := 40 - visible
	if v.top != wantTop {
		t.Errorf("top = %d, want %d", v.top, wantTop)
	}

	v.cursor = 0
	v.draw()
	if v.top != 0 {
		t.Errorf("top after jump to start = %d, want 0", v.top)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"a", 3, "a  "},
		{"\U0001F600", 4, "\U0001F600  "},
		{"abcd", 2, "abcd"},
	}
	for _, tt := range tests {
		if got := padRight(tt.s, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
