package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/copycolors/internal/canvas"
	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/render"
	"github.com/vovakirdan/copycolors/internal/storage"
)

func testEntries() []storage.PaletteEntry {
	return []storage.PaletteEntry{
		{ID: 3, Source: "sunset.png", Colors: []color.Color{color.RGB(250, 94, 0), color.RGB(40, 0, 60)}, CreatedAt: time.Now()},
		{ID: 2, Colors: []color.Color{color.Black, color.White}},
		{ID: 1, Colors: []color.Color{color.RGB(1, 2, 3)}},
	}
}

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BrowserModel)
	require.True(t, ok)
	return bm, cmd
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(3), sel.ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey("j"))
	m, _ = update(t, m, runeKey("j")) // already at the end
	sel, _ = m.Selected()
	assert.Equal(t, int64(1), sel.ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	sel, _ = m.Selected()
	assert.Equal(t, int64(2), sel.ID)
}

func TestBrowserFormatToggle(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)
	assert.Equal(t, render.FormatHex, m.Format())
	assert.Contains(t, m.View(), "#FA5E00")

	m, _ = update(t, m, runeKey("f"))
	assert.Equal(t, render.FormatDecimal, m.Format())
	assert.Contains(t, m.View(), "250,94,0")

	m, _ = update(t, m, runeKey("f"))
	assert.Equal(t, render.FormatHex, m.Format())
}

func TestBrowserCopy(t *testing.T) {
	var copied string
	copier := func(s string) error {
		copied = s
		return nil
	}
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), copier, 80, 40)

	m, cmd := update(t, m, runeKey("c"))
	assert.Equal(t, "#FA5E00,#28003C", copied)
	assert.Contains(t, m.Status(), "copied")
	assert.NotNil(t, cmd, "status should expire")

	m, _ = update(t, m, clearStatusMsg{seq: m.seq})
	assert.Empty(t, m.Status())
}

func TestBrowserCopyErrors(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "clipboard not available", m.Status())

	failing := func(string) error { return errors.New("no display") }
	m = NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), failing, 80, 40)
	m, _ = update(t, m, runeKey("c"))
	assert.Contains(t, m.Status(), "no display")
}

func TestBrowserStaleStatusClearIgnored(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)
	m, _ = update(t, m, runeKey("c"))
	m, _ = update(t, m, runeKey("c"))

	m, _ = update(t, m, clearStatusMsg{seq: 1})
	assert.NotEmpty(t, m.Status())
}

func TestBrowserViewShowsPreview(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)
	view := m.View()

	assert.Contains(t, view, "Saved palettes")
	assert.Contains(t, view, "sunset.png")
	// One list row per entry plus the grid labels of the selection.
	assert.Equal(t, 2, strings.Count(view, "#FA5E00"))
	assert.Contains(t, view, "#010203")
}

func TestBrowserEmpty(t *testing.T) {
	m := NewBrowserModel(nil, canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No palettes saved yet")

	m, cmd := update(t, m, runeKey("c"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.Status())
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)
	m, cmd := update(t, m, runeKey("q"))

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestBrowserWindowResize(t *testing.T) {
	m := NewBrowserModel(testEntries(), canvas.DefaultLayout(), asciiRenderer(), nil, 0, 0)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestVisibleRange(t *testing.T) {
	entries := make([]storage.PaletteEntry, 20)
	for i := range entries {
		entries[i] = storage.PaletteEntry{ID: int64(i + 1), Colors: []color.Color{color.Black}}
	}
	m := NewBrowserModel(entries, canvas.DefaultLayout(), asciiRenderer(), nil, 80, 40)

	start, end := m.visibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, maxListRows, end)

	m.cursor = 10
	start, end = m.visibleRange()
	assert.Equal(t, 6, start)
	assert.Equal(t, 14, end)

	m.cursor = 19
	start, end = m.visibleRange()
	assert.Equal(t, 12, start)
	assert.Equal(t, 20, end)
}
