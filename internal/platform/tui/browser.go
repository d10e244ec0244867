package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/copycolors/internal/canvas"
	"github.com/vovakirdan/copycolors/internal/output"
	"github.com/vovakirdan/copycolors/internal/render"
	"github.com/vovakirdan/copycolors/internal/storage"
)

// maxListRows is the most palettes shown at once above the preview.
const maxListRows = 8

// Copier places text on a clipboard.
type Copier func(text string) error

// BrowserModel is the Bubble Tea model for browsing saved palettes.
type BrowserModel struct {
	entries  []storage.PaletteEntry
	cursor   int
	format   render.Format
	layout   canvas.Layout
	renderer *lipgloss.Renderer
	copier   Copier // nil disables copying
	keys     BrowserKeyMap
	help     help.Model
	width    int
	height   int
	status   string
	seq      int
	quitting bool

	titleStyle  lipgloss.Style
	dimStyle    lipgloss.Style
	activeStyle lipgloss.Style
}

// NewBrowserModel creates a browser over entries. The renderer decides the
// color profile, so SSH sessions pass one bound to the session.
func NewBrowserModel(entries []storage.PaletteEntry, layout canvas.Layout, renderer *lipgloss.Renderer, copier Copier, width, height int) BrowserModel {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	return BrowserModel{
		entries:     entries,
		layout:      layout,
		renderer:    renderer,
		copier:      copier,
		keys:        DefaultBrowserKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		titleStyle:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		dimStyle:    renderer.NewStyle().Foreground(lipgloss.Color("245")),
		activeStyle: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
	}
}

// Init initializes the browser.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.seq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Format):
		if m.format == render.FormatHex {
			m.format = render.FormatDecimal
		} else {
			m.format = render.FormatHex
		}

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	}

	return m, nil
}

func (m BrowserModel) copySelected() (tea.Model, tea.Cmd) {
	entry, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if m.copier == nil {
		return m.setStatus("clipboard not available")
	}

	text, _ := m.paletteRenderer(entry, true).ClipboardText()
	if err := m.copier(text); err != nil {
		return m.setStatus(fmt.Sprintf("copy failed: %v", err))
	}
	return m.setStatus("copied " + text)
}

func (m BrowserModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.seq++
	m.status = s
	return m, clearStatusCmd(m.seq)
}

// paletteRenderer builds a palette renderer for entry in the current format.
func (m BrowserModel) paletteRenderer(entry storage.PaletteEntry, clip bool) *render.Renderer {
	opts := render.Options{
		Mode:      render.ModeGrid,
		Format:    m.format,
		Clipboard: clip,
		Layout:    m.layout,
	}
	return render.New(entry.Colors, opts, nil, nil)
}

// Selected returns the palette under the cursor.
func (m BrowserModel) Selected() (storage.PaletteEntry, bool) {
	if len(m.entries) == 0 {
		return storage.PaletteEntry{}, false
	}
	return m.entries[m.cursor], true
}

// Format returns the current label format.
func (m BrowserModel) Format() render.Format {
	return m.format
}

// Status returns the current status line.
func (m BrowserModel) Status() string {
	return m.status
}

// IsQuitting reports whether the user asked to leave.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.titleStyle.Render("  Saved palettes"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(m.dimStyle.Render("  No palettes saved yet. Run 'copycolors show --save <colors>' first."))
		b.WriteString("\n\n")
		b.WriteString("  " + m.help.View(m.keys))
		return b.String()
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		id := m.dimStyle.Render(fmt.Sprintf("#%-4d", e.ID))
		if i == m.cursor {
			cursor = m.activeStyle.Render("> ")
			id = m.activeStyle.Render(fmt.Sprintf("#%-4d", e.ID))
		}
		frags := m.paletteRenderer(e, false).Fragments()
		b.WriteString(cursor + id + " " + render.RenderFragments(m.renderer, frags))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.preview())

	if m.status != "" {
		b.WriteString("  " + m.dimStyle.Render(m.status) + "\n")
	}
	b.WriteString("  " + m.help.View(m.keys))
	return b.String()
}

// preview draws the selected palette as a swatch grid at the window width.
func (m BrowserModel) preview() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}

	var sb strings.Builder
	if entry.Source != "" {
		sb.WriteString("  " + m.dimStyle.Render(entry.Source) + "\n")
	}

	opts := render.Options{Mode: render.ModeGrid, Format: m.format, Layout: m.layout}
	width := func() (int, error) { return m.width, nil }
	sink := output.NewTerminalWithRenderer(&sb, m.renderer)
	if err := render.New(entry.Colors, opts, sink, width).Display(); err != nil {
		sb.WriteString("  preview unavailable: " + err.Error() + "\n")
	}
	return sb.String()
}

// visibleRange returns the window of list rows around the cursor.
func (m BrowserModel) visibleRange() (int, int) {
	n := len(m.entries)
	if n <= maxListRows {
		return 0, n
	}
	start := min(max(m.cursor-maxListRows/2, 0), n-maxListRows)
	return start, start + maxListRows
}

// RunBrowser runs the browser in the local terminal.
func RunBrowser(m BrowserModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
