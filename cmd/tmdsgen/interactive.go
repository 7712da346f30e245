package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/tmdsgen/palette"
	"github.com/wippyai/tmdsgen/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	formatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var formatCycle = []table.Format{table.FormatC, table.FormatAsm, table.FormatHex, table.FormatDefine}

// headerLines is the space taken by title, heading and help around the viewport.
const headerLines = 6

type modelState int

const (
	stateSelectTable modelState = iota
	stateShowTable
	stateTrace
)

type interactiveModel struct {
	err         error
	table       *table.Table
	paletteName string
	result      string
	gens        []table.Generator
	input       textinput.Model
	view        viewport.Model
	format      table.Format
	selected    int
	width       int
	height      int
	state       modelState
}

type generatedMsg struct {
	err    error
	table  *table.Table
	format table.Format
}

func newInteractiveModel(paletteName string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "00 01 ff fe ctl1"
	ti.Prompt = "encode: "
	ti.Width = 48

	return &interactiveModel{
		gens:        table.Generators(),
		paletteName: paletteName,
		input:       ti,
		view:        viewport.New(80, 20),
		state:       stateSelectTable,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

// generateCmd builds g off the UI goroutine. Everything it needs is copied in,
// so later key presses cannot change which table arrives.
func generateCmd(g table.Generator, paletteName string) tea.Cmd {
	return func() tea.Msg {
		opts := table.Options{}
		if g.Name == "palette" {
			p, err := palette.Resolve(paletteName)
			if err != nil {
				return generatedMsg{err: err}
			}
			opts.Palette = p
		}
		t, err := table.Generate(context.Background(), g.Name, opts)
		return generatedMsg{table: t, err: err, format: g.Format}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-headerLines, 3)
		return m, nil

	case generatedMsg:
		m.err = msg.err
		m.table = msg.table
		if m.table != nil {
			m.format = msg.format
			m.refreshView()
		}
		m.state = stateShowTable
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateSelectTable:
			return m.updateSelect(msg)
		case stateShowTable:
			return m.updateShow(msg)
		case stateTrace:
			return m.updateTrace(msg)
		}
	}

	return m, nil
}

func (m *interactiveModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.gens)-1 {
			m.selected++
		}
	case "enter":
		return m, generateCmd(m.gens[m.selected], m.paletteName)
	case "t":
		m.state = stateTrace
		m.result = ""
		m.err = nil
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *interactiveModel) updateShow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectTable
		m.table = nil
		m.err = nil
		return m, nil
	case "f":
		if m.table != nil {
			m.format = nextFormat(m.format)
			m.refreshView()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *interactiveModel) updateTrace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = stateSelectTable
		return m, nil
	case "enter":
		steps, err := runTrace(m.input.Value())
		m.err = err
		m.result = ""
		if err == nil {
			m.result = formatTrace(steps)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextFormat(f table.Format) table.Format {
	for i, v := range formatCycle {
		if v == f {
			return formatCycle[(i+1)%len(formatCycle)]
		}
	}
	return formatCycle[0]
}

func (m *interactiveModel) refreshView() {
	var buf bytes.Buffer
	if err := m.table.Render(&buf, m.format); err != nil {
		m.err = err
		return
	}
	m.view.SetContent(buf.String())
	m.view.GotoTop()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TMDS Tables"))
	b.WriteString(" palette ")
	b.WriteString(m.paletteName)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectTable:
		b.WriteString("Select a table to generate:\n\n")
		for i, g := range m.gens {
			line := fmt.Sprintf("%-14s %-7s %s", g.Name, g.Format, g.Description)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + nameStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter generate • t trace encoder • q quit"))

	case stateShowTable:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("esc back • q quit"))
			break
		}
		fmt.Fprintf(&b, "%s %s, %d words\n",
			nameStyle.Render(m.table.Name), formatStyle.Render(m.format.String()), m.table.Len())
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("↑/↓ scroll • f format • esc back • q quit • %3.0f%%", m.view.ScrollPercent()*100)))

	case stateTrace:
		b.WriteString("Hex bytes are data, ctl0..ctl3 are control codes; each line starts at disparity 0.\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else if m.result != "" {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter encode • esc back • ctrl+c quit"))
	}

	return b.String()
}

func runInteractive(paletteName string) error {
	p := tea.NewProgram(newInteractiveModel(paletteName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
