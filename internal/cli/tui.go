package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PackageListModel - Interactive upgrade selection
// =============================================================================

// PackageListModel is the bubbletea model for selecting which outdated
// packages to upgrade. Selections only count when the user confirms with
// enter; quitting leaves the selection empty.
type PackageListModel struct {
	Packages []OutdatedPackage
	Cursor   int
	Marked   map[int]bool
	Accepted bool
	Height   int
	Offset   int
}

// NewPackageListModel creates a selection model with every package marked.
func NewPackageListModel(pkgs []OutdatedPackage) PackageListModel {
	marked := make(map[int]bool, len(pkgs))
	for i := range pkgs {
		marked[i] = true
	}
	return PackageListModel{
		Packages: pkgs,
		Marked:   marked,
		Height:   15,
	}
}

func (m PackageListModel) Init() tea.Cmd {
	return nil
}

func (m PackageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Packages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Marked[m.Cursor] = !m.Marked[m.Cursor]
		case "a":
			all := !m.allMarked()
			for i := range m.Packages {
				m.Marked[i] = all
			}
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PackageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select packages to upgrade"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Packages) {
		end = len(m.Packages)
	}

	for i := m.Offset; i < end; i++ {
		p := m.Packages[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Marked[i] {
			mark = "[x]"
		}

		style := listNormalStyle
		if i == m.Cursor {
			style = listSelectedStyle
		}

		b.WriteString(cursor + mark + " " + style.Render(p.Name) + " " +
			listDimStyle.Render(p.Current+" "+iconArrow+" "+p.Latest))
		b.WriteString("\n")
	}

	if len(m.Packages) > m.Height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("…"))
	}
	return b.String()
}

// Chosen returns the confirmed selection, or nil when the user quit.
func (m PackageListModel) Chosen() []OutdatedPackage {
	if !m.Accepted {
		return nil
	}
	var chosen []OutdatedPackage
	for i, p := range m.Packages {
		if m.Marked[i] {
			chosen = append(chosen, p)
		}
	}
	return chosen
}

func (m PackageListModel) allMarked() bool {
	for i := range m.Packages {
		if !m.Marked[i] {
			return false
		}
	}
	return true
}
