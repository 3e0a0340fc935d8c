package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/chartframe/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RegionBrowserModel - Interactive layout region browser
// =============================================================================

// regionEntry is one row of the region browser.
type regionEntry struct {
	Name   string
	Region layout.Region
	Inset  bool
}

// RegionBrowserModel is the bubbletea model for browsing layout regions.
type RegionBrowserModel struct {
	Layout  layout.Layout
	Entries []regionEntry
	Cursor  int
}

// NewRegionBrowserModel creates a browser model over the layout's regions.
func NewRegionBrowserModel(l layout.Layout) RegionBrowserModel {
	entries := []regionEntry{
		{Name: "interior", Region: l.Interior},
	}
	for _, side := range []struct {
		name string
		area *layout.LabelArea
	}{
		{"top labels", l.Top},
		{"bottom labels", l.Bottom},
		{"left labels", l.Left},
		{"right labels", l.Right},
	} {
		if side.area == nil {
			continue
		}
		entries = append(entries, regionEntry{
			Name:   side.name,
			Region: side.area.Region,
			Inset:  side.area.Inset,
		})
	}
	return RegionBrowserModel{Layout: l, Entries: entries}
}

func (m RegionBrowserModel) Init() tea.Cmd {
	return nil
}

func (m RegionBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
			}
		}
	}
	return m, nil
}

func (m RegionBrowserModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Layout %dx%d", m.Layout.Width, m.Layout.Height)
	if m.Layout.Caption != "" {
		title += "  " + StyleDim.Render("“"+m.Layout.Caption+"”")
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, e := range m.Entries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		mode := "carved"
		if e.Inset {
			mode = "inset"
		}
		if e.Name == "interior" {
			mode = "—"
		}

		rows = append(rows, []string{
			cursor,
			e.Name,
			fmt.Sprintf("%d,%d", e.Region.X, e.Region.Y),
			fmt.Sprintf("%dx%d", e.Region.Width, e.Region.Height),
			mode,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Region", "Origin", "Size", "Mode").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	sel := m.Entries[m.Cursor]
	b.WriteString("  " + StyleDim.Render(sel.Name+": ") + StyleValue.Render(formatRegion(sel.Region)))
	b.WriteString("\n")
	b.WriteString("  " + StyleDim.Render(fmt.Sprintf("x [%d, %d) · y [%d, %d)",
		m.Layout.XRange.Start, m.Layout.XRange.End,
		m.Layout.YRange.Start, m.Layout.YRange.End)))

	return b.String()
}

// runRegionBrowser starts the interactive region browser.
func runRegionBrowser(l layout.Layout) error {
	_, err := tea.NewProgram(NewRegionBrowserModel(l)).Run()
	return err
}
